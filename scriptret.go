package seleniumx

import (
	"encoding/json"
)

// ScriptRet holds the return value of a script execution, together with the
// session it came from so that element references inside the value can be
// decoded. Instances are produced by ExecuteScript and ExecuteScriptAsync.
type ScriptRet struct {
	session *Session
	// raw is the full wire reply, in the shape the underlying client's
	// element decoders expect.
	raw []byte
	// value is the script's return value only.
	value json.RawMessage
}

func newScriptRet(s *Session, raw []byte) (*ScriptRet, error) {
	reply := new(struct{ Value json.RawMessage })
	if err := json.Unmarshal(raw, reply); err != nil {
		return nil, err
	}
	return &ScriptRet{session: s, raw: raw, value: reply.Value}, nil
}

// Value returns the raw JSON value the script returned.
func (r *ScriptRet) Value() json.RawMessage { return r.value }

// Convert decodes the script's return value into dest, which must be a
// pointer.
func (r *ScriptRet) Convert(dest interface{}) error {
	value := r.value
	if len(value) == 0 {
		value = json.RawMessage("null")
	}
	return json.Unmarshal(value, dest)
}

// Element decodes a single element return value. The script must have
// returned exactly one element.
func (r *ScriptRet) Element() (*Element, error) {
	elem, err := r.session.wd.DecodeElement(r.raw)
	if err != nil {
		return nil, err
	}
	return &Element{session: r.session, elem: elem}, nil
}

// Elements decodes an array-of-elements return value. The script must have
// returned an array of elements.
func (r *ScriptRet) Elements() ([]*Element, error) {
	elems, err := r.session.wd.DecodeElements(r.raw)
	if err != nil {
		return nil, err
	}
	out := make([]*Element, len(elems))
	for i, e := range elems {
		out[i] = &Element{session: r.session, elem: e}
	}
	return out, nil
}
