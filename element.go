package seleniumx

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/tebeka/selenium"
)

// Element pairs a remote element reference with the session that issued it.
//
// Elements are not constructed directly; they are returned by Find and
// FindAll on a Driver, Session or another Element, or decoded from a script
// return value via ScriptRet.
type Element struct {
	session *Session
	elem    selenium.WebElement
}

// Client returns the wrapped element handle, for commands this layer does
// not cover.
func (e *Element) Client() selenium.WebElement { return e.elem }

// Rect is the bounding rectangle of an element, in CSS pixels relative to
// the document.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Rect returns the element's bounding rectangle.
func (e *Element) Rect() (Rect, error) {
	loc, err := e.elem.Location()
	if err != nil {
		return Rect{}, remap(err)
	}
	size, err := e.elem.Size()
	if err != nil {
		return Rect{}, remap(err)
	}
	return Rect{X: loc.X, Y: loc.Y, Width: size.Width, Height: size.Height}, nil
}

// TagName returns the element's tag name, e.g. "button".
func (e *Element) TagName() (string, error) {
	name, err := e.elem.TagName()
	return name, remap(err)
}

// Text returns the rendered text content of the element.
func (e *Element) Text() (string, error) {
	text, err := e.elem.Text()
	return text, remap(err)
}

// ClassName returns the element's "class" attribute, or "" if it has none.
func (e *Element) ClassName() (string, error) {
	return e.Attr("class")
}

// ID returns the element's "id" attribute, or "" if it has none.
func (e *Element) ID() (string, error) {
	return e.Attr("id")
}

// Value returns the element's "value" attribute, or "" if it has none.
func (e *Element) Value() (string, error) {
	return e.Attr("value")
}

// Click clicks the element.
func (e *Element) Click() error {
	debugLog("click %s", e)
	return remap(e.elem.Click())
}

// Clear clears the element's contents.
func (e *Element) Clear() error {
	return remap(e.elem.Clear())
}

// SendKeys types the given input into the element. The special key
// constants of the underlying client (selenium.EnterKey and friends) may be
// embedded in the string.
func (e *Element) SendKeys(keys string) error {
	debugLog("send keys to %s", e)
	return remap(e.elem.SendKeys(keys))
}

// Submit submits the form the element belongs to.
func (e *Element) Submit() error {
	return remap(e.elem.Submit())
}

// Attr returns the named attribute. A missing attribute yields "" and a nil
// error; the wire protocol reports it as a JSON null, which the underlying
// client surfaces as an error that this method absorbs.
func (e *Element) Attr(name string) (string, error) {
	v, err := e.elem.GetAttribute(name)
	if err != nil {
		if isNilValue(err) {
			return "", nil
		}
		return "", remap(err)
	}
	return v, nil
}

// Prop returns the named JavaScript property of the element, rendered as a
// string. A missing or null property yields "" and a nil error.
//
// The wrapped client has no property command, so this goes through script
// execution.
func (e *Element) Prop(name string) (string, error) {
	ret, err := e.session.ExecuteScript("return arguments[0][arguments[1]];", []interface{}{e, name})
	if err != nil {
		return "", err
	}
	var v interface{}
	if err := ret.Convert(&v); err != nil {
		return "", err
	}
	switch p := v.(type) {
	case nil:
		return "", nil
	case string:
		return p, nil
	default:
		return fmt.Sprintf("%v", p), nil
	}
}

// CSSValue returns the computed value of the named CSS property.
func (e *Element) CSSValue(name string) (string, error) {
	v, err := e.elem.CSSProperty(name)
	return v, remap(err)
}

// IsSelected reports whether the element is selected.
func (e *Element) IsSelected() (bool, error) {
	ok, err := e.elem.IsSelected()
	return ok, remap(err)
}

// IsEnabled reports whether the element is enabled.
func (e *Element) IsEnabled() (bool, error) {
	ok, err := e.elem.IsEnabled()
	return ok, remap(err)
}

// IsDisplayed reports whether the element is displayed.
func (e *Element) IsDisplayed() (bool, error) {
	ok, err := e.elem.IsDisplayed()
	return ok, remap(err)
}

// IsClickable reports whether the element is both displayed and enabled.
func (e *Element) IsClickable() (bool, error) {
	displayed, err := e.IsDisplayed()
	if err != nil || !displayed {
		return false, err
	}
	return e.IsEnabled()
}

// IsPresent reports whether the element is still attached to the DOM, by
// probing its tag name. A re-rendered element counts as absent even if an
// identical-looking node took its place; searching again is the reliable
// way to re-acquire it.
func (e *Element) IsPresent() (bool, error) {
	_, err := e.elem.TagName()
	if err == nil {
		return true, nil
	}
	err = remap(err)
	if IsNoSuchElement(err) || IsStaleElement(err) {
		return false, nil
	}
	return false, err
}

// Find returns the first child of this element matching the locator.
func (e *Element) Find(by By) (*Element, error) {
	elem, err := e.elem.FindElement(by.using, by.value)
	if err != nil {
		return nil, remapFind(err, by)
	}
	return &Element{session: e.session, elem: elem}, nil
}

// FindAll returns every child of this element matching the locator.
func (e *Element) FindAll(by By) ([]*Element, error) {
	elems, err := e.elem.FindElements(by.using, by.value)
	if err != nil {
		return nil, remapFind(err, by)
	}
	out := make([]*Element, len(elems))
	for i, el := range elems {
		out[i] = &Element{session: e.session, elem: el}
	}
	return out, nil
}

// ScreenshotPNG returns a screenshot of this element as PNG bytes, scrolling
// it into view first if necessary.
func (e *Element) ScreenshotPNG() ([]byte, error) {
	png, err := e.elem.Screenshot(true)
	return png, remap(err)
}

// Screenshot writes a screenshot of this element to the given path.
func (e *Element) Screenshot(path string) error {
	png, err := e.ScreenshotPNG()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, png, 0644)
}

// Focus gives the element input focus, via JavaScript.
func (e *Element) Focus() error {
	_, err := e.session.ExecuteScript("arguments[0].focus();", []interface{}{e})
	return err
}

// ScrollIntoView scrolls the element into the visible viewport, via
// JavaScript.
func (e *Element) ScrollIntoView() error {
	_, err := e.session.ExecuteScript("arguments[0].scrollIntoView();", []interface{}{e})
	return err
}

// InnerHTML returns the element's innerHTML property.
func (e *Element) InnerHTML() (string, error) {
	return e.Prop("innerHTML")
}

// OuterHTML returns the element's outerHTML property.
func (e *Element) OuterHTML() (string, error) {
	return e.Prop("outerHTML")
}

// ShadowRoot returns the element's shadow root. Call it on the host element
// and query the returned element for nodes inside the shadow tree.
func (e *Element) ShadowRoot() (*Element, error) {
	ret, err := e.session.ExecuteScript("return arguments[0].shadowRoot;", []interface{}{e})
	if err != nil {
		return nil, err
	}
	return ret.Element()
}

// ToJSON returns the wire representation of the element reference, suitable
// for embedding in script arguments.
func (e *Element) ToJSON() (json.RawMessage, error) {
	return json.Marshal(e.elem)
}

// MarshalJSON encodes the element as its wire reference, so an *Element can
// be passed directly in a script argument list.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.elem)
}

// String renders the element's wire reference.
func (e *Element) String() string {
	buf, err := json.Marshal(e.elem)
	if err != nil {
		return "<element>"
	}
	return string(buf)
}
