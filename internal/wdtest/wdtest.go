// Package wdtest runs a fake WebDriver remote end over httptest, answering
// the wrapped client with canned legacy JSON wire replies. It lets the
// wrapper be exercised end to end through the real client without a browser.
package wdtest

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
)

// SessionID is the session identifier issued by the fake remote end.
const SessionID = "fake-session"

// PNGBase64 is a valid 1x1 PNG image, base64-encoded, for screenshot
// replies.
const PNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// PNG returns the decoded bytes of PNGBase64.
func PNG() []byte {
	buf, err := base64.StdEncoding.DecodeString(PNGBase64)
	if err != nil {
		panic(err)
	}
	return buf
}

type route struct {
	method string
	re     *regexp.Regexp
	fn     http.HandlerFunc
}

// Server is a fake WebDriver remote end. The zero default accepts session
// creation and deletion and answers any unregistered command with a
// successful null value, so tests only register the commands they assert
// on.
type Server struct {
	srv *httptest.Server

	mu     sync.Mutex
	routes []route
}

// New starts a fake remote end. Callers own shutting it down with Close.
func New() *Server {
	s := &Server{}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// URL returns the address to hand to the client as the executor URL.
func (s *Server) URL() string { return s.srv.URL }

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// Handle registers fn for requests whose method equals method and whose
// path matches the regular expression pattern. Later registrations win over
// earlier ones.
func (s *Server) Handle(method, pattern string, fn http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, route{method, regexp.MustCompile(pattern), fn})
}

// Reply registers a canned successful reply whose value is v.
func (s *Server) Reply(method, pattern string, v interface{}) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteValue(w, v)
	})
}

// Fail registers a canned failure with the given legacy status code and
// message.
func (s *Server) Fail(method, pattern string, status int, message string) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, status, message)
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	routes := make([]route, len(s.routes))
	copy(routes, s.routes)
	s.mu.Unlock()

	for i := len(routes) - 1; i >= 0; i-- {
		rt := routes[i]
		if rt.method == r.Method && rt.re.MatchString(r.URL.Path) {
			rt.fn(w, r)
			return
		}
	}

	// A legacy-shaped session reply keeps the client off the W3C code
	// paths, which is the dialect the canned replies speak.
	if r.Method == "POST" && r.URL.Path == "/session" {
		WriteValue(w, map[string]interface{}{
			"browserName": "chrome",
			"version":     "91.0.4472.114",
		})
		return
	}

	WriteValue(w, nil)
}

// WriteValue writes a successful legacy wire reply carrying v.
func WriteValue(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sessionId": SessionID,
		"status":    0,
		"value":     v,
	})
}

// WriteError writes a failed legacy wire reply with the given status code
// and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sessionId": SessionID,
		"status":    status,
		"value":     map[string]string{"message": message},
	})
}

// ElementRef is the wire form of an element reference, carrying both the
// legacy and the W3C identifier keys.
func ElementRef(id string) map[string]string {
	return map[string]string{
		"ELEMENT": id,
		"element-6066-11e4-a52e-4f735466cecf": id,
	}
}
