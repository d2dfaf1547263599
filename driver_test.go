package seleniumx

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"

	"github.com/wanmail/seleniumx/internal/wdtest"
)

// newTestDriver connects a Driver to a fake remote end.
func newTestDriver(t *testing.T, s *wdtest.Server) *Driver {
	t.Helper()
	d, err := New(s.URL(), Chrome())
	if err != nil {
		t.Fatalf("New(%q) returned error: %v", s.URL(), err)
	}
	return d
}

func TestNewAppliesDefaultTimeouts(t *testing.T) {
	s := wdtest.New()
	defer s.Close()

	var gotPaths []string
	record := func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		wdtest.WriteValue(w, nil)
	}
	s.Handle("POST", "/timeouts/async_script$", record)
	s.Handle("POST", "/timeouts/implicit_wait$", record)
	s.Handle("POST", "/timeouts$", record)

	d := newTestDriver(t, s)
	defer d.Quit()

	if len(gotPaths) != 3 {
		t.Errorf("New set %d timeouts (%v), want 3", len(gotPaths), gotPaths)
	}
}

func TestSessionID(t *testing.T) {
	s := wdtest.New()
	defer s.Close()

	d := newTestDriver(t, s)
	defer d.Quit()

	if got := d.SessionID(); got != wdtest.SessionID {
		t.Errorf("SessionID() = %q, want %q", got, wdtest.SessionID)
	}
}

func TestNavigation(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "/title$", "Page Title")
	s.Reply("GET", "/url$", "http://example.com/other")

	d := newTestDriver(t, s)
	defer d.Quit()

	if err := d.Get("http://example.com/other"); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	title, err := d.Title()
	if err != nil {
		t.Fatalf("Title returned error: %v", err)
	}
	if title != "Page Title" {
		t.Errorf("Title() = %q, want %q", title, "Page Title")
	}
	url, err := d.CurrentURL()
	if err != nil {
		t.Fatalf("CurrentURL returned error: %v", err)
	}
	if url != "http://example.com/other" {
		t.Errorf("CurrentURL() = %q, want %q", url, "http://example.com/other")
	}
	if err := d.Back(); err != nil {
		t.Errorf("Back returned error: %v", err)
	}
	if err := d.Refresh(); err != nil {
		t.Errorf("Refresh returned error: %v", err)
	}
}

func TestSessionScreenshot(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "/session/[^/]+/screenshot$", wdtest.PNGBase64)

	d := newTestDriver(t, s)
	defer d.Quit()

	png, err := d.ScreenshotPNG()
	if err != nil {
		t.Fatalf("ScreenshotPNG returned error: %v", err)
	}
	if !bytes.Equal(png, wdtest.PNG()) {
		t.Errorf("ScreenshotPNG returned %d bytes that do not match the canned image", len(png))
	}

	dir, err := ioutil.TempDir("", "seleniumx-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "shot.png")
	if err := d.Screenshot(path); err != nil {
		t.Fatalf("Screenshot(%q) returned error: %v", path, err)
	}
	written, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, wdtest.PNG()) {
		t.Errorf("Screenshot wrote %d bytes that do not match the canned image", len(written))
	}
}

func TestCookies(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "/cookie$", []map[string]interface{}{
		{"name": "cookie-0", "value": "value-0", "path": "/", "domain": "example.com", "secure": false},
	})

	d := newTestDriver(t, s)
	defer d.Quit()

	cookies, err := d.Cookies()
	if err != nil {
		t.Fatalf("Cookies returned error: %v", err)
	}
	want := []selenium.Cookie{{
		Name:   "cookie-0",
		Value:  "value-0",
		Path:   "/",
		Domain: "example.com",
	}}
	if diff := cmp.Diff(want, cookies); diff != "" {
		t.Errorf("Cookies() returned diff (-want +got):\n%s", diff)
	}

	if err := d.AddCookie(&selenium.Cookie{Name: "extra", Value: "1"}); err != nil {
		t.Errorf("AddCookie returned error: %v", err)
	}
	if err := d.DeleteCookie("extra"); err != nil {
		t.Errorf("DeleteCookie returned error: %v", err)
	}
	if err := d.DeleteAllCookies(); err != nil {
		t.Errorf("DeleteAllCookies returned error: %v", err)
	}
}

func TestAlerts(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "/alert/text$", "are you sure?")

	d := newTestDriver(t, s)
	defer d.Quit()

	text, err := d.AlertText()
	if err != nil {
		t.Fatalf("AlertText returned error: %v", err)
	}
	if text != "are you sure?" {
		t.Errorf("AlertText() = %q, want %q", text, "are you sure?")
	}
	if err := d.AcceptAlert(); err != nil {
		t.Errorf("AcceptAlert returned error: %v", err)
	}
	if err := d.DismissAlert(); err != nil {
		t.Errorf("DismissAlert returned error: %v", err)
	}
}

func TestBrowserVersion(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "^/session/[^/]+$", map[string]interface{}{
		"browserName": "chrome",
		"version":     "91.0.4472.114",
	})

	d := newTestDriver(t, s)
	defer d.Quit()

	v, err := d.BrowserVersion()
	if err != nil {
		t.Fatalf("BrowserVersion returned error: %v", err)
	}
	if v.Major != 91 || v.Minor != 0 || v.Patch != 4472 {
		t.Errorf("BrowserVersion() = %s, want 91.0.4472", v)
	}
}

func TestBrowserVersionMissing(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("GET", "^/session/[^/]+$", map[string]interface{}{
		"browserName": "chrome",
	})

	d := newTestDriver(t, s)
	defer d.Quit()

	if _, err := d.BrowserVersion(); err == nil {
		t.Error("BrowserVersion returned nil error for capabilities without a version")
	}
}

func TestSwitchFrameWithElement(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/element$", wdtest.ElementRef("frame-1"))

	d := newTestDriver(t, s)
	defer d.Quit()

	frame, err := d.Find(ByTag("iframe"))
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if err := d.SwitchFrame(frame); err != nil {
		t.Errorf("SwitchFrame(element) returned error: %v", err)
	}
	if err := d.SwitchFrame(nil); err != nil {
		t.Errorf("SwitchFrame(nil) returned error: %v", err)
	}
}
