package seleniumx

import (
	"io/ioutil"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/log"
)

// Session owns the connection to the underlying protocol client. A single
// Session is shared by the Driver and by every Element and ScriptRet derived
// from it, so an element reference is always resolved against the session
// that issued it.
type Session struct {
	wd selenium.WebDriver
}

// Client returns the wrapped protocol client, for commands this layer does
// not cover.
func (s *Session) Client() selenium.WebDriver { return s.wd }

// SessionID returns the identifier the remote end assigned to this session.
func (s *Session) SessionID() string { return s.wd.SessionID() }

// Status returns information about the remote end's environment.
func (s *Session) Status() (*selenium.Status, error) {
	return s.wd.Status()
}

// Capabilities returns the capabilities the remote end negotiated for this
// session.
func (s *Session) Capabilities() (selenium.Capabilities, error) {
	return s.wd.Capabilities()
}

// Get navigates the browser to the given URL.
func (s *Session) Get(url string) error {
	debugLog("get %s", url)
	return remap(s.wd.Get(url))
}

// CurrentURL returns the browser's current URL.
func (s *Session) CurrentURL() (string, error) {
	url, err := s.wd.CurrentURL()
	return url, remap(err)
}

// Title returns the current page's title.
func (s *Session) Title() (string, error) {
	title, err := s.wd.Title()
	return title, remap(err)
}

// PageSource returns the current page's source.
func (s *Session) PageSource() (string, error) {
	src, err := s.wd.PageSource()
	return src, remap(err)
}

// Back moves backward in the browser history.
func (s *Session) Back() error { return remap(s.wd.Back()) }

// Forward moves forward in the browser history.
func (s *Session) Forward() error { return remap(s.wd.Forward()) }

// Refresh reloads the current page.
func (s *Session) Refresh() error { return remap(s.wd.Refresh()) }

// Find returns the first element matching the locator.
func (s *Session) Find(by By) (*Element, error) {
	debugLog("find %s", by)
	elem, err := s.wd.FindElement(by.using, by.value)
	if err != nil {
		return nil, remapFind(err, by)
	}
	return &Element{session: s, elem: elem}, nil
}

// FindAll returns every element matching the locator. A locator that
// matches nothing yields an empty slice, not an error.
func (s *Session) FindAll(by By) ([]*Element, error) {
	debugLog("find all %s", by)
	elems, err := s.wd.FindElements(by.using, by.value)
	if err != nil {
		return nil, remapFind(err, by)
	}
	out := make([]*Element, len(elems))
	for i, e := range elems {
		out[i] = &Element{session: s, elem: e}
	}
	return out, nil
}

// ActiveElement returns the element that currently has focus.
func (s *Session) ActiveElement() (*Element, error) {
	elem, err := s.wd.ActiveElement()
	if err != nil {
		return nil, remap(err)
	}
	return &Element{session: s, elem: elem}, nil
}

// ExecuteScript runs the script synchronously in the current page and
// returns its value. Arguments are available to the script as arguments[0]
// through arguments[n]; an *Element may be passed directly and arrives as a
// DOM node.
func (s *Session) ExecuteScript(script string, args []interface{}) (*ScriptRet, error) {
	debugLog("execute script (%d bytes)", len(script))
	raw, err := s.wd.ExecuteScriptRaw(script, args)
	if err != nil {
		return nil, remap(err)
	}
	return newScriptRet(s, raw)
}

// ExecuteScriptAsync runs the script in the current page and waits for it to
// signal completion by invoking the callback the remote end passes as the
// final argument. Bounded by the session's script timeout.
func (s *Session) ExecuteScriptAsync(script string, args []interface{}) (*ScriptRet, error) {
	debugLog("execute async script (%d bytes)", len(script))
	raw, err := s.wd.ExecuteScriptAsyncRaw(script, args)
	if err != nil {
		return nil, remap(err)
	}
	return newScriptRet(s, raw)
}

// ScreenshotPNG returns a screenshot of the current window as PNG bytes.
func (s *Session) ScreenshotPNG() ([]byte, error) {
	png, err := s.wd.Screenshot()
	return png, remap(err)
}

// Screenshot writes a screenshot of the current window to the given path.
func (s *Session) Screenshot(path string) error {
	png, err := s.ScreenshotPNG()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, png, 0644)
}

// Cookies returns all cookies in the browser's jar.
func (s *Session) Cookies() ([]selenium.Cookie, error) {
	cookies, err := s.wd.GetCookies()
	return cookies, remap(err)
}

// AddCookie adds a cookie to the browser's jar.
func (s *Session) AddCookie(c *selenium.Cookie) error {
	return remap(s.wd.AddCookie(c))
}

// DeleteCookie deletes the named cookie.
func (s *Session) DeleteCookie(name string) error {
	return remap(s.wd.DeleteCookie(name))
}

// DeleteAllCookies empties the browser's cookie jar.
func (s *Session) DeleteAllCookies() error {
	return remap(s.wd.DeleteAllCookies())
}

// WindowHandle returns the ID of the current window.
func (s *Session) WindowHandle() (string, error) {
	h, err := s.wd.CurrentWindowHandle()
	return h, remap(err)
}

// WindowHandles returns the IDs of every open window.
func (s *Session) WindowHandles() ([]string, error) {
	hs, err := s.wd.WindowHandles()
	return hs, remap(err)
}

// SwitchWindow switches the session's context to the named window.
func (s *Session) SwitchWindow(name string) error {
	return remap(s.wd.SwitchWindow(name))
}

// CloseWindow closes the current window. Closing the last window ends the
// session.
func (s *Session) CloseWindow() error {
	return remap(s.wd.Close())
}

// MaximizeWindow maximizes the named window, or the current one if name is
// empty.
func (s *Session) MaximizeWindow(name string) error {
	return remap(s.wd.MaximizeWindow(name))
}

// ResizeWindow sets the dimensions of the named window, or the current one
// if name is empty.
func (s *Session) ResizeWindow(name string, width, height int) error {
	return remap(s.wd.ResizeWindow(name, width, height))
}

// SwitchFrame switches the session's context to the given frame. The frame
// may be an *Element, a frame ID string, or nil to return to the top-level
// browsing context.
func (s *Session) SwitchFrame(frame interface{}) error {
	if e, ok := frame.(*Element); ok {
		frame = e.elem
	}
	return remap(s.wd.SwitchFrame(frame))
}

// AcceptAlert accepts the currently displayed alert.
func (s *Session) AcceptAlert() error { return remap(s.wd.AcceptAlert()) }

// DismissAlert dismisses the currently displayed alert.
func (s *Session) DismissAlert() error { return remap(s.wd.DismissAlert()) }

// AlertText returns the text of the currently displayed alert.
func (s *Session) AlertText() (string, error) {
	text, err := s.wd.AlertText()
	return text, remap(err)
}

// SetAlertText types into the currently displayed prompt.
func (s *Session) SetAlertText(text string) error {
	return remap(s.wd.SetAlertText(text))
}

// Logs fetches remote log entries of the given type. The log type must have
// been requested in the capabilities, see WithLogLevel.
func (s *Session) Logs(typ log.Type) ([]log.Message, error) {
	msgs, err := s.wd.Log(typ)
	return msgs, remap(err)
}
