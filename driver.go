package seleniumx

import (
	"github.com/tebeka/selenium"
)

// Driver encapsulates a browser automation session. All session operations
// are available through the embedded Session, which is shared with every
// Element the driver produces.
type Driver struct {
	*Session
}

// New starts a session against the WebDriver server at urlPrefix, e.g.
// "http://localhost:4444/wd/hub", and applies DefaultTimeouts to it.
//
// NOTE: if the server appears to hang or gives no response, check that the
// capabilities are of the correct shape for that driver.
func New(urlPrefix string, caps selenium.Capabilities) (*Driver, error) {
	wd, err := selenium.NewRemote(caps, urlPrefix)
	if err != nil {
		return nil, err
	}

	d := &Driver{Session: &Session{wd: wd}}
	if err := d.SetTimeouts(DefaultTimeouts()); err != nil {
		wd.Quit()
		return nil, err
	}
	return d, nil
}

// Quit ends the session and closes the browser.
//
// The browser does not close when the Driver is garbage collected; call Quit
// once you are done with it.
func (d *Driver) Quit() error {
	debugLog("quit session %s", d.SessionID())
	return d.wd.Quit()
}
