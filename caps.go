package seleniumx

import (
	"fmt"

	crx3 "github.com/mediabuyerbot/go-crx3"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
)

// Chrome returns a capabilities map requesting a Chrome session.
func Chrome() selenium.Capabilities {
	return selenium.Capabilities{"browserName": "chrome"}
}

// ChromeHeadless returns a capabilities map requesting a headless Chrome
// session.
func ChromeHeadless() selenium.Capabilities {
	caps := Chrome()
	caps.AddChrome(chrome.Capabilities{
		Args: []string{"--headless", "--disable-gpu", "--no-sandbox"},
	})
	return caps
}

// Firefox returns a capabilities map requesting a Firefox session.
func Firefox() selenium.Capabilities {
	return selenium.Capabilities{"browserName": "firefox"}
}

// FirefoxHeadless returns a capabilities map requesting a headless Firefox
// session.
func FirefoxHeadless() selenium.Capabilities {
	caps := Firefox()
	caps.AddFirefox(firefox.Capabilities{
		Args: []string{"-headless"},
	})
	return caps
}

// ChromeExtension returns the base64 encoding of the packed extension at
// path, in the form the Extensions field of chrome.Capabilities expects.
func ChromeExtension(path string) (string, error) {
	buf, err := crx3.Extension(path).Base64()
	if err != nil {
		return "", fmt.Errorf("encoding extension %s: %v", path, err)
	}
	return string(buf), nil
}

// WithLogLevel requests remote capture of the given log component at the
// given level. Captured entries are retrieved with Session.Logs.
func WithLogLevel(caps selenium.Capabilities, typ log.Type, level log.Level) selenium.Capabilities {
	caps.SetLogLevel(typ, level)
	return caps
}
