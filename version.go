package seleniumx

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// BrowserVersion reports the version of the browser backing this session,
// read from the negotiated capabilities. W3C remote ends report it under
// "browserVersion", legacy ones under "version".
func (s *Session) BrowserVersion() (semver.Version, error) {
	caps, err := s.wd.Capabilities()
	if err != nil {
		return semver.Version{}, err
	}
	for _, key := range []string{"browserVersion", "version"} {
		if v, ok := caps[key].(string); ok && v != "" {
			// Chrome reports four version segments; keep the leading three so
			// the value parses as a semantic version.
			if parts := strings.SplitN(v, ".", 4); len(parts) == 4 {
				v = strings.Join(parts[:3], ".")
			}
			return semver.ParseTolerant(v)
		}
	}
	return semver.Version{}, fmt.Errorf("no browser version in session capabilities")
}
