package seleniumx

import "time"

// Timeouts configures the three session timeouts defined by the WebDriver
// protocol. A zero Implicit is valid and means element queries fail
// immediately when nothing matches.
type Timeouts struct {
	// Script bounds the execution of scripts started via ExecuteScript and
	// ExecuteScriptAsync.
	Script time.Duration
	// PageLoad bounds navigation.
	PageLoad time.Duration
	// Implicit is how long the remote end polls for an element before
	// reporting that a query matched nothing.
	Implicit time.Duration
}

// DefaultTimeouts returns the timeouts New applies to every fresh session.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Script:   60 * time.Second,
		PageLoad: 60 * time.Second,
		Implicit: 0,
	}
}

// SetTimeouts forwards each timeout to the remote end.
func (s *Session) SetTimeouts(t Timeouts) error {
	if err := s.wd.SetAsyncScriptTimeout(t.Script); err != nil {
		return err
	}
	if err := s.wd.SetPageLoadTimeout(t.PageLoad); err != nil {
		return err
	}
	return s.wd.SetImplicitWaitTimeout(t.Implicit)
}
