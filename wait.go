package seleniumx

import (
	"strings"
	"time"

	"github.com/tebeka/selenium"
)

const (
	// DefaultWaitTimeout is the deadline used by Wait.
	DefaultWaitTimeout = 60 * time.Second
	// DefaultWaitInterval is the polling interval for wait helpers.
	DefaultWaitInterval = 100 * time.Millisecond
)

// WaitForElement polls until an element matching the locator appears, then
// returns it. A deadline overrun yields a TimeoutError naming the query.
func (s *Session) WaitForElement(by By, timeout time.Duration) (*Element, error) {
	var found *Element
	cond := func(wd selenium.WebDriver) (bool, error) {
		elem, err := s.Find(by)
		if err != nil {
			if IsNoSuchElement(err) {
				return false, nil
			}
			return false, err
		}
		found = elem
		return true, nil
	}
	if err := s.wd.WaitWithTimeoutAndInterval(cond, timeout, DefaultWaitInterval); err != nil {
		return nil, waitError("wait for element "+by.String(), err)
	}
	return found, nil
}

// WaitUntil polls the condition until it reports true or the timeout
// elapses.
func (s *Session) WaitUntil(cond selenium.Condition, timeout time.Duration) error {
	if err := s.wd.WaitWithTimeout(cond, timeout); err != nil {
		return waitError("wait", err)
	}
	return nil
}

// Wait polls the condition with DefaultWaitTimeout.
func (s *Session) Wait(cond selenium.Condition) error {
	return s.WaitUntil(cond, DefaultWaitTimeout)
}

// waitError wraps a deadline overrun from the underlying client's polling
// loop; condition errors pass through as-is.
func waitError(op string, err error) error {
	if strings.HasPrefix(err.Error(), "timeout after") {
		return &TimeoutError{Op: op, Err: err}
	}
	return err
}
