package seleniumx

import (
	"errors"
	"strings"

	"github.com/tebeka/selenium"
)

// Error strings defined by the W3C WebDriver specification, as surfaced in
// the underlying client's errors. The legacy wire protocol reports the same
// conditions by numeric status code instead.
const (
	msgNoSuchElement = "no such element"
	msgStaleElement  = "stale element reference"
	msgTimeout       = "timeout"
)

// Legacy wire protocol status codes for the conditions this layer remaps.
const (
	legacyNoSuchElement = 7
	legacyStaleElement  = 10
	legacyTimeout       = 21
	legacyScriptTimeout = 28
)

// NoSuchElementError is returned when an element query matches nothing.
// Query holds the locator that failed, when known.
type NoSuchElementError struct {
	Query string
	Err   error
}

func (e *NoSuchElementError) Error() string {
	if e.Query == "" {
		return msgNoSuchElement
	}
	return msgNoSuchElement + ": " + e.Query
}

func (e *NoSuchElementError) Unwrap() error { return e.Err }

// StaleElementError is returned when an element reference no longer points
// at a live DOM node, typically after a navigation or re-render.
type StaleElementError struct {
	Err error
}

func (e *StaleElementError) Error() string { return msgStaleElement }

func (e *StaleElementError) Unwrap() error { return e.Err }

// TimeoutError is returned when a command or wait exceeds its deadline.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	if e.Op == "" {
		return msgTimeout
	}
	return msgTimeout + ": " + e.Op
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// IsNoSuchElement reports whether err indicates a failed element query.
func IsNoSuchElement(err error) bool {
	var t *NoSuchElementError
	return errors.As(err, &t)
}

// IsStaleElement reports whether err indicates a stale element reference.
func IsStaleElement(err error) bool {
	var t *StaleElementError
	return errors.As(err, &t)
}

// IsTimeout reports whether err indicates an exceeded deadline.
func IsTimeout(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}

// remap classifies an error returned by the underlying client into one of
// the typed errors above. Errors that do not correspond to a known protocol
// condition pass through untouched.
func remap(err error) error {
	if err == nil {
		return nil
	}

	// The client reports W3C-compliant failures as *selenium.Error with the
	// specification's error string, and legacy failures with the numeric
	// status code. Everything else is a flat message.
	var serr *selenium.Error
	if errors.As(err, &serr) {
		switch {
		case serr.Err == msgNoSuchElement, serr.LegacyCode == legacyNoSuchElement:
			return &NoSuchElementError{Err: err}
		case serr.Err == msgStaleElement, serr.LegacyCode == legacyStaleElement:
			return &StaleElementError{Err: err}
		case serr.Err == msgTimeout, serr.Err == "script timeout",
			serr.LegacyCode == legacyTimeout, serr.LegacyCode == legacyScriptTimeout:
			return &TimeoutError{Err: err}
		}
		return err
	}

	// Flat messages carry the W3C error string at the front. "timeout" is
	// too common a word to match anywhere in the message; anchor it so
	// unrelated transport errors pass through.
	msg := err.Error()
	switch {
	case strings.Contains(msg, msgNoSuchElement):
		return &NoSuchElementError{Err: err}
	case strings.Contains(msg, msgStaleElement):
		return &StaleElementError{Err: err}
	case strings.HasPrefix(msg, msgTimeout):
		return &TimeoutError{Err: err}
	}
	return err
}

// remapFind classifies an error from an element query, attaching the locator
// so callers know which query failed.
func remapFind(err error, by By) error {
	err = remap(err)
	var nse *NoSuchElementError
	if errors.As(err, &nse) && nse.Query == "" {
		nse.Query = by.String()
	}
	return err
}

// isNilValue reports whether err is the underlying client's complaint about
// a JSON null value, which is how the wire protocol encodes a missing
// attribute or property.
func isNilValue(err error) bool {
	return err != nil && strings.Contains(err.Error(), "nil return value")
}
