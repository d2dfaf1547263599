package seleniumx

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// By pairs an element-finding strategy with its query string. Construct one
// with the By* functions and pass it to Find, FindAll or WaitForElement.
type By struct {
	using string
	value string
}

// ByID locates an element by the value of its "id" attribute.
func ByID(id string) By { return By{selenium.ByID, id} }

// ByXPath locates elements matching an XPath expression.
func ByXPath(xpath string) By { return By{selenium.ByXPATH, xpath} }

// ByLinkText locates anchor elements whose visible text matches exactly.
func ByLinkText(text string) By { return By{selenium.ByLinkText, text} }

// ByPartialLinkText locates anchor elements whose visible text contains the
// given substring.
func ByPartialLinkText(text string) By { return By{selenium.ByPartialLinkText, text} }

// ByName locates elements by the value of their "name" attribute.
func ByName(name string) By { return By{selenium.ByName, name} }

// ByTag locates elements by tag name.
func ByTag(name string) By { return By{selenium.ByTagName, name} }

// ByClassName locates elements that carry the given class.
func ByClassName(name string) By { return By{selenium.ByClassName, name} }

// ByCSS locates elements matching a CSS selector.
func ByCSS(selector string) By { return By{selenium.ByCSSSelector, selector} }

// Using returns the wire name of the strategy, as understood by the
// underlying client.
func (b By) Using() string { return b.using }

// Value returns the query string.
func (b By) Value() string { return b.value }

// String renders the locator for error messages.
func (b By) String() string {
	return fmt.Sprintf("%s=%q", b.using, b.value)
}
