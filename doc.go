/*
Package seleniumx provides an ergonomic layer over the tebeka/selenium
WebDriver client.

The underlying client speaks the wire protocol, manages the HTTP session and
serializes commands; this package only adds typed locators and accessors,
error re-mapping, and helpers for deserializing script return values. You
still need a running WebDriver server (chromedriver, geckodriver, or a
Selenium grid) to connect to.

Example usage:

	package main

	import (
		"fmt"

		"github.com/wanmail/seleniumx"
	)

	// Errors are ignored for brevity.

	func main() {
		driver, _ := seleniumx.New("http://localhost:4444/wd/hub", seleniumx.ChromeHeadless())
		defer driver.Quit()

		driver.Get("https://play.golang.org/?simple=1")

		// Locators are typed; errors carry the query that failed.
		code, _ := driver.Find(seleniumx.ByCSS("#code"))
		code.Clear()
		code.SendKeys("package main")

		btn, _ := driver.Find(seleniumx.ByCSS("#run"))
		btn.Click()

		// Script return values deserialize into Go types.
		ret, _ := driver.ExecuteScript("return document.title;", nil)
		var title string
		ret.Convert(&title)
		fmt.Println(title)
	}
*/
package seleniumx
