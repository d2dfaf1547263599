package seleniumx

import "testing"

func TestByConstructors(t *testing.T) {
	tests := []struct {
		desc       string
		by         By
		wantUsing  string
		wantValue  string
		wantString string
	}{
		{"id", ByID("button1"), "id", "button1", `id="button1"`},
		{"xpath", ByXPath("//div"), "xpath", "//div", `xpath="//div"`},
		{"link text", ByLinkText("Next"), "link text", "Next", `link text="Next"`},
		{"partial link text", ByPartialLinkText("Nex"), "partial link text", "Nex", `partial link text="Nex"`},
		{"name", ByName("q"), "name", "q", `name="q"`},
		{"tag name", ByTag("button"), "tag name", "button", `tag name="button"`},
		{"class name", ByClassName("pure-button"), "class name", "pure-button", `class name="pure-button"`},
		{"css selector", ByCSS("#code"), "css selector", "#code", `css selector="#code"`},
	}
	for _, test := range tests {
		if got := test.by.Using(); got != test.wantUsing {
			t.Errorf("%s: Using() = %q, want %q", test.desc, got, test.wantUsing)
		}
		if got := test.by.Value(); got != test.wantValue {
			t.Errorf("%s: Value() = %q, want %q", test.desc, got, test.wantValue)
		}
		if got := test.by.String(); got != test.wantString {
			t.Errorf("%s: String() = %q, want %q", test.desc, got, test.wantString)
		}
	}
}
