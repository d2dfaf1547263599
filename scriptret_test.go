package seleniumx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wanmail/seleniumx/internal/wdtest"
)

func TestScriptRetConvert(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute$", map[string]interface{}{
		"title":  "Demo",
		"width":  1280,
		"ratios": []float64{0.5, 0.25},
	})

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScript("return summary();", nil)
	if err != nil {
		t.Fatalf("ExecuteScript returned error: %v", err)
	}

	var got struct {
		Title  string    `json:"title"`
		Width  int       `json:"width"`
		Ratios []float64 `json:"ratios"`
	}
	if err := ret.Convert(&got); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	want := struct {
		Title  string    `json:"title"`
		Width  int       `json:"width"`
		Ratios []float64 `json:"ratios"`
	}{"Demo", 1280, []float64{0.5, 0.25}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert produced diff (-want +got):\n%s", diff)
	}
}

func TestScriptRetScalar(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute$", "Hello WebDriver!")

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScript("return document.title;", nil)
	if err != nil {
		t.Fatalf("ExecuteScript returned error: %v", err)
	}
	var title string
	if err := ret.Convert(&title); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if title != "Hello WebDriver!" {
		t.Errorf("Convert gave %q, want %q", title, "Hello WebDriver!")
	}
	if got := string(ret.Value()); got != `"Hello WebDriver!"` {
		t.Errorf("Value() = %s, want %q", got, `"Hello WebDriver!"`)
	}
}

func TestScriptRetElement(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute$", wdtest.ElementRef("elem-9"))
	s.Reply("GET", "/element/elem-9/name$", "input")

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScript("return document.activeElement;", nil)
	if err != nil {
		t.Fatalf("ExecuteScript returned error: %v", err)
	}
	elem, err := ret.Element()
	if err != nil {
		t.Fatalf("Element returned error: %v", err)
	}
	if got, err := elem.TagName(); err != nil || got != "input" {
		t.Errorf("TagName() = %q, %v, want %q, nil", got, err, "input")
	}
}

func TestScriptRetElements(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute$", []map[string]string{
		wdtest.ElementRef("elem-1"),
		wdtest.ElementRef("elem-2"),
		wdtest.ElementRef("elem-3"),
	})

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScript("return document.querySelectorAll('button');", nil)
	if err != nil {
		t.Fatalf("ExecuteScript returned error: %v", err)
	}
	elems, err := ret.Elements()
	if err != nil {
		t.Fatalf("Elements returned error: %v", err)
	}
	if len(elems) != 3 {
		t.Errorf("Elements returned %d elements, want 3", len(elems))
	}
}

func TestScriptRetElementOnScalar(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute$", 42)

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScript("return 42;", nil)
	if err != nil {
		t.Fatalf("ExecuteScript returned error: %v", err)
	}
	if _, err := ret.Element(); err == nil {
		t.Error("Element returned nil error for a non-element value")
	}
}

func TestExecuteScriptAsync(t *testing.T) {
	s := wdtest.New()
	defer s.Close()
	s.Reply("POST", "/execute_async$", "done")

	d := newTestDriver(t, s)
	defer d.Quit()

	ret, err := d.ExecuteScriptAsync("arguments[arguments.length-1]('done');", nil)
	if err != nil {
		t.Fatalf("ExecuteScriptAsync returned error: %v", err)
	}
	var got string
	if err := ret.Convert(&got); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != "done" {
		t.Errorf("Convert gave %q, want %q", got, "done")
	}
}
