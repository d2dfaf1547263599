package seleniumx

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectElement drives a <select> dropdown.
type SelectElement struct {
	element *Element
	isMulti bool
}

// Select wraps el, which must be a <select> element.
func Select(el *Element) (*SelectElement, error) {
	tagName, err := el.TagName()
	if err != nil {
		return nil, err
	}
	if strings.ToLower(tagName) != "select" {
		return nil, fmt.Errorf(`element should have been "select" but was %q`, tagName)
	}

	mult, err := el.Attr("multiple")
	if err != nil {
		return nil, err
	}
	return &SelectElement{
		element: el,
		isMulti: mult != "" && strings.ToLower(mult) != "false",
	}, nil
}

// Element returns the wrapped <select> element.
func (s *SelectElement) Element() *Element { return s.element }

// IsMultiple reports whether the dropdown allows several options to be
// selected at once, per its "multiple" attribute.
func (s *SelectElement) IsMultiple() bool { return s.isMulti }

// Options returns every option of the dropdown.
func (s *SelectElement) Options() ([]*Element, error) {
	return s.element.FindAll(ByTag("option"))
}

// SelectedOptions returns the options that are currently selected.
func (s *SelectElement) SelectedOptions() ([]*Element, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	var selected []*Element
	for _, o := range opts {
		sel, err := o.IsSelected()
		if err != nil {
			return nil, err
		}
		if sel {
			selected = append(selected, o)
		}
	}
	return selected, nil
}

// FirstSelectedOption returns the first selected option of the dropdown.
func (s *SelectElement) FirstSelectedOption() (*Element, error) {
	opts, err := s.SelectedOptions()
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("no options are selected")
	}
	return opts[0], nil
}

// SelectByVisibleText selects every option whose display text matches text.
// That is, given "Bar" this selects an option like
//
//	<option value="foo">Bar</option>
func (s *SelectElement) SelectByVisibleText(text string) error {
	options, err := s.element.FindAll(ByXPath(`.//option[normalize-space(.) = "` + escapeQuotes(text) + `"]`))
	if err != nil {
		return err
	}

	for _, option := range options {
		if err := s.setSelected(option, true); err != nil {
			return err
		}
		if !s.isMulti {
			return nil
		}
	}

	matched := len(options) > 0
	if !matched && strings.Contains(text, " ") {
		// The whitespace inside the option text may be collapsed differently
		// than in the query; retry on the longest space-free fragment and
		// compare trimmed text.
		fragment := longestWordOf(text)
		var candidates []*Element
		if fragment == "" {
			candidates, err = s.Options()
		} else {
			candidates, err = s.element.FindAll(ByXPath(`.//option[contains(., "` + escapeQuotes(fragment) + `")]`))
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(text)
		for _, option := range candidates {
			o, err := option.Text()
			if err != nil {
				return err
			}
			if trimmed == strings.TrimSpace(o) {
				if err := s.setSelected(option, true); err != nil {
					return err
				}
				if !s.isMulti {
					return nil
				}
				matched = true
			}
		}
	}
	if !matched {
		return fmt.Errorf("cannot locate option with text: %s", text)
	}
	return nil
}

// SelectByIndex selects the option whose "index" attribute equals idx. The
// attribute is examined rather than counting options.
func (s *SelectElement) SelectByIndex(idx int) error {
	return s.setSelectedByIndex(idx, true)
}

// SelectByValue selects every option whose value matches. That is, given
// "foo" this selects an option like
//
//	<option value="foo">Bar</option>
func (s *SelectElement) SelectByValue(value string) error {
	opts, err := s.findOptionsByValue(value)
	if err != nil {
		return err
	}
	for _, option := range opts {
		if err := s.setSelected(option, true); err != nil {
			return err
		}
		if !s.isMulti {
			return nil
		}
	}
	return nil
}

// DeselectAll clears every selected entry. Only valid on a multi-select.
func (s *SelectElement) DeselectAll() error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	opts, err := s.SelectedOptions()
	if err != nil {
		return err
	}
	for _, o := range opts {
		if err := s.setSelected(o, false); err != nil {
			return err
		}
	}
	return nil
}

// DeselectByValue deselects every option whose value matches. Only valid on
// a multi-select.
func (s *SelectElement) DeselectByValue(value string) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	opts, err := s.findOptionsByValue(value)
	if err != nil {
		return err
	}
	for _, o := range opts {
		if err := s.setSelected(o, false); err != nil {
			return err
		}
	}
	return nil
}

// DeselectByIndex deselects the option whose "index" attribute equals idx.
// Only valid on a multi-select.
func (s *SelectElement) DeselectByIndex(idx int) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}
	return s.setSelectedByIndex(idx, false)
}

// DeselectByVisibleText deselects every option whose display text matches.
// Only valid on a multi-select.
func (s *SelectElement) DeselectByVisibleText(text string) error {
	if !s.isMulti {
		return fmt.Errorf("you may only deselect options of a multi-select")
	}

	options, err := s.element.FindAll(ByXPath(`.//option[normalize-space(.) = "` + escapeQuotes(text) + `"]`))
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("cannot locate option with text: %s", text)
	}

	for _, option := range options {
		if err := s.setSelected(option, false); err != nil {
			return err
		}
	}
	return nil
}

func escapeQuotes(str string) string {
	return strings.Replace(str, `"`, `\"`, -1)
}

func longestWordOf(s string) string {
	result := ""
	for _, t := range strings.Split(s, " ") {
		if len(t) > len(result) {
			result = t
		}
	}
	return result
}

func (s *SelectElement) findOptionsByValue(value string) ([]*Element, error) {
	opts, err := s.element.FindAll(ByXPath(`.//option[@value = "` + escapeQuotes(value) + `"]`))
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("cannot locate option with value: %s", value)
	}
	return opts, nil
}

func (s *SelectElement) setSelectedByIndex(idx int, selected bool) error {
	opts, err := s.element.FindAll(ByXPath(`.//option[@index = "` + strconv.Itoa(idx) + `"]`))
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return fmt.Errorf("cannot locate option with index: %d", idx)
	}
	return s.setSelected(opts[0], selected)
}

func (s *SelectElement) setSelected(option *Element, selected bool) error {
	sel, err := option.IsSelected()
	if err != nil {
		return err
	}
	if sel != selected {
		return option.Click()
	}
	return nil
}
