// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"time"

	"github.com/floatfield/floatfield/internal/f32color"
	"github.com/floatfield/floatfield/validate"
)

// Field combines a FloatingLabel and a validate.Validator behind the
// text and focus notifications of an input. It does not depend on a
// particular editor; FloatingEditor drives it from a Gio editor.
type Field struct {
	Label     FloatingLabel
	Validator validate.Validator

	text    string
	focused bool
}

// Configure sets the validation configuration. See
// validate.Validator.Configure.
func (f *Field) Configure(cfg validate.Config) error {
	return f.Validator.Configure(cfg)
}

// Text returns the text last passed to SetText.
func (f *Field) Text() string {
	return f.text
}

// Focused reports whether the input has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// SetText notifies the field of new input text. When validating while
// typing, the text is checked and the result returned with ok set.
func (f *Field) SetText(text string, now time.Time) (r validate.Result, ok bool) {
	if text == f.text {
		return 0, false
	}
	f.text = text
	f.Label.TextChanged(text, now)
	if f.Validator.Config().OnEditEnd {
		return 0, false
	}
	return f.Check(), true
}

// SetFocus notifies the field of a focus change. Losing focus ends
// editing, see EndEdit.
func (f *Field) SetFocus(focused bool, now time.Time) (r validate.Result, ok bool) {
	if focused == f.focused {
		return 0, false
	}
	f.focused = focused
	if focused {
		f.Label.FocusGained(now)
		return 0, false
	}
	f.Label.FocusLost(now)
	return f.EndEdit()
}

// EndEdit notifies the field that editing completed. The text is
// checked only when validation is deferred to the end of editing.
func (f *Field) EndEdit() (r validate.Result, ok bool) {
	if !f.Validator.Config().OnEditEnd {
		return 0, false
	}
	return f.Check(), true
}

// Check validates the current text regardless of configuration.
func (f *Field) Check() validate.Result {
	return f.Validator.Check(f.text, f.focused)
}

// Valid reports whether the latest check passed.
func (f *Field) Valid() bool {
	return f.Validator.Valid()
}

// TextColor returns the color for the text given the latest check.
// Passed text uses valid and Failed text invalid, both falling back to
// def when zero. Text too short to validate keeps def.
func (f *Field) TextColor(def, valid, invalid color.NRGBA) color.NRGBA {
	switch f.Validator.Result() {
	case validate.Passed:
		return f32color.Fallback(valid, def)
	case validate.Failed:
		return f32color.Fallback(invalid, def)
	default:
		return def
	}
}
