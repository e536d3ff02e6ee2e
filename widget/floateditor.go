// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"

	"github.com/floatfield/floatfield/validate"
)

// FloatingEditor is a single field text editor with a floating label
// and pattern validation. Text and focus changes of the wrapped
// Editor are forwarded to Field once per Update.
type FloatingEditor struct {
	Editor giowidget.Editor
	Field  Field

	// pending holds events not yet returned by Update.
	pending []FieldEvent
}

// FieldEvent is the interface implemented by the events returned by
// FloatingEditor.Update.
type FieldEvent interface {
	isFieldEvent()
}

// A ChangeEvent is generated when the text differs from the previous
// Update.
type ChangeEvent struct {
	Text string
}

// A FocusEvent is generated when the editor gains or loses focus.
type FocusEvent struct {
	Focused bool
}

// A SubmitEvent is generated when Editor.Submit is set and the user
// presses return. Submitting ends editing.
type SubmitEvent struct {
	Text string
}

// A ValidateEvent is generated for every check of the text.
type ValidateEvent struct {
	Result validate.Result
	// Editing reports whether the editor had focus during the check.
	Editing bool
}

func (ChangeEvent) isFieldEvent()   {}
func (FocusEvent) isFieldEvent()    {}
func (SubmitEvent) isFieldEvent()   {}
func (ValidateEvent) isFieldEvent() {}

// Update processes editor events and returns the next field event,
// if any.
func (e *FloatingEditor) Update(gtx layout.Context) (FieldEvent, bool) {
	if len(e.pending) == 0 {
		e.processEditor(gtx)
	}
	return e.next()
}

// Layout lays out the editor. Events not consumed by Update before
// Layout are discarded, although the Validator handler still sees
// every check.
func (e *FloatingEditor) Layout(gtx layout.Context, lt *text.Shaper, font font.Font, size unit.Sp, textMaterial, selectMaterial op.CallOp) layout.Dimensions {
	for {
		if _, ok := e.Update(gtx); !ok {
			break
		}
	}
	if e.Field.Label.Animating(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return e.Editor.Layout(gtx, lt, font, size, textMaterial, selectMaterial)
}

// Focus requests the input focus for the editor.
func (e *FloatingEditor) Focus(gtx layout.Context) {
	gtx.Execute(key.FocusCmd{Tag: &e.Editor})
}

// SetText replaces the editor contents. The field sees the new text
// at the next Update.
func (e *FloatingEditor) SetText(s string) {
	e.Editor.SetText(s)
}

// Text returns the editor contents.
func (e *FloatingEditor) Text() string {
	return e.Editor.Text()
}

// Valid reports whether the latest check passed.
func (e *FloatingEditor) Valid() bool {
	return e.Field.Valid()
}

func (e *FloatingEditor) processEditor(gtx layout.Context) {
	submitted := false
	for {
		ev, ok := e.Editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(giowidget.SubmitEvent); ok {
			submitted = true
		}
	}
	e.sync(gtx.Now, e.Editor.Text(), gtx.Focused(&e.Editor))
	if submitted {
		e.submit()
	}
}

// sync forwards the observed editor state to the field. Focus gain is
// applied before the text, focus loss after it, so that the text typed
// in the same frame is checked with the right editing flag.
func (e *FloatingEditor) sync(now time.Time, txt string, focused bool) {
	if focused {
		e.setFocus(now, true)
	}
	if txt != e.Field.Text() {
		e.pending = append(e.pending, ChangeEvent{Text: txt})
		e.validated(e.Field.SetText(txt, now))
	}
	if !focused {
		e.setFocus(now, false)
	}
}

func (e *FloatingEditor) setFocus(now time.Time, focused bool) {
	if focused == e.Field.Focused() {
		return
	}
	e.pending = append(e.pending, FocusEvent{Focused: focused})
	e.validated(e.Field.SetFocus(focused, now))
}

func (e *FloatingEditor) submit() {
	e.pending = append(e.pending, SubmitEvent{Text: e.Field.Text()})
	e.validated(e.Field.EndEdit())
}

func (e *FloatingEditor) validated(r validate.Result, ok bool) {
	if ok {
		e.pending = append(e.pending, ValidateEvent{Result: r, Editing: e.Field.Focused()})
	}
}

func (e *FloatingEditor) next() (FieldEvent, bool) {
	if len(e.pending) == 0 {
		return nil, false
	}
	ev := e.pending[0]
	e.pending = e.pending[1:]
	if len(e.pending) == 0 {
		e.pending = nil
	}
	return ev, true
}
