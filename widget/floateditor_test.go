// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/floatfield/floatfield/validate"
)

func drain(e *FloatingEditor) []FieldEvent {
	var events []FieldEvent
	for {
		ev, ok := e.next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestFloatingEditorEvents(t *testing.T) {
	e := new(FloatingEditor)
	if err := e.Field.Configure(validate.Config{Pattern: `-?\d+`}); err != nil {
		t.Fatal(err)
	}
	now := time.Unix(1000, 0)

	// Focus and first keystroke in the same frame.
	e.sync(now, "4", true)
	want := []FieldEvent{
		FocusEvent{Focused: true},
		ChangeEvent{Text: "4"},
		ValidateEvent{Result: validate.Passed, Editing: true},
	}
	if diff := cmp.Diff(want, drain(e)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	// Nothing changed.
	e.sync(now, "4", true)
	if events := drain(e); len(events) != 0 {
		t.Errorf("unexpected events for an unchanged editor: %v", events)
	}

	// Keystroke and focus loss in the same frame.
	e.sync(now, "4x", false)
	want = []FieldEvent{
		ChangeEvent{Text: "4x"},
		ValidateEvent{Result: validate.Failed, Editing: true},
		FocusEvent{Focused: false},
	}
	if diff := cmp.Diff(want, drain(e)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if e.Valid() {
		t.Error("Valid() = true for failing text")
	}
}

func TestFloatingEditorSubmit(t *testing.T) {
	e := new(FloatingEditor)
	if err := e.Field.Configure(validate.Config{Pattern: `[a-z]+`, OnEditEnd: true}); err != nil {
		t.Fatal(err)
	}
	now := time.Unix(1000, 0)
	e.sync(now, "abc", true)
	e.submit()
	want := []FieldEvent{
		FocusEvent{Focused: true},
		ChangeEvent{Text: "abc"},
		SubmitEvent{Text: "abc"},
		ValidateEvent{Result: validate.Passed, Editing: true},
	}
	if diff := cmp.Diff(want, drain(e)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if !e.Valid() {
		t.Error("Valid() = false after submitting valid text")
	}
}

func TestFloatingEditorLabelFollowsText(t *testing.T) {
	e := new(FloatingEditor)
	now := time.Unix(1000, 0)
	e.sync(now, "a", false)
	if !e.Field.Label.Raised() {
		t.Error("label not raised for text set while unfocused")
	}
	e.sync(now, "", false)
	if e.Field.Label.Raised() {
		t.Error("label raised for empty text")
	}
	drain(e)
}
