// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"time"

	"github.com/floatfield/floatfield/internal/anim"
)

// Direction selects how a floating label travels when it is raised.
type Direction uint8

const (
	// Up slides the label from the placeholder line up into the
	// caption line.
	Up Direction = iota
	// Down drops the label into the caption line from above.
	Down
)

// DefaultLabelDuration is the length of the raise and lower
// animations when FloatingLabel.Duration is zero.
const DefaultLabelDuration = 150 * time.Millisecond

// FloatingLabel tracks whether a field caption rests on the
// placeholder line or floats above the text. The label is raised
// exactly when the text is non-empty; focus only selects its color.
type FloatingLabel struct {
	Direction Direction
	// Duration of the raise and lower animations. Zero means
	// DefaultLabelDuration; negative disables animation.
	Duration time.Duration

	hasText bool
	focused bool
	phase   anim.Tween
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// FocusGained records that the input received focus.
func (l *FloatingLabel) FocusGained(now time.Time) {
	l.focused = true
	if l.hasText {
		l.raise(now)
	}
}

// FocusLost records that the input lost focus.
func (l *FloatingLabel) FocusLost(now time.Time) {
	l.focused = false
	if !l.hasText {
		l.lower(now)
	}
}

// TextChanged updates the label for the new input text. Only
// transitions between empty and non-empty text move the label.
func (l *FloatingLabel) TextChanged(text string, now time.Time) {
	has := text != ""
	if has == l.hasText {
		return
	}
	l.hasText = has
	if has {
		l.raise(now)
	} else {
		l.lower(now)
	}
}

// Raised reports whether the label floats above the text, or is on
// its way there.
func (l *FloatingLabel) Raised() bool {
	return l.hasText
}

// Focused reports whether the input has focus.
func (l *FloatingLabel) Focused() bool {
	return l.focused
}

// Progress returns the animation phase at now: 0 for the resting
// placeholder position, 1 for fully raised.
func (l *FloatingLabel) Progress(now time.Time) float32 {
	return l.phase.Value(now)
}

// Animating reports whether the label is still moving at now.
func (l *FloatingLabel) Animating(now time.Time) bool {
	return l.phase.Active(now)
}

// Color returns active while the input is focused and inactive
// otherwise.
func (l *FloatingLabel) Color(active, inactive color.NRGBA) color.NRGBA {
	if l.focused {
		return active
	}
	return inactive
}

func (l *FloatingLabel) raise(now time.Time) {
	l.move(now, 1)
}

func (l *FloatingLabel) lower(now time.Time) {
	l.move(now, 0)
}

func (l *FloatingLabel) move(now time.Time, to float32) {
	switch {
	case l.Duration < 0:
		l.phase.Set(to)
	case l.Duration == 0:
		l.phase.Duration = DefaultLabelDuration
		l.phase.Animate(now, to)
	default:
		l.phase.Duration = l.Duration
		l.phase.Animate(now, to)
	}
}
