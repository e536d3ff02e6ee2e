// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"
	"time"
)

var (
	active   = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
	inactive = color.NRGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff}
)

func TestFloatingLabelRaisedIffText(t *testing.T) {
	var l FloatingLabel
	now := time.Unix(1000, 0)
	steps := []struct {
		name   string
		do     func()
		raised bool
	}{
		{"focus empty", func() { l.FocusGained(now) }, false},
		{"type", func() { l.TextChanged("a", now) }, true},
		{"type more", func() { l.TextChanged("ab", now) }, true},
		{"blur with text", func() { l.FocusLost(now) }, true},
		{"focus with text", func() { l.FocusGained(now) }, true},
		{"clear", func() { l.TextChanged("", now) }, false},
		{"blur empty", func() { l.FocusLost(now) }, false},
		{"set text unfocused", func() { l.TextChanged("x", now) }, true},
	}
	for _, s := range steps {
		s.do()
		if got := l.Raised(); got != s.raised {
			t.Errorf("%s: Raised() = %v, want %v", s.name, got, s.raised)
		}
	}
}

func TestFloatingLabelColor(t *testing.T) {
	var l FloatingLabel
	now := time.Unix(1000, 0)
	l.TextChanged("a", now)
	if got := l.Color(active, inactive); got != inactive {
		t.Errorf("unfocused color = %v, want %v", got, inactive)
	}
	l.FocusGained(now)
	if got := l.Color(active, inactive); got != active {
		t.Errorf("focused color = %v, want %v", got, active)
	}
	l.FocusLost(now)
	if got := l.Color(active, inactive); got != inactive {
		t.Errorf("color after blur = %v, want %v", got, inactive)
	}
}

func TestFloatingLabelAnimation(t *testing.T) {
	l := FloatingLabel{Duration: 100 * time.Millisecond}
	start := time.Unix(1000, 0)
	if p := l.Progress(start); p != 0 {
		t.Fatalf("initial progress = %v, want 0", p)
	}
	l.TextChanged("a", start)
	if !l.Animating(start) {
		t.Error("label not animating after text appeared")
	}
	if p := l.Progress(start.Add(50 * time.Millisecond)); p <= 0 || p >= 1 {
		t.Errorf("progress half way = %v, want in (0, 1)", p)
	}
	end := start.Add(100 * time.Millisecond)
	if p := l.Progress(end); p != 1 {
		t.Errorf("progress after animation = %v, want 1", p)
	}
	if l.Animating(end) {
		t.Error("label still animating after its duration")
	}
}

func TestFloatingLabelRoundTrip(t *testing.T) {
	l := FloatingLabel{Duration: 100 * time.Millisecond}
	now := time.Unix(1000, 0)
	before := struct {
		raised   bool
		progress float32
		color    color.NRGBA
	}{l.Raised(), l.Progress(now), l.Color(active, inactive)}

	l.TextChanged("hello", now)
	now = now.Add(time.Second)
	l.TextChanged("", now)
	now = now.Add(time.Second)

	if got := l.Raised(); got != before.raised {
		t.Errorf("Raised() = %v after round trip, want %v", got, before.raised)
	}
	if got := l.Progress(now); got != before.progress {
		t.Errorf("Progress() = %v after round trip, want %v", got, before.progress)
	}
	if got := l.Color(active, inactive); got != before.color {
		t.Errorf("Color() = %v after round trip, want %v", got, before.color)
	}
}

func TestFloatingLabelNoAnimation(t *testing.T) {
	l := FloatingLabel{Duration: -1}
	now := time.Unix(1000, 0)
	l.TextChanged("a", now)
	if p := l.Progress(now); p != 1 {
		t.Errorf("progress = %v, want 1 without animation", p)
	}
	if l.Animating(now) {
		t.Error("label animating with animation disabled")
	}
}

func TestFloatingLabelDefaultDuration(t *testing.T) {
	var l FloatingLabel
	now := time.Unix(1000, 0)
	l.TextChanged("a", now)
	if !l.Animating(now.Add(DefaultLabelDuration / 2)) {
		t.Error("label not animating within the default duration")
	}
	if l.Animating(now.Add(DefaultLabelDuration)) {
		t.Error("label animating past the default duration")
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Down.String() != "down" {
		t.Errorf("Direction strings = %q, %q", Up, Down)
	}
}
