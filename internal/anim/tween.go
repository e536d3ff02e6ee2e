// SPDX-License-Identifier: Unlicense OR MIT

// Package anim interpolates values over wall clock time.
package anim

import "time"

// Tween moves a value between 0 and 1 over Duration. The zero Tween
// rests at 0.
type Tween struct {
	Duration time.Duration

	start time.Time
	from  float32
	to    float32
}

// Set jumps to v without animating.
func (t *Tween) Set(v float32) {
	t.from, t.to = v, v
	t.start = time.Time{}
}

// Animate starts a transition towards to, continuing from the value
// at now so that reversing mid-flight does not jump.
func (t *Tween) Animate(now time.Time, to float32) {
	if to == t.to {
		return
	}
	t.from = t.Value(now)
	t.to = to
	t.start = now
}

// Target returns the value the tween is heading to.
func (t *Tween) Target() float32 {
	return t.to
}

// Value returns the eased value at now.
func (t *Tween) Value(now time.Time) float32 {
	p := t.progress(now)
	if p >= 1 {
		return t.to
	}
	return t.from + (t.to-t.from)*smoothstep(p)
}

// Active reports whether the tween is still moving at now.
func (t *Tween) Active(now time.Time) bool {
	return t.progress(now) < 1
}

func (t *Tween) progress(now time.Time) float32 {
	if t.start.IsZero() || t.Duration <= 0 || t.from == t.to {
		return 1
	}
	dt := now.Sub(t.start)
	if dt <= 0 {
		return 0
	}
	if dt >= t.Duration {
		return 1
	}
	return float32(dt) / float32(t.Duration)
}

func smoothstep(x float32) float32 {
	return x * x * (3 - 2*x)
}
