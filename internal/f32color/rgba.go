// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color contains color helpers shared by the field widgets.
package f32color

import "image/color"

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + .5)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Fallback returns the first color that is set. The zero color
// counts as unset.
func Fallback(colors ...color.NRGBA) color.NRGBA {
	for _, c := range colors {
		if c != (color.NRGBA{}) {
			return c
		}
	}
	return color.NRGBA{}
}

// Gray returns an opaque gray of the given white level in [0, 1].
func Gray(white float32) color.NRGBA {
	if white < 0 {
		white = 0
	} else if white > 1 {
		white = 1
	}
	v := uint8(float32(white*0xFF) + .5)
	return color.NRGBA{R: v, G: v, B: v, A: 0xFF}
}
