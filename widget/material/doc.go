// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the field widgets in the Material design,
// using the colors, sizes and shaper of a gioui.org/widget/material
// Theme.
//
// A widget.FloatingEditor holds the state; the style returned by
// FloatingEditor draws it:
//
//	th := material.NewTheme()
//	var ed widget.FloatingEditor
//
//	style := floatmaterial.FloatingEditor(th, &ed, "Amount")
//	style.InvalidColor = color.NRGBA{R: 0xc0, A: 0xff}
//	style.Layout(gtx)
//
// The label rests in the empty editor as its hint. Once the editor
// has text, the label floats into the caption line above it.
package material
