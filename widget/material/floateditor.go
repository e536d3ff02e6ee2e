// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/floatfield/floatfield/internal/f32color"
	"github.com/floatfield/floatfield/validate"
	"github.com/floatfield/floatfield/widget"
)

// DefaultInactiveColor is the floating label color of an unfocused
// field when neither the style nor the caller sets one.
var DefaultInactiveColor = f32color.Gray(.7)

var (
	validIcon   = mustIcon(giowidget.NewIcon(icons.ActionCheckCircle))
	invalidIcon = mustIcon(giowidget.NewIcon(icons.AlertErrorOutline))
)

// FloatingEditorStyle draws a widget.FloatingEditor: a caption line
// for the floating label above a single line editor, and an icon
// showing the latest validation result.
//
// Zero colors are unset. The label uses ActiveColor while focused,
// falling back to the theme's ContrastBg, and InactiveColor otherwise,
// falling back to DefaultInactiveColor. ValidColor and InvalidColor
// fall back to Color.
type FloatingEditorStyle struct {
	Font font.Font
	// TextSize is the size of the text and of the resting label.
	TextSize unit.Sp
	// LabelSize is the size of the floating label.
	LabelSize unit.Sp
	// Label is the caption. It doubles as the hint of the empty editor.
	Label string
	// Color is the text color.
	Color color.NRGBA
	// HintColor is the color of the label while it rests in the
	// empty editor.
	HintColor      color.NRGBA
	ActiveColor    color.NRGBA
	InactiveColor  color.NRGBA
	ValidColor     color.NRGBA
	InvalidColor   color.NRGBA
	SelectionColor color.NRGBA
	// ValidIcon and InvalidIcon are drawn after the editor for
	// Passed and Failed text. Nil icons are not drawn.
	ValidIcon   *giowidget.Icon
	InvalidIcon *giowidget.Icon
	IconSize    unit.Dp
	Editor      *widget.FloatingEditor

	shaper *text.Shaper
	accent color.NRGBA
}

// FloatingEditor returns the style of a floating label editor for
// the theme.
func FloatingEditor(th *giomaterial.Theme, editor *widget.FloatingEditor, label string) FloatingEditorStyle {
	return FloatingEditorStyle{
		Editor:         editor,
		Label:          label,
		TextSize:       th.TextSize,
		LabelSize:      th.TextSize * 12.0 / 16.0,
		Color:          th.Fg,
		HintColor:      f32color.MulAlpha(th.Fg, 0xbb),
		SelectionColor: f32color.MulAlpha(th.ContrastBg, 0x60),
		ValidIcon:      validIcon,
		InvalidIcon:    invalidIcon,
		IconSize:       unit.Dp(20),
		shaper:         th.Shaper,
		accent:         th.ContrastBg,
	}
}

func (s FloatingEditorStyle) Layout(gtx layout.Context) layout.Dimensions {
	// Apply pending text and focus changes before drawing the caption.
	for {
		if _, ok := s.Editor.Update(gtx); !ok {
			break
		}
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(s.layoutCaption),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, s.layoutEditor),
				layout.Rigid(s.layoutIcon),
			)
		}),
	)
}

// LabelColor returns the floating label color for the current focus
// state.
func (s FloatingEditorStyle) LabelColor() color.NRGBA {
	return s.Editor.Field.Label.Color(
		f32color.Fallback(s.ActiveColor, s.accent),
		f32color.Fallback(s.InactiveColor, DefaultInactiveColor),
	)
}

// TextColor returns the text color for the latest validation result.
func (s FloatingEditorStyle) TextColor() color.NRGBA {
	return s.Editor.Field.TextColor(s.Color, s.ValidColor, s.InvalidColor)
}

// layoutCaption reserves the caption line and draws the label in it,
// offset and faded by the animation phase.
func (s FloatingEditorStyle) layoutCaption(gtx layout.Context) layout.Dimensions {
	lbl := &s.Editor.Field.Label
	p := lbl.Progress(gtx.Now)
	col := f32color.MulAlpha(s.LabelColor(), uint8(p*0xFF+.5))
	mat := colorMaterial(gtx.Ops, col)

	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	tl := giowidget.Label{MaxLines: 1, Alignment: s.Editor.Editor.Alignment}
	dims := tl.Layout(gtx, s.shaper, s.Font, s.LabelSize, s.Label, mat)
	call := macro.Stop()

	if p > 0 {
		travel := int(float32(dims.Size.Y)*(1-p) + .5)
		if lbl.Direction == widget.Down {
			travel = -travel
		}
		off := op.Offset(image.Pt(0, travel)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()
	}
	return layout.Dimensions{Size: dims.Size}
}

// layoutEditor draws the editor text in the validation color, or the
// label as a hint while the editor is empty.
func (s FloatingEditorStyle) layoutEditor(gtx layout.Context) layout.Dimensions {
	textCol := s.TextColor()
	if !gtx.Enabled() {
		textCol = f32color.MulAlpha(textCol, 150)
	}
	textMaterial := colorMaterial(gtx.Ops, textCol)
	hintMaterial := colorMaterial(gtx.Ops, s.HintColor)
	selectMaterial := colorMaterial(gtx.Ops, s.SelectionColor)

	macro := op.Record(gtx.Ops)
	tl := giowidget.Label{MaxLines: 1, Alignment: s.Editor.Editor.Alignment}
	dims := tl.Layout(gtx, s.shaper, s.Font, s.TextSize, s.Label, hintMaterial)
	hint := macro.Stop()

	if w := dims.Size.X; gtx.Constraints.Min.X < w {
		gtx.Constraints.Min.X = w
	}
	if h := dims.Size.Y; gtx.Constraints.Min.Y < h {
		gtx.Constraints.Min.Y = h
	}
	dims = s.Editor.Layout(gtx, s.shaper, s.Font, s.TextSize, textMaterial, selectMaterial)
	if s.Editor.Editor.Len() == 0 {
		hint.Add(gtx.Ops)
	}
	return dims
}

func (s FloatingEditorStyle) layoutIcon(gtx layout.Context) layout.Dimensions {
	var ic *giowidget.Icon
	var col color.NRGBA
	switch s.Editor.Field.Validator.Result() {
	case validate.Passed:
		ic, col = s.ValidIcon, f32color.Fallback(s.ValidColor, s.Color)
	case validate.Failed:
		ic, col = s.InvalidIcon, f32color.Fallback(s.InvalidColor, s.Color)
	}
	if ic == nil {
		return layout.Dimensions{}
	}
	return layout.Inset{Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Dp(s.IconSize)
		gtx.Constraints.Min = image.Pt(sz, sz)
		return ic.Layout(gtx, col)
	})
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return m.Stop()
}

func mustIcon(ic *giowidget.Icon, err error) *giowidget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
