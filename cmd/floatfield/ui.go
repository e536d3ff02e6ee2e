// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/floatfield/floatfield/internal/cli"
	"github.com/floatfield/floatfield/internal/config"
	"github.com/floatfield/floatfield/validate"
	"github.com/floatfield/floatfield/widget"
	floatmaterial "github.com/floatfield/floatfield/widget/material"
)

const emailPattern = `[^@\s]+@[^@\s]+\.[a-z]{2,}`

var (
	validColor   = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	invalidColor = color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
)

type field struct {
	name  string
	label string
	ed    widget.FloatingEditor
}

type ui struct {
	logger *log.Logger
	fields []*field
}

func newUI(conf *config.Config, logger *log.Logger) (*ui, error) {
	u := &ui{logger: logger}
	primary, err := u.newField("main", conf.Label, conf.Field())
	if err != nil {
		return nil, err
	}
	email, err := u.newField("email", "Email", validate.Config{
		Pattern:   emailPattern,
		MinLength: 3,
		OnEditEnd: true,
	})
	if err != nil {
		return nil, err
	}
	for _, f := range []*field{primary, email} {
		f.ed.Field.Label.Direction = conf.LabelDirection()
		f.ed.Field.Label.Duration = conf.LabelDuration()
	}
	return u, nil
}

func (u *ui) newField(name, label string, cfg validate.Config) (*field, error) {
	f := &field{name: name, label: label}
	f.ed.Editor.SingleLine = true
	f.ed.Editor.Submit = true
	if err := f.ed.Field.Configure(cfg); err != nil {
		return nil, errors.Wrapf(err, "field %s", name)
	}
	f.ed.Field.Validator.Handler = cli.LogHandler(u.logger, name)
	u.fields = append(u.fields, f)
	return f, nil
}

func (u *ui) update(gtx layout.Context) {
	for _, f := range u.fields {
		for {
			e, ok := f.ed.Update(gtx)
			if !ok {
				break
			}
			switch e := e.(type) {
			case widget.SubmitEvent:
				u.logger.Info("submitted", "field", f.name, "text", e.Text, "valid", f.ed.Valid())
			case widget.FocusEvent:
				u.logger.Debug("focus", "field", f.name, "focused", e.Focused)
			}
		}
	}
}

func (u *ui) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	u.update(gtx)
	children := []layout.FlexChild{
		layout.Rigid(material.H6(th, "Floating label fields").Layout),
	}
	for _, f := range u.fields {
		f := f
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				style := floatmaterial.FloatingEditor(th, &f.ed, f.label)
				style.ValidColor = validColor
				style.InvalidColor = invalidColor
				return style.Layout(gtx)
			})
		}))
	}
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(24)}.Layout(gtx, material.Caption(th, u.status()).Layout)
	}))
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (u *ui) status() string {
	s := ""
	for i, f := range u.fields {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", f.label, f.ed.Field.Validator.Result())
	}
	return s
}
