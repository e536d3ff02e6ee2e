// SPDX-License-Identifier: Unlicense OR MIT

package main

// floatfield shows a text field with a floating label, validated by a
// regular expression. See floatfield --help for the configuration.

import (
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/floatfield/floatfield/internal/cli"
	"github.com/floatfield/floatfield/internal/config"
)

func main() {
	cmd := cli.NewCommand(func(cmd *cobra.Command, conf *config.Config, logger *log.Logger) error {
		go func() {
			w := new(app.Window)
			w.Option(app.Title("floatfield"), app.Size(unit.Dp(420), unit.Dp(300)))
			if err := loop(w, conf, logger); err != nil {
				logger.Fatal("window failed", "err", err)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loop(w *app.Window, conf *config.Config, logger *log.Logger) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u, err := newUI(conf, logger)
	if err != nil {
		return err
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}
