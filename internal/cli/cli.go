// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the command line of the floatfield demo.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/floatfield/floatfield/internal/config"
	"github.com/floatfield/floatfield/validate"
)

// RunFunc runs the demo with the final configuration.
type RunFunc func(cmd *cobra.Command, conf *config.Config, logger *log.Logger) error

// NewCommand returns the root command. Flags take precedence over
// the environment, which takes precedence over the env file.
func NewCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Version: os.Getenv("VERSION"),
		Use:     "floatfield",
		Short:   "Show a floating label text field validated by a pattern.",
		Long: "floatfield opens a window with a text field whose label floats above the text " +
			"and whose text is colored by a regular expression check.",
		Example:      `floatfield --pattern '-?\d+' --separator ',' --separator ', ' --multi`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	f := cmd.Flags()
	f.String("env-file", ".env", "file of environment variables to load")
	f.String("label", "", "field label")
	f.String("pattern", "", "regular expression the text must match")
	f.StringArray("separator", nil, "occurrence separator (repeatable)")
	f.Int("min-length", 0, "characters required before validating")
	f.Bool("multi", false, "validate every occurrence between separators")
	f.Bool("on-edit-end", false, "validate when editing ends instead of while typing")
	f.String("direction", "", "label animation direction: up or down")
	f.Duration("duration", 0, "label animation duration, 0 to disable")
	f.String("log-level", "", "log level: debug, info, warn or error")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		conf, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, conf); err != nil {
			return err
		}
		if err := conf.Validate(); err != nil {
			return err
		}
		logger, err := NewLogger(cmd, conf.LogLevel)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", "pattern", conf.Pattern, "separators", conf.Separators,
			"min_length", conf.MinLength, "multi", conf.Multi, "on_edit_end", conf.OnEditEnd)
		return run(cmd, conf, logger)
	}
	return cmd
}

// NewLogger returns a logger writing to the command's error output.
func NewLogger(cmd *cobra.Command, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "floatfield",
		Level:           lvl,
		ReportTimestamp: true,
	}), nil
}

// LogHandler returns a validate.Handler logging every check of the
// named field.
func LogHandler(logger *log.Logger, field string) validate.Handler {
	return validate.HandlerFunc(func(r validate.Result, editing bool) {
		logger.Info("validated", "field", field, "result", r.String(), "editing", editing)
	})
}

func applyFlags(cmd *cobra.Command, conf *config.Config) error {
	f := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}
	set("label", func() (e error) { conf.Label, e = f.GetString("label"); return })
	set("pattern", func() (e error) { conf.Pattern, e = f.GetString("pattern"); return })
	set("separator", func() (e error) { conf.Separators, e = f.GetStringArray("separator"); return })
	set("min-length", func() (e error) { conf.MinLength, e = f.GetInt("min-length"); return })
	set("multi", func() (e error) { conf.Multi, e = f.GetBool("multi"); return })
	set("on-edit-end", func() (e error) { conf.OnEditEnd, e = f.GetBool("on-edit-end"); return })
	set("direction", func() (e error) { conf.Direction, e = f.GetString("direction"); return })
	set("duration", func() (e error) { conf.Duration, e = f.GetDuration("duration"); return })
	set("log-level", func() (e error) { conf.LogLevel, e = f.GetString("log-level"); return })
	return errors.WithStack(err)
}
