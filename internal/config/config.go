// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the configuration of the floatfield demo from
// the environment.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/floatfield/floatfield/validate"
	"github.com/floatfield/floatfield/widget"
)

// Prefix is prepended to every environment variable name.
const Prefix = "FLOATFIELD_"

type Config struct {
	Label      string   `env:"LABEL" envDefault:"Numbers" validate:"required"`
	Pattern    string   `env:"PATTERN" envDefault:"-?\\d+"`
	Separators []string `env:"SEPARATORS" envSeparator:"|" envDefault:",|, "`
	MinLength  int      `env:"MIN_LENGTH" envDefault:"1" validate:"min=1"`
	OnEditEnd  bool     `env:"ON_EDIT_END"`
	Multi      bool     `env:"MULTI" envDefault:"true"`
	Direction  string   `env:"DIRECTION" envDefault:"up" validate:"oneof=up down"`
	// Duration of the label animation. Zero disables it.
	Duration time.Duration `env:"DURATION" envDefault:"150ms" validate:"min=0"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads envFile, if it exists, into the environment and parses
// the configuration from it. Variables already set take precedence
// over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "could not load %s", envFile)
		}
	}
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &conf, nil
}

// Validate checks the configuration values, including the pattern.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	var v validate.Validator
	if err := v.Configure(c.Field()); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// Field returns the validation configuration of the field.
func (c *Config) Field() validate.Config {
	return validate.Config{
		Pattern:         c.Pattern,
		Separators:      c.Separators,
		MinLength:       c.MinLength,
		OnEditEnd:       c.OnEditEnd,
		MultiOccurrence: c.Multi,
	}
}

// LabelDirection returns the configured animation direction.
func (c *Config) LabelDirection() widget.Direction {
	if c.Direction == "down" {
		return widget.Down
	}
	return widget.Up
}

// LabelDuration returns the animation duration in the form expected
// by widget.FloatingLabel.
func (c *Config) LabelDuration() time.Duration {
	if c.Duration == 0 {
		return -1
	}
	return c.Duration
}
