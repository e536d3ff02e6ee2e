// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/floatfield/floatfield/internal/config"
	"github.com/floatfield/floatfield/validate"
)

func execute(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	var got *config.Config
	cmd := NewCommand(func(cmd *cobra.Command, conf *config.Config, logger *log.Logger) error {
		got = conf
		return nil
	})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(config.Prefix+"PATTERN", `[a-z]+`)
	t.Setenv(config.Prefix+"MIN_LENGTH", "5")
	conf, err := execute(t,
		"--pattern", `\d+`,
		"--separator", ";",
		"--separator", "; ",
		"--on-edit-end",
		"--direction", "down",
		"--duration", "300ms",
	)
	if err != nil {
		t.Fatal(err)
	}
	want := validate.Config{
		Pattern:         `\d+`,
		Separators:      []string{";", "; "},
		MinLength:       5,
		OnEditEnd:       true,
		MultiOccurrence: true,
	}
	if diff := cmp.Diff(want, conf.Field()); diff != "" {
		t.Errorf("field configuration mismatch (-want +got):\n%s", diff)
	}
	if conf.Direction != "down" || conf.Duration != 300*time.Millisecond {
		t.Errorf("label settings = %q, %v", conf.Direction, conf.Duration)
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := [][]string{
		{"--pattern", "("},
		{"--min-length", "0"},
		{"--direction", "left"},
		{"--log-level", "chatty"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("command accepted %q", args)
		}
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Formatter: log.LogfmtFormatter})
	v := validate.Validator{Handler: LogHandler(logger, "amount")}
	v.Check("12", true)
	out := buf.String()
	for _, want := range []string{"msg=validated", "field=amount", "result=Passed", "editing=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
