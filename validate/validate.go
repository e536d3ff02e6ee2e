// SPDX-License-Identifier: Unlicense OR MIT

// Package validate classifies text against a regular expression.
//
// A Validator holds the configured pattern and reports one of three
// results for every check: the text passed, the text failed, or the
// text is still too short to be judged. The latest result is kept so
// that widgets can color their text from it, and an optional Handler
// is notified after every check.
package validate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Result is the outcome of a check.
type Result uint8

const (
	// Passed means the text matched the pattern.
	Passed Result = iota
	// Failed means the text did not match the pattern.
	Failed
	// TooShort means the text is shorter than the minimum length
	// and was not matched at all.
	TooShort
)

// Config describes what a Validator checks. The zero Config accepts
// every non-empty text.
type Config struct {
	// Pattern is the regular expression source. It must match the
	// whole text, not a substring of it.
	Pattern string
	// Regexp overrides Pattern when set.
	Regexp *regexp.Regexp
	// Separators split the text into occurrences when MultiOccurrence
	// is set.
	Separators []string
	// MinLength is the number of characters required before the text
	// is matched. Zero means 1.
	MinLength int
	// OnEditEnd defers validation until editing ends. By default text
	// is validated while typing.
	OnEditEnd bool
	// MultiOccurrence validates every occurrence between Separators
	// on its own. Without Separators the whole text is matched.
	MultiOccurrence bool
}

// Handler is notified after each check.
type Handler interface {
	Validated(r Result, editing bool)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(r Result, editing bool)

// PatternCompileError is returned when a pattern source is not a
// valid regular expression.
type PatternCompileError struct {
	Pattern string
	Err     error
}

// Validator checks text against a Config. The zero Validator is
// ready to use and accepts every non-empty text.
type Validator struct {
	// Handler, if set, is called after every check.
	Handler Handler

	cfg     Config
	matcher *regexp.Regexp
	seps    []string // cfg.Separators without empty entries, longest first.
	result  Result
	checked bool
}

func (r Result) String() string {
	switch r {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case TooShort:
		return "TooShort"
	default:
		return "Result(" + strconv.Itoa(int(r)) + ")"
	}
}

func (f HandlerFunc) Validated(r Result, editing bool) {
	f(r, editing)
}

func (e *PatternCompileError) Error() string {
	return "validate: invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// Configure replaces the configuration. If the pattern does not
// compile, Configure returns an error wrapping a *PatternCompileError
// and the previous configuration stays in effect.
func (v *Validator) Configure(cfg Config) error {
	m, err := compile(cfg)
	if err != nil {
		return err
	}
	v.cfg = cfg
	v.cfg.Separators = append([]string(nil), cfg.Separators...)
	v.matcher = m
	v.seps = sortSeparators(cfg.Separators)
	return nil
}

// Config returns the current configuration.
func (v *Validator) Config() Config {
	return v.cfg
}

// Check classifies text, records the result and notifies the
// Handler. Editing reports whether the text is still being edited and
// is passed through to the Handler.
func (v *Validator) Check(text string, editing bool) Result {
	v.result = v.classify(text)
	v.checked = true
	if v.Handler != nil {
		v.Handler.Validated(v.result, editing)
	}
	return v.result
}

// Result returns the result of the latest check. Before the first
// check it is TooShort.
func (v *Validator) Result() Result {
	if !v.checked {
		return TooShort
	}
	return v.result
}

// Valid reports whether the latest check passed.
func (v *Validator) Valid() bool {
	return v.checked && v.result == Passed
}

// Occurrences returns the non-empty, trimmed pieces of text between
// the configured separators. Without separators the trimmed text is
// the only occurrence.
func (v *Validator) Occurrences(text string) []string {
	return split(text, v.seps)
}

func (v *Validator) classify(text string) Result {
	min := v.cfg.MinLength
	if min < 1 {
		min = 1
	}
	if utf8.RuneCountInString(text) < min {
		return TooShort
	}
	if v.cfg.MultiOccurrence && len(v.seps) > 0 {
		parts := split(text, v.seps)
		if len(parts) == 0 {
			return Failed
		}
		for _, p := range parts {
			if !v.match(p) {
				return Failed
			}
		}
		return Passed
	}
	if v.match(text) {
		return Passed
	}
	return Failed
}

func (v *Validator) match(s string) bool {
	if v.matcher == nil {
		return true
	}
	return v.matcher.MatchString(s)
}

// compile returns the anchored matcher for cfg, or nil when cfg
// has no pattern.
func compile(cfg Config) (*regexp.Regexp, error) {
	src := cfg.Pattern
	if cfg.Regexp != nil {
		src = cfg.Regexp.String()
	}
	if src == "" {
		return nil, nil
	}
	if _, err := regexp.Compile(src); err != nil {
		return nil, errors.WithStack(&PatternCompileError{Pattern: src, Err: err})
	}
	// The group keeps alternations like `a|ab` from escaping the anchors.
	m, err := regexp.Compile(`^(?:` + src + `)$`)
	if err != nil {
		return nil, errors.WithStack(&PatternCompileError{Pattern: src, Err: err})
	}
	return m, nil
}

func sortSeparators(seps []string) []string {
	var out []string
	for _, s := range seps {
		if s != "" {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// split cuts text at every separator occurrence. seps must be sorted
// longest first so that ", " wins over "," at the same position.
func split(text string, seps []string) []string {
	var parts []string
	add := func(p string) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	start := 0
	for i := 0; i < len(text); {
		n := 0
		for _, s := range seps {
			if strings.HasPrefix(text[i:], s) {
				n = len(s)
				break
			}
		}
		if n == 0 {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		add(text[start:i])
		i += n
		start = i
	}
	add(text[start:])
	return parts
}
