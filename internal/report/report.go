// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/linecmp/linecmp/internal/config"
	"github.com/linecmp/linecmp/internal/log"
)

// Formats lists the accepted output formats. The first is the default.
var Formats = []string{"text", "json", "yaml"}

const ruleWidth = 60

// Result is the outcome of comparing a source file against a reference file.
type Result struct {
	Source        string   `json:"source" yaml:"source"`
	Reference     string   `json:"reference" yaml:"reference"`
	CaseSensitive bool     `json:"case_sensitive" yaml:"case_sensitive"`
	Missing       []string `json:"missing" yaml:"missing"`
}

// Mode returns the human name of the comparison mode.
func (r Result) Mode() string {
	if r.CaseSensitive {
		return "Case-Sensitive"
	}
	return "Case-Insensitive"
}

// Options tune text rendering.
type Options struct {
	Color bool
}

// Render writes r to w in the named format.
func Render(w io.Writer, r Result, format string, opts Options) error {
	log.Debugf("rendering report: format=%s missing=%d", format, len(r.Missing))

	switch format {
	case "json":
		return JSON(w, r)
	case "yaml":
		return YAML(w, r)
	case "", "text":
		return Text(w, r, opts)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// Text writes the header block followed by either the all-present verdict or
// a numbered list of missing lines.
func Text(w io.Writer, r Result, opts Options) error {
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Comparison Result")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Source File (File 1):    %s\n", r.Source)
	fmt.Fprintf(&b, "Reference File (File 2): %s\n", r.Reference)
	fmt.Fprintf(&b, "Comparison Mode:         %s\n", r.Mode())
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	present, missing := verdictPainters(opts.Color)

	if len(r.Missing) == 0 {
		fmt.Fprintln(&b, present("✓ All lines from File 1 are present in File 2."))
	} else {
		verdict := fmt.Sprintf("✗ Found %s line(s) in File 1 that are NOT present in File 2:",
			humanize.Comma(int64(len(r.Missing))))
		fmt.Fprintln(&b, missing(verdict))
		fmt.Fprintln(&b)
		for i, line := range r.Missing {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes r as an indented JSON document.
func JSON(w io.Writer, r Result) error {
	r.Missing = nonNil(r.Missing)
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// YAML writes r as a YAML document.
func YAML(w io.Writer, r Result) error {
	r.Missing = nonNil(r.Missing)
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// verdictPainters returns the functions that decorate the all-present and
// missing verdict lines. Colors may be overridden with colors.present and
// colors.missing in the config file. Without color the lines are unchanged.
func verdictPainters(color bool) (present, missing func(string) string) {
	plain := func(s string) string { return s }
	if !color {
		return plain, plain
	}

	resolveColor := func(key string, fallback string) string {
		c, err := config.GetString(key)
		if err != nil {
			return fallback
		}
		return c
	}

	presentStyle := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(resolveColor("colors.present", "#00c800")))
	missingStyle := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(resolveColor("colors.missing", "#e03c3c")))

	present = func(s string) string { return presentStyle.Render(s) }
	missing = func(s string) string { return missingStyle.Render(s) }
	return present, missing
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
