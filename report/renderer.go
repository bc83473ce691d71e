// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/craftblock/cbls/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool

	// The unit column numbers are printed in.
	Units source.Unit
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns whether the report
// contains any errors.
//
// On the other hand, the actual error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		diagnostic := &report.Diagnostics[i]
		if !r.ShowRemarks && diagnostic.Level == Remark {
			continue
		}

		_, err = fmt.Fprintln(out, r.Diagnostic(diagnostic))
		if err != nil {
			return
		}

		if !r.Compact {
			_, err = fmt.Fprintln(out)
			if err != nil {
				return
			}
		}

		switch diagnostic.Level {
		case Error:
			errorCount++
		case Warning:
			if r.WarningsAreErrors {
				errorCount++
			} else {
				warningCount++
			}
		}
	}
	if r.Compact {
		return
	}

	c := newStyleSheet(r)

	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprintln(out, c.bError+"encountered", pluralize(errorCount, "error"), "and", pluralize(warningCount, "warning")+c.reset)
	case errorCount > 0:
		_, err = fmt.Fprintln(out, c.bError+"encountered", pluralize(errorCount, "error")+c.reset)
	case warningCount > 0:
		_, err = fmt.Fprintln(out, c.bWarning+"encountered", pluralize(warningCount, "warning")+c.reset)
	}
	return
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string, without a trailing
// newline.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := newStyleSheet(r)
	level := d.Level.String()
	if d.Level == Warning && r.WarningsAreErrors {
		level = Error.String()
	}

	var out strings.Builder
	primary := d.Primary()

	if r.Compact {
		if !primary.IsZero() {
			start := primary.Location(primary.Start, r.Units)
			fmt.Fprintf(&out, "%s:%d:%d: ", primary.Path(), start.Line, start.Column)
		} else if d.inFile != "" {
			fmt.Fprintf(&out, "%s: ", d.inFile)
		}
		fmt.Fprintf(&out, "%s%s: %s%s", c.BoldForLevel(d.Level), level, d.Message(), c.reset)
		if d.label != "" {
			fmt.Fprintf(&out, " (%s)", d.label)
		}
		return out.String()
	}

	fmt.Fprintf(&out, "%s%s: %s%s", c.BoldForLevel(d.Level), level, d.Message(), c.reset)

	if primary.IsZero() {
		if d.inFile != "" {
			fmt.Fprintf(&out, "\n%s  --> %s%s", c.bAccent, c.reset, d.inFile)
		}
	} else {
		start := primary.Location(primary.Start, r.Units)
		fmt.Fprintf(&out, "\n%s  --> %s%s:%d:%d", c.bAccent, c.reset, primary.Path(), start.Line, start.Column)
	}

	var gutter int
	for _, a := range d.annotations {
		gutter = max(gutter, len(strconv.Itoa(a.LineByOffset(a.Start)+1)))
	}
	margin := strings.Repeat(" ", gutter)

	for _, a := range d.annotations {
		line := a.LineByOffset(a.Start) + 1
		lineStart, _ := a.LineOffsets(line)
		text := strings.TrimRight(a.File.Line(line), "\r\n")

		start := min(a.Start-lineStart, len(text))
		end := min(a.End-lineStart, len(text))

		var rendered strings.Builder
		stringWidth(0, text, &rendered)
		before := stringWidth(0, text[:start], nil)
		width := max(1, stringWidth(before, text[start:end], nil)-before)

		color := c.nAccent
		underline := "-"
		if a.Primary {
			color = c.ColorForLevel(d.Level)
			underline = "^"
		}

		fmt.Fprintf(&out, "\n%s%s |%s", c.bAccent, margin, c.reset)
		fmt.Fprintf(&out, "\n%s%*d |%s %s", c.bAccent, gutter, line, c.reset, rendered.String())
		fmt.Fprintf(&out, "\n%s%s |%s %s%s%s",
			c.bAccent, margin, c.reset,
			strings.Repeat(" ", before), color, strings.Repeat(underline, width))
		if a.Message != "" {
			fmt.Fprintf(&out, " %s", a.Message)
		}
		out.WriteString(c.reset)
	}

	footer := func(kind, text string) {
		fmt.Fprintf(&out, "\n%s%s = %s%s:%s %s", c.bAccent, margin, c.BoldForLevel(Remark), kind, c.reset, text)
	}
	if d.label != "" {
		footer("label", d.label)
	}
	for _, note := range d.notes {
		footer("note", note)
	}
	for _, help := range d.help {
		footer("help", help)
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			footer("debug", debug)
		}
	}

	return out.String()
}
