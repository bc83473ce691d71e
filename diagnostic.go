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

package cbls

import (
	"fmt"

	"github.com/craftblock/cbls/report"
)

// Severity is the severity of a [Diagnostic]. Its values are the ones the
// Language Server Protocol uses.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityHint:
		return "hint"
	default:
		return fmt.Sprintf("cbls.Severity(%d)", int(s))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a diagnostic in the shape an editor consumes. Lines and
// columns are 0-based; the end is exclusive.
//
// A diagnostic about a whole file, such as a dialect mismatch, is placed at
// the very start of it.
type Diagnostic struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`

	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// The diagnostic's tag, such as "syntax-error".
	Code string `json:"code,omitempty"`

	// Who produced this diagnostic, from the configured source tag.
	Source string `json:"source"`
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %v: %s", d.StartLine+1, d.StartColumn+1, d.Severity, d.Message)
}

// convert converts a diagnostic from the parser into outward form.
func (a *Analyzer) convert(d *report.Diagnostic) Diagnostic {
	out := Diagnostic{
		Severity: SeverityError,
		Message:  d.Message(),
		Code:     string(d.Tag()),
		Source:   a.cfg.SourceTag,
	}
	if label := d.Label(); label != "" {
		out.Message += "\n" + label
	}

	switch d.Level {
	case report.Warning:
		out.Severity = SeverityWarning
	case report.Remark:
		out.Severity = SeverityInformation
	}

	if span := d.Primary(); !span.IsZero() {
		start := span.File.Location(span.Start, a.units)
		end := span.File.Location(span.End, a.units)
		out.StartLine, out.StartColumn = start.Line-1, start.Column-1
		out.EndLine, out.EndColumn = end.Line-1, end.Column-1
	}
	return out
}
