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

	"github.com/craftblock/cbls/source"
)

const (
	// Red. Indicates that the document is not valid CraftBlock.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Tag is a diagnostic tag: a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. my-error-tag.
// If a package generates diagnostics with tags, it should expose those tags as
// constants.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("cbls/report: set diagnostic tag more than once")
	}

	d.tag = t
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. If no message is set, its
	// Error() return is used as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	tag     Tag
	message string
	label   string

	// The file this diagnostic occurs in, if it has no associated annotations.
	inFile string

	annotations        []Annotation
	notes, help, debug []string
}

// Annotation is an annotated source code snippet within a [Diagnostic].
type Annotation struct {
	source.Span

	// A message to show under this snippet. May be empty.
	Message string

	// Whether this is a "primary" snippet, which is used for deciding whether
	// or not to mark the snippet with the same color as the overall diagnostic.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Message returns this diagnostic's main message.
func (d *Diagnostic) Message() string {
	if d.message == "" && d.Err != nil {
		return d.Err.Error()
	}
	return d.message
}

// Tag returns this diagnostic's tag, if it has one.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// Label returns this diagnostic's label, if one was attached.
func (d *Diagnostic) Label() string {
	return d.label
}

// InFile returns the file this diagnostic refers to.
func (d *Diagnostic) InFile() string {
	if primary := d.Primary(); !primary.IsZero() {
		return primary.Path()
	}
	return d.inFile
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, annotation := range d.annotations {
		if annotation.Primary {
			return annotation.Span
		}
	}

	return source.Span{}
}

// Annotations returns the annotated snippets of this diagnostic.
func (d *Diagnostic) Annotations() []Annotation {
	return d.annotations
}

// Notes returns this diagnostic's notes.
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns this diagnostic's help messages.
func (d *Diagnostic) Help() []string { return d.help }

// Debug returns this diagnostic's debugging information.
func (d *Diagnostic) Debug() []string { return d.debug }

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// Label returns a DiagnosticOption that attaches a secondary hint to a
// diagnostic. Unlike the message, the label may be replaced.
func Label(format string, args ...any) DiagnosticOption {
	return label(fmt.Sprintf(format, args...))
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	if d.inFile != "" {
		panic("cbls/report: set diagnostic path more than once")
	}

	d.inFile = string(f)
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// Any additional arguments to this function are passed to [fmt.Sprintf] to
// produce a message to go with the span. Snippet(span) is equivalent to
// Snippet(span, "").
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others.
//
// If at is nil or returns the zero span, this function will return nil.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	span := source.GetSpan(at)
	if span.IsZero() {
		return nil
	}

	annotation := Annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("cbls/report: expected string as first Snippet argument")
		}

		annotation.Message = fmt.Sprintf(format, args[1:]...)
	}

	return annotation
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// Debug returns a DiagnosticOption appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

// Apply implements [DiagnosticOption].
func (a Annotation) Apply(d *Diagnostic) {
	a.Primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, a)
}

type message string
type label string
type note string
type help string
type debug string

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("cbls/report: set diagnostic message more than once")
	}

	d.message = string(m)
}

func (l label) Apply(d *Diagnostic) { d.label = string(l) }
func (n note) Apply(d *Diagnostic)  { d.notes = append(d.notes, string(n)) }
func (n help) Apply(d *Diagnostic)  { d.help = append(d.help, string(n)) }
func (n debug) Apply(d *Diagnostic) { d.debug = append(d.debug, string(n)) }
