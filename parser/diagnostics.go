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

package parser

import (
	"fmt"
	"strconv"

	"github.com/craftblock/cbls/internal"
	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// Tags for the diagnostics produced by this package.
const (
	TagUnrecognized       report.Tag = "unrecognized-character"
	TagUnterminatedString report.Tag = "unterminated-string"
	TagSyntax             report.Tag = "syntax-error"
	TagUnknownName        report.Tag = "unknown-name"
	TagDialectMismatch    report.Tag = "dialect-mismatch"
)

// ErrUnrecognized diagnoses a character that does not begin any token. The
// character is skipped.
type ErrUnrecognized struct {
	Span source.Span
	Char rune
}

// Error implements [error].
func (e ErrUnrecognized) Error() string {
	return fmt.Sprintf("unrecognized character %q", e.Char)
}

// Diagnose implements [report.Diagnose].
func (e ErrUnrecognized) Diagnose(d *report.Diagnostic) {
	d.With(TagUnrecognized, report.Snippet(e.Span))
}

// ErrUnterminatedString diagnoses a string literal that reaches the end of
// its line without a closing quote.
type ErrUnterminatedString struct {
	Span  source.Span // The string, up to the end of its line.
	Quote rune
}

// Error implements [error].
func (e ErrUnterminatedString) Error() string {
	return "unterminated string literal"
}

// Diagnose implements [report.Diagnose].
func (e ErrUnterminatedString) Diagnose(d *report.Diagnostic) {
	d.With(
		TagUnterminatedString,
		report.Snippet(e.Span, "expected to be terminated by `%c`", e.Quote),
	)
	if e.Span.Len() == 1 {
		d.With(report.Note("this string consists of a single orphaned quote"))
	}
}

// ErrUnexpected diagnoses a token that the grammar does not allow where it
// appears.
type ErrUnexpected struct {
	Token token.Token

	// The state the parser was in, and the tokens it would have accepted.
	State State
	Want  token.Set
}

// Error implements [error].
func (e ErrUnexpected) Error() string {
	what := e.Token.Describe()
	msg := fmt.Sprintf("syntax error at line %d column %d: unexpected %s in state %v",
		e.Token.Line, e.Token.Column, what, e.State)
	if e.Want.Len() > 0 {
		msg += "; expected " + e.Want.Join("or")
	}
	return msg
}

// Diagnose implements [report.Diagnose].
func (e ErrUnexpected) Diagnose(d *report.Diagnostic) {
	span := e.Token.Span()
	if e.Token.Kind == token.EOF || e.Token.Kind == token.Newline {
		// Point at the end of whatever came before, rather than at nothing or
		// at the line break.
		span = span.File.Span(span.Start, span.Start)
	}
	d.With(TagSyntax, report.Snippet(span))
}

// ErrUnknownName diagnoses a name that is not one of a closed set, such as an
// unknown data type. This is only ever a warning.
type ErrUnknownName struct {
	Token token.Token
	What  string // What sort of name this is, such as "data type".
	Want  []string
}

// Error implements [error].
func (e ErrUnknownName) Error() string {
	quoted := make([]string, len(e.Want))
	for i, w := range e.Want {
		quoted[i] = strconv.Quote(w)
	}
	return fmt.Sprintf("unknown %s %q; expected %v", e.What, e.Token.Text, internal.OxfordOr(quoted...))
}

// Diagnose implements [report.Diagnose].
func (e ErrUnknownName) Diagnose(d *report.Diagnostic) {
	d.With(TagUnknownName, report.Snippet(e.Token))
}

// ErrDialectMismatch diagnoses a document whose contents do not match the
// dialect its file extension declares.
type ErrDialectMismatch struct {
	Path string

	// The dialect declared by the extension, and the one inferred from the
	// document's contents.
	Want, Got Dialect
}

// Error implements [error].
func (e ErrDialectMismatch) Error() string {
	if e.Want == Script {
		return "Compiler error in file. Script files should contain directory for output ('DIR' keyword)"
	}
	return "Compiler error in file. Libraries should not contain directory for output ('DIR' keyword)"
}

// Diagnose implements [report.Diagnose].
func (e ErrDialectMismatch) Diagnose(d *report.Diagnostic) {
	d.With(TagDialectMismatch, report.InFile(e.Path))
	d.With(report.Note("the file extension declares a %v, but its contents are a %v", e.Want, e.Got))
}
