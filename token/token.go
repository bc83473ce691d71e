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

package token

import (
	"fmt"

	"github.com/craftblock/cbls/source"
)

// Token is a single lexical unit.
//
// Tokens are immutable values; the lexer hands each one out by value and
// keeps no reference to it.
type Token struct {
	Kind Kind

	// The lexeme. For most kinds this is exactly the source text of the
	// token; commands are trimmed of surrounding whitespace, and an empty
	// tilde is just "~".
	Text string

	// The 1-based line and column this token starts at. Columns are counted
	// in UTF-16 code units from the start of the line.
	Line, Column int

	// The length of Text in UTF-16 code units.
	Length int

	// The byte offset of Text within the file.
	Offset int

	// The file this token was lexed from. May be nil for synthetic tokens.
	File *source.File
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.File.Span(t.Offset, t.Offset+len(t.Text))
}

// End returns the byte offset just past this token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// Value returns the semantic value of this token's text.
//
// Strings are returned without their quotes, and hexadecimal and binary
// integers are returned as decimal text. Everything else is returned as-is.
func (t Token) Value() string {
	switch t.Kind {
	case String:
		return Unquote(t.Text)
	case Hex, Binary:
		return IntValue(t.Kind, t.Text, false)
	default:
		return t.Text
	}
}

// Describe returns a description of this token for use in diagnostics, such
// as `identifier "foo"`.
func (t Token) Describe() string {
	switch {
	case t.Kind == EOF, t.Kind == Newline:
		return t.Kind.String()
	case t.Kind.IsLiteral():
		return t.Kind.Describe()
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%d:%d %#v %q", t.Line, t.Column, t.Kind, t.Text)
}
