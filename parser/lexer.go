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
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// LexerOptions configures a [Lexer].
type LexerOptions struct {
	// If set, line comments are produced as [token.Comment] tokens instead of
	// being discarded.
	KeepComments bool
}

// Lexer converts source text into tokens.
//
// Tokens are produced lazily, one per call to [Lexer.Next]. The only state a
// Lexer carries between tokens is its position and line counter, both of
// which [Lexer.Reset] rewinds.
//
// A Lexer may be reused for any number of documents, but not concurrently.
type Lexer struct {
	LexerOptions

	// Where lexical errors are reported. May be nil, in which case they are
	// discarded.
	Report *report.Report

	file   *source.File
	cursor int
	line   int
	bol    int        // The offset of the start of the current line.
	prev   token.Kind // The kind of the last token produced.

	// Lexical errors strictly before this offset are not reported. This is
	// used when replaying text that has already been lexed once.
	quietUntil int
}

// NewLexer returns a new lexer with the given options.
func NewLexer(opts LexerOptions) *Lexer {
	return &Lexer{LexerOptions: opts, line: 1}
}

// Lex is a shorthand for lexing all of file into a slice. The trailing
// [token.EOF] is not included.
func Lex(file *source.File, opts LexerOptions, r *report.Report) []token.Token {
	l := NewLexer(opts)
	l.Input(file, r)
	var tokens []token.Token
	for tok := range l.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Input sets the document to lex, and rewinds to its start.
//
// r may be nil.
func (l *Lexer) Input(file *source.File, r *report.Report) {
	l.file = file
	l.Report = r
	l.Reset()
}

// Reset rewinds this lexer to the start of its current document and resets
// its line counter.
func (l *Lexer) Reset() {
	l.cursor = 0
	l.line = 1
	l.bol = 0
	l.prev = token.Unrecognized
	l.quietUntil = 0
}

// Line returns the current value of the line counter, i.e. the 1-indexed line
// the next token will start on or after.
func (l *Lexer) Line() int {
	return l.line
}

// File returns the document being lexed.
func (l *Lexer) File() *source.File {
	return l.file
}

// All returns an iterator over the remaining tokens, not including the
// final [token.EOF].
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.Next()
			if tok.Kind == token.EOF || !yield(tok) {
				return
			}
		}
	}
}

// Done returns whether or not we're done lexing runes.
func (l *Lexer) Done() bool {
	return l.Rest() == ""
}

// Rest returns unlexed text.
func (l *Lexer) Rest() string {
	return l.file.Text()[l.cursor:]
}

// Peek peeks the next character.
//
// Returns -1 if l.Done().
func (l *Lexer) Peek() rune {
	r, n := utf8.DecodeRuneInString(l.Rest())
	if n == 0 {
		return -1
	}
	return r
}

// Pop consumes the next character.
//
// Returns -1 if l.Done().
func (l *Lexer) Pop() rune {
	r := l.Peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
	}
	return r
}

// TakeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *Lexer) TakeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.Done() {
		r := l.Peek()
		if !f(r) {
			break
		}
		_ = l.Pop()
	}
	return l.file.Text()[start:l.cursor]
}

// atLineStart returns whether only spaces and tabs lie between the start of
// the current line and offset.
func (l *Lexer) atLineStart(offset int) bool {
	return strings.Trim(l.file.Text()[l.bol:offset], " \t") == ""
}

// push builds a token of the given kind out of the text between start and
// the cursor.
func (l *Lexer) push(start int, kind token.Kind) token.Token {
	return l.pushText(start, kind, l.file.Text()[start:l.cursor])
}

// pushText is like push, but with the token's text given explicitly.
func (l *Lexer) pushText(offset int, kind token.Kind, text string) token.Token {
	loc := l.file.Location(offset, source.UTF16)
	l.prev = kind
	return token.Token{
		Kind:   kind,
		Text:   text,
		Line:   l.line,
		Column: loc.Column,
		Length: source.UTF16.Measure(text),
		Offset: offset,
		File:   l.file,
	}
}

// error reports a lexical error, unless it falls in a region being replayed.
func (l *Lexer) error(offset int, err report.Diagnose) {
	if l.Report == nil || offset < l.quietUntil {
		return
	}
	l.Report.Error(err)
}
