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
	"strings"

	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// Next lexes and returns the next token.
//
// Once the input is exhausted, every call returns a [token.EOF] token whose
// offset is the length of the document.
func (l *Lexer) Next() token.Token {
	for !l.Done() {
		start := l.cursor
		r := l.Peek()

		switch {
		case r == '\r', r == ' ', r == '\t':
			l.Pop()

		case r == '\n':
			l.Pop()
			tok := l.push(start, token.Newline)
			l.line++
			l.bol = l.cursor
			return tok

		case r == '#':
			text := strings.TrimSuffix(l.TakeWhile(notNewline), "\r")
			if l.KeepComments {
				return l.pushText(start, token.Comment, text)
			}

		case r == '/' && (l.atLineStart(start) || l.prev == token.Do || l.prev == token.Then):
			text := strings.TrimSpace(l.TakeWhile(notNewline))
			return l.pushText(start, token.Command, text)

		case r == '"', r == '\'':
			return l.lexString()

		case isIdentStart(r):
			text := l.TakeWhile(isIdentPart)
			kind := token.Ident
			if k := token.Lookup(text); k.IsKeyword() {
				kind = k
			}
			return l.pushText(start, kind, text)

		case r == '@' && len(l.Rest()) > 1 && isIdentStart(rune(l.Rest()[1])):
			l.Pop()
			l.TakeWhile(isIdentPart)
			return l.push(start, token.AtIdent)

		case isDigit(r):
			return l.lexNumber()

		case r == '~' && len(l.Rest()) > 1 && (l.Rest()[1] == ' ' || l.Rest()[1] == '\t'):
			l.Pop()
			return l.push(start, token.TildeEmpty)

		default:
			if kind := token.Prefix(l.Rest()); kind != token.Unrecognized {
				l.cursor += len(kind.String())
				return l.push(start, kind)
			}

			l.Pop()
			l.error(start, ErrUnrecognized{Span: l.file.Span(start, l.cursor), Char: r})
		}
	}

	return token.Token{
		Kind:   token.EOF,
		Line:   l.line,
		Column: l.file.Location(l.cursor, source.UTF16).Column,
		Offset: l.cursor,
		File:   l.file,
	}
}

func notNewline(r rune) bool {
	return r != '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
