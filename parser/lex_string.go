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

	"github.com/craftblock/cbls/token"
)

// lexString lexes a single- or double-quoted string literal. Strings may not
// span lines; a backslash escapes whatever character follows it.
//
// An unterminated string is reported, and the token is closed at the end of
// its line.
func (l *Lexer) lexString() token.Token {
	start := l.cursor
	quote := l.Pop()

	for {
		switch r := l.Peek(); r {
		case -1, '\n':
			text := strings.TrimSuffix(l.file.Text()[start:l.cursor], "\r")
			l.error(start, ErrUnterminatedString{
				Span:  l.file.Span(start, start+len(text)),
				Quote: quote,
			})
			return l.pushText(start, token.String, text)

		case quote:
			l.Pop()
			return l.push(start, token.String)

		case '\\':
			l.Pop()
			if next := l.Peek(); next != -1 && next != '\n' {
				l.Pop()
			}

		default:
			l.Pop()
		}
	}
}
