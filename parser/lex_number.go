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

// lexNumber lexes a numeric literal starting at the cursor, which must be a
// digit. A leading minus sign is never part of a number; the parser folds it
// in.
//
// The forms are tried in order: binary, hexadecimal, NBT-suffixed, float,
// and finally plain decimal.
func (l *Lexer) lexNumber() token.Token {
	start := l.cursor
	rest := l.Rest()

	kind, n := token.Decimal, digits(rest, isDigit)
	switch {
	case prefixedDigits(rest, "0b", isBinaryDigit) > 0:
		kind, n = token.Binary, 2+prefixedDigits(rest, "0b", isBinaryDigit)
	case prefixedDigits(rest, "0x", isHexDigit) > 0:
		kind, n = token.Hex, 2+prefixedDigits(rest, "0x", isHexDigit)
	case nbtNumber(rest) > 0:
		kind, n = token.NBTNumber, nbtNumber(rest)
	case len(rest) > n+1 && rest[n] == '.' && isDigit(rune(rest[n+1])):
		kind, n = token.Float, n+1+digits(rest[n+1:], isDigit)
	}

	l.cursor += n
	return l.push(start, kind)
}

// nbtNumber returns the length of the NBT-suffixed number at the start of
// text, or zero if there isn't one.
//
// These are integers with one of the suffixes b, s, or l, and floats with
// one of f or d, optionally with a fraction and exponent. Zero may not have
// leading zeroes, and the suffix may not run into an identifier.
func nbtNumber(text string) int {
	n := digits(text, isDigit)
	if n == 0 || (n > 1 && text[0] == '0') {
		return 0
	}

	suffix := func(i int, suffixes string) int {
		if i < len(text) && strings.IndexByte(suffixes, text[i]) >= 0 &&
			(i+1 == len(text) || !isIdentPart(rune(text[i+1]))) {
			return i + 1
		}
		return 0
	}

	if end := suffix(n, "bBsSlL"); end > 0 {
		return end
	}

	i := n
	if i+1 < len(text) && text[i] == '.' && isDigit(rune(text[i+1])) {
		i += 1 + digits(text[i+1:], isDigit)
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if exp := digits(text[j:], isDigit); exp > 0 {
			i = j + exp
		}
	}
	return suffix(i, "fFdD")
}

// digits returns the length of the run of characters at the start of text
// that satisfy f.
func digits(text string, f func(rune) bool) int {
	for i, r := range text {
		if !f(r) {
			return i
		}
	}
	return len(text)
}

// prefixedDigits returns the number of digits after prefix at the start of
// text, or zero if text does not start with prefix.
func prefixedDigits(text, prefix string, f func(rune) bool) int {
	if !strings.HasPrefix(text, prefix) {
		return 0
	}
	return digits(text[len(prefix):], f)
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
