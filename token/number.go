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
	"math/big"
	"strings"
)

// IntValue returns the decimal text of an integer literal of the given kind,
// negated if negative is set.
//
// Hexadecimal and binary literals are converted, so that 0xFF becomes "255"
// and, when negated, 0x10 becomes "-16". Decimal text is returned unchanged
// apart from the sign. Any other kind is returned as-is.
func IntValue(kind Kind, text string, negative bool) string {
	base := 10
	digits := text
	switch kind {
	case Hex:
		base, digits = 16, text[2:]
	case Binary:
		base, digits = 2, text[2:]
	case Decimal:
		if negative {
			return "-" + text
		}
		return text
	default:
		return text
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return text
	}
	if negative {
		v.Neg(v)
	}
	return v.String()
}

// Unquote strips the surrounding quotes from a string literal.
//
// Escapes are left as written; the target command format interprets them.
// Unterminated strings lose only their opening quote.
func Unquote(text string) string {
	if text == "" || (text[0] != '"' && text[0] != '\'') {
		return text
	}
	q := text[:1]
	text = text[1:]
	if text != "" && strings.HasSuffix(text, q) {
		text = text[:len(text)-1]
	}
	return text
}
