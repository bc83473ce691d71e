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

package semantic

import (
	"fmt"

	"github.com/craftblock/cbls/token"
)

// Token is a classified token, with an absolute position.
type Token struct {
	// 1-based line and column, counted the same way as [token.Token].
	Line, Column int
	Length       int

	Type      Type
	Modifiers Modifiers
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%d:%d+%d %v %v", t.Line, t.Column, t.Length, t.Type, t.Modifiers)
}

// categories maps token kinds to semantic types. Kinds missing from this
// table are not highlighted.
var categories = func() map[token.Kind]Type {
	m := map[token.Kind]Type{
		token.Command:   Command,
		token.Comment:   Comment,
		token.Ident:     Variable,
		token.AtIdent:   TypeName,
		token.String:    String,
		token.Decimal:   Number,
		token.Float:     Number,
		token.Hex:       Number,
		token.Binary:    Number,
		token.NBTNumber: Number,
	}
	for k := range token.Kinds() {
		switch {
		case k.IsKeyword():
			m[k] = Keyword
		case k.IsOperator():
			m[k] = Operator
		}
	}
	return m
}()

// Classify maps a token stream to highlighted tokens, in the same order.
// Tokens with no highlighting value, such as brackets and newlines, are
// dropped.
//
// Identifiers are refined by their neighbors: a name that follows a section
// keyword is a function definition, a name followed by ( is a call, and a
// name that follows $ is a parameter.
func Classify(tokens []token.Token) []Token {
	var out []Token
	for i, tok := range tokens {
		typ, ok := categories[tok.Kind]
		if !ok || tok.Length == 0 {
			continue
		}

		var prev, next token.Kind
		if i > 0 {
			prev = tokens[i-1].Kind
		}
		if i+1 < len(tokens) {
			next = tokens[i+1].Kind
		}

		var mods Modifiers
		switch tok.Kind {
		case token.Ident:
			switch {
			case prev.IsSection():
				typ, mods = Function, Definition
			case prev == token.Dollar:
				typ, mods = Parameter, Readonly
			case next == token.LParen:
				typ = Function
			}
		case token.AtIdent:
			if prev == token.Define {
				mods = Definition
			}
		case token.True, token.False:
			mods = DefaultLibrary
		}

		out = append(out, Token{
			Line:      tok.Line,
			Column:    tok.Column,
			Length:    tok.Length,
			Type:      typ,
			Modifiers: mods,
		})
	}
	return out
}
