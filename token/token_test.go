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

package token_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, token.Dir, token.Lookup("dir"))
	assert.Equal(t, token.LootTable, token.Lookup("loot_table"))
	assert.Equal(t, token.On, token.Lookup("on"))
	assert.Equal(t, token.PlusEq, token.Lookup("+="))
	assert.Equal(t, token.Unrecognized, token.Lookup("DIR"))
	assert.Equal(t, token.Unrecognized, token.Lookup("identifier"))
	assert.Equal(t, token.Unrecognized, token.Lookup("foo"))
}

func TestKeywordsAreIdentifiers(t *testing.T) {
	t.Parallel()

	ident := regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	var keywords int
	for k := range token.Kind(0xff) {
		if !k.IsKeyword() {
			continue
		}
		keywords++
		assert.Regexp(t, ident, k.String(), "%#v", k)
		assert.Equal(t, k, token.Lookup(k.String()), "%#v", k)
		assert.False(t, k.IsPunct(), "%#v", k)
	}
	assert.Equal(t, 68, keywords)
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want token.Kind
	}{
		{"==5", token.EqEq},
		{"= 5", token.Eq},
		{"+=1", token.PlusEq},
		{"++", token.PlusPlus},
		{"+1", token.Plus},
		{"--x", token.MinusMinus},
		{"-=", token.MinusEq},
		{"..5", token.DotDot},
		{".x", token.Dot},
		{"<=", token.LessEq},
		{"<x>", token.Less},
		{"%=", token.PercentEq},
		{"^2", token.Caret},
		{"/", token.Slash},
		{"?", token.Unrecognized},
		{"a", token.Unrecognized},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, token.Prefix(tt.text), "%q", tt.text)
	}
}

func TestProperties(t *testing.T) {
	t.Parallel()

	assert.True(t, token.Hex.IsInteger())
	assert.True(t, token.NBTNumber.IsNumber())
	assert.False(t, token.NBTNumber.IsInteger())
	assert.True(t, token.StarEq.IsAssignment())
	assert.True(t, token.GreaterEq.IsComparison())
	assert.True(t, token.Caret.IsOperator())
	assert.True(t, token.MinusMinus.IsOperator())
	assert.False(t, token.Comma.IsOperator())
	assert.True(t, token.Facing.IsExecuteItem())
	assert.True(t, token.Facing.IsObjectKey())
	assert.True(t, token.Macro.IsSection())
	assert.False(t, token.Ident.IsLiteral())
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := token.NewSet(token.End, token.Ident, token.Newline)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has(token.End))
	assert.False(t, set.Has(token.Dir))
	assert.Equal(t, []token.Kind{token.Newline, token.Ident, token.End}, set.Slice())
	assert.Equal(t, `newline, identifier, or "end"`, set.Join("or"))

	assert.Equal(t, `newline or "end"`, set.Without(token.Ident).Join("or"))
	assert.Equal(t, `"end"`, token.NewSet(token.End).Join("or"))
	assert.Empty(t, token.Set{}.Join("or"))

	union := token.NewSet(token.Dir).Union(token.NewSet(token.GreaterEq), token.NewSet(token.Dir))
	assert.Equal(t, []token.Kind{token.Dir, token.GreaterEq}, union.Slice())

	assert.Panics(t, func() { token.NewSet(token.Kind(0xff)) })
	assert.False(t, set.Has(token.Kind(0xff)))
}

func TestIntValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "255", token.IntValue(token.Hex, "0xFF", false))
	assert.Equal(t, "5", token.IntValue(token.Binary, "0b101", false))
	assert.Equal(t, "-16", token.IntValue(token.Hex, "0x10", true))
	assert.Equal(t, "-42", token.IntValue(token.Decimal, "42", true))
	assert.Equal(t, "007", token.IntValue(token.Decimal, "007", false))
	assert.Equal(t, "18446744073709551616", token.IntValue(token.Hex, "0x10000000000000000", false))
	assert.Equal(t, "1.5", token.IntValue(token.Float, "1.5", false))
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out", token.Unquote(`"out"`))
	assert.Equal(t, "it's", token.Unquote(`'it's'`))
	assert.Equal(t, `say \"hi\"`, token.Unquote(`"say \"hi\""`))
	assert.Equal(t, "open", token.Unquote(`"open`))
	assert.Empty(t, token.Unquote(`"`))
	assert.Equal(t, "bare", token.Unquote("bare"))
}

func TestToken(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.cbscript", "x = 0x1F\n")
	tok := token.Token{Kind: token.Hex, Text: "0x1F", Line: 1, Column: 5, Length: 4, Offset: 4, File: file}

	require.False(t, tok.IsZero())
	assert.Equal(t, "0x1F", tok.Span().Text())
	assert.Equal(t, 8, tok.End())
	assert.Equal(t, "31", tok.Value())
	assert.Equal(t, `hexadecimal integer "0x1F"`, tok.Describe())
	assert.Equal(t, `1:5 token.Hex "0x1F"`, tok.String())

	assert.Equal(t, `"end"`, token.Token{Kind: token.End, Text: "end"}.Describe())
	assert.Equal(t, "newline", token.Token{Kind: token.Newline, Text: "\n"}.Describe())
	assert.True(t, token.Token{}.IsZero())
}
