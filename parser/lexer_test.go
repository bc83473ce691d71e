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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/parser"
	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

type lexed struct {
	Kind token.Kind
	Text string
}

func lexAll(text string, opts parser.LexerOptions) ([]lexed, *report.Report) {
	r := new(report.Report)
	var out []lexed
	for _, tok := range parser.Lex(source.NewFile("test.cbscript", text), opts, r) {
		out = append(out, lexed{tok.Kind, tok.Text})
	}
	return out, r
}

func TestLexKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []lexed
	}{
		{
			name: "dir",
			text: "dir \"hello\"\n",
			want: []lexed{{token.Dir, "dir"}, {token.String, "\"hello\""}, {token.Newline, "\n"}},
		},
		{
			name: "keywords",
			text: "if unless loot_table foo_bar On",
			want: []lexed{{token.If, "if"}, {token.Unless, "unless"}, {token.LootTable, "loot_table"}, {token.Ident, "foo_bar"}, {token.Ident, "On"}},
		},
		{
			name: "operators",
			text: "a==b<=c>=d++--",
			want: []lexed{
				{token.Ident, "a"}, {token.EqEq, "=="}, {token.Ident, "b"}, {token.LessEq, "<="},
				{token.Ident, "c"}, {token.GreaterEq, ">="}, {token.Ident, "d"}, {token.PlusPlus, "++"},
				{token.MinusMinus, "--"},
			},
		},
		{
			name: "compound assignment",
			text: "x += 0x1F",
			want: []lexed{{token.Ident, "x"}, {token.PlusEq, "+="}, {token.Hex, "0x1F"}},
		},
		{
			name: "tildes",
			text: "~ ~1 ^",
			want: []lexed{{token.TildeEmpty, "~"}, {token.Tilde, "~"}, {token.Decimal, "1"}, {token.Caret, "^"}},
		},
		{
			name: "selector",
			text: "@s[tag=a]",
			want: []lexed{
				{token.AtIdent, "@s"}, {token.LBracket, "["}, {token.Ident, "tag"}, {token.Eq, "="},
				{token.Ident, "a"}, {token.RBracket, "]"},
			},
		},
		{
			name: "numbers",
			text: "0b101 0xff 1.5 42 5b 1.5f 0b 2.5e3d",
			want: []lexed{
				{token.Binary, "0b101"}, {token.Hex, "0xff"}, {token.Float, "1.5"}, {token.Decimal, "42"},
				{token.NBTNumber, "5b"}, {token.NBTNumber, "1.5f"}, {token.NBTNumber, "0b"}, {token.NBTNumber, "2.5e3d"},
			},
		},
		{
			name: "suffix runs into identifier",
			text: "5bx",
			want: []lexed{{token.Decimal, "5"}, {token.Ident, "bx"}},
		},
		{
			name: "minus is separate",
			text: "-5",
			want: []lexed{{token.Minus, "-"}, {token.Decimal, "5"}},
		},
		{
			name: "range",
			text: "1..5",
			want: []lexed{{token.Decimal, "1"}, {token.DotDot, ".."}, {token.Decimal, "5"}},
		},
		{
			name: "command",
			text: "  /say hi there  \n",
			want: []lexed{{token.Command, "/say hi there"}, {token.Newline, "\n"}},
		},
		{
			name: "command after do",
			text: "as @a do /say hi",
			want: []lexed{{token.As, "as"}, {token.AtIdent, "@a"}, {token.Do, "do"}, {token.Command, "/say hi"}},
		},
		{
			name: "division",
			text: "x / 2",
			want: []lexed{{token.Ident, "x"}, {token.Slash, "/"}, {token.Decimal, "2"}},
		},
		{
			name: "comment",
			text: "x # note\ny",
			want: []lexed{{token.Ident, "x"}, {token.Newline, "\n"}, {token.Ident, "y"}},
		},
		{
			name: "carriage return",
			text: "x\r\n",
			want: []lexed{{token.Ident, "x"}, {token.Newline, "\n"}},
		},
		{
			name: "escaped quote",
			text: `'it\'s' "a\"b"`,
			want: []lexed{{token.String, `'it\'s'`}, {token.String, `"a\"b"`}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, r := lexAll(test.text, parser.LexerOptions{})
			assert.Equal(t, test.want, got)
			assert.Zero(t, r.Len())
		})
	}
}

func TestLexPositions(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "dir 'a'\n  x = \"é😀\" y")
	tokens := parser.Lex(file, parser.LexerOptions{}, nil)
	require.Len(t, tokens, 7)

	type pos struct{ Line, Column, Length, Offset int }
	var got []pos
	for _, tok := range tokens {
		got = append(got, pos{tok.Line, tok.Column, tok.Length, tok.Offset})
	}
	assert.Equal(t, []pos{
		{1, 1, 3, 0},  // dir
		{1, 5, 3, 4},  // 'a'
		{1, 8, 1, 7},  // newline
		{2, 3, 1, 10}, // x
		{2, 5, 1, 12}, // =
		{2, 7, 5, 14}, // the string, with a surrogate pair
		{2, 13, 1, 23},
	}, got)

	for _, tok := range tokens {
		assert.Equal(t, tok.Text, tok.Span().Text())
	}
}

func TestLexKeepComments(t *testing.T) {
	t.Parallel()

	got, _ := lexAll("x # hi\r\n", parser.LexerOptions{KeepComments: true})
	assert.Equal(t, []lexed{{token.Ident, "x"}, {token.Comment, "# hi"}, {token.Newline, "\n"}}, got)
}

func TestLexUnrecognized(t *testing.T) {
	t.Parallel()

	got, r := lexAll("a ? b = 1", parser.LexerOptions{})
	want, clean := lexAll("a  b = 1", parser.LexerOptions{})
	assert.Equal(t, want, got)
	assert.Zero(t, clean.Len())

	require.Equal(t, 1, r.Len())
	d := &r.Diagnostics[0]
	assert.Equal(t, report.Error, d.Level)
	assert.Equal(t, "unrecognized character '?'", d.Message())
	assert.Equal(t, parser.TagUnrecognized, d.Tag())
	assert.Equal(t, 2, d.Primary().Start)
}

func TestLexUnterminatedString(t *testing.T) {
	t.Parallel()

	got, r := lexAll("x = 'abc\r\ny", parser.LexerOptions{})
	assert.Equal(t, []lexed{
		{token.Ident, "x"}, {token.Eq, "="}, {token.String, "'abc"},
		{token.Newline, "\n"}, {token.Ident, "y"},
	}, got)

	require.Equal(t, 1, r.Len())
	assert.Equal(t, parser.TagUnterminatedString, r.Diagnostics[0].Tag())
	assert.Equal(t, "unterminated string literal", r.Diagnostics[0].Message())
}

func TestLexReset(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "dir 'a'\nreset\nend\n")
	l := parser.NewLexer(parser.LexerOptions{})
	l.Input(file, nil)

	var first []token.Token
	for tok := range l.All() {
		first = append(first, tok)
	}
	assert.Equal(t, 4, l.Line())

	eof := l.Next()
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, len(file.Text()), eof.Offset)
	assert.Equal(t, eof, l.Next())

	l.Reset()
	assert.Equal(t, 1, l.Line())
	var second []token.Token
	for tok := range l.All() {
		second = append(second, tok)
	}
	assert.Equal(t, first, second)
}
