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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/ast"
	"github.com/craftblock/cbls/parser"
	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
)

func parse(t *testing.T, path, text string) *parser.Result {
	t.Helper()
	result := parser.New(parser.Options{}).Parse(source.NewFile(path, text))
	require.NotNil(t, result.AST)
	return result
}

func messages(result *parser.Result) []string {
	var out []string
	for i := range result.Diagnostics {
		out = append(out, result.Diagnostics[i].Message())
	}
	return out
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "\n\n", "# just a comment\n"} {
		result := parse(t, "empty", text)
		assert.Equal(t, parser.Library, result.Dialect)
		assert.Empty(t, result.Diagnostics)
		assert.Empty(t, result.AST.Decls)
		assert.Empty(t, result.OutputDirectory)
		assert.Equal(t, parser.NoDescription, result.Description)
	}
}

func TestParseScriptHeader(t *testing.T) {
	t.Parallel()

	result := parse(t, "a.cbscript", "dir \"x\"")
	assert.Equal(t, parser.Script, result.Dialect)
	assert.Equal(t, "x", result.OutputDirectory)
	assert.Empty(t, result.Diagnostics)
	require.NotNil(t, result.AST.Dir)
	assert.Nil(t, result.AST.Desc)

	result = parse(t, "a.cbscript", "\n\ndir 'out'\ndesc \"a demo\"\nscale 500\nspeed 3\n")
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, "out", result.OutputDirectory)
	assert.Equal(t, "a demo", result.Description)
	assert.Equal(t, map[string]int{"scale": 500, "speed": 3}, result.FileParameters)
	assert.Equal(t, []string{`unknown file parameter "speed" at line 6`}, result.Messages)
	assert.Len(t, result.AST.Params, 2)
}

func TestParseFileParameterOptions(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.Options{FileParameters: []string{"scale", "speed"}})
	result := p.Parse(source.NewFile("a.cbscript", "dir 'out'\nspeed 3\n"))
	assert.Empty(t, result.Messages)
	assert.Equal(t, map[string]int{"speed": 3}, result.FileParameters)
}

func TestParseHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		label      string
		check      func(*testing.T, *parser.Result)
	}{
		{
			name:  "dir",
			text:  "dir 5\nreset\nend\n",
			label: "Expected a string for dir",
			check: func(t *testing.T, r *parser.Result) {
				assert.Equal(t, parser.Script, r.Dialect)
				assert.Equal(t, parser.NoOutputDirectory, r.OutputDirectory)
				assert.Len(t, r.AST.Decls, 1)
			},
		},
		{
			name:  "desc",
			text:  "dir 'a'\ndesc\nscale 10\n",
			label: "Expected a string for desc",
			check: func(t *testing.T, r *parser.Result) {
				assert.Equal(t, parser.NoDescription, r.Description)
				assert.Equal(t, map[string]int{"scale": 10}, r.FileParameters)
			},
		},
		{
			name:  "file parameter",
			text:  "dir 'a'\nscale big\n",
			label: "Expected an integer for file parameter",
			check: func(t *testing.T, r *parser.Result) {
				assert.Equal(t, map[string]int{"scale": parser.DefaultFileParameter}, r.FileParameters)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result := parse(t, "test", test.text)
			require.Len(t, result.Diagnostics, 1)
			d := &result.Diagnostics[0]
			assert.Equal(t, report.Error, d.Level)
			assert.Equal(t, parser.TagSyntax, d.Tag())
			assert.Equal(t, test.label, d.Label())
			test.check(t, result)
		})
	}
}

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	result := parse(t, "lib.cblib", "$a = 0xFF\n$b = 0b101\n$c = -0x10\n$d = -7\n$e = 1.25\n")
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.AST.Decls, 5)

	var got []string
	for _, decl := range result.AST.Decls {
		assign, ok := decl.(*ast.ConstAssign)
		require.True(t, ok)
		lit, ok := assign.Value.(*ast.Literal)
		require.True(t, ok)
		got = append(got, lit.Value)
	}
	assert.Equal(t, []string{"255", "5", "-16", "-7", "1.25"}, got)

	c := result.AST.Decls[2].(*ast.ConstAssign).Value.(*ast.Literal)
	assert.Equal(t, "-0x10", c.Span().Text())
}

func TestParseDialectMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, text string
		want       string
	}{
		{
			path: "main.cbscript",
			text: "$a = 1\n",
			want: "Compiler error in file. Script files should contain directory for output ('DIR' keyword)",
		},
		{
			path: "lib.cblib",
			text: "dir 'out'\n",
			want: "Compiler error in file. Libraries should not contain directory for output ('DIR' keyword)",
		},
		{path: "main.cbscript", text: " \n\t\n"},
		{path: "main.txt", text: "$a = 1\n"},
		{path: "main", text: "dir 'out'\n"},
		{path: "main.cbscript", text: "dir 'out'\n"},
		{path: "lib.cblib", text: "$a = 1\n"},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			t.Parallel()

			result := parse(t, test.path, test.text)
			if test.want == "" {
				assert.Empty(t, result.Diagnostics)
				return
			}
			require.Len(t, result.Diagnostics, 1)
			d := &result.Diagnostics[0]
			assert.Equal(t, test.want, d.Message())
			assert.Equal(t, parser.TagDialectMismatch, d.Tag())
			assert.Equal(t, test.path, d.InFile())
		})
	}
}

func TestParseInitialRecovery(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "x = 5\ndir \"out\"\nreset\nend\n")
	assert.Equal(t, parser.Script, result.Dialect)
	assert.Equal(t, "out", result.OutputDirectory)
	require.Len(t, result.Diagnostics, 1)
	assert.True(t, strings.HasPrefix(
		result.Diagnostics[0].Message(),
		`syntax error at line 1 column 1: unexpected identifier "x" in state start; expected`,
	), result.Diagnostics[0].Message())
	require.Len(t, result.AST.Decls, 1)
	assert.IsType(t, &ast.Section{}, result.AST.Decls[0])

	// Lexical errors before the dir are reported once, not again on replay.
	result = parse(t, "test", "? x\ndir 'a'\n")
	assert.Equal(t, parser.Script, result.Dialect)
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, parser.TagUnrecognized, result.Diagnostics[0].Tag())
	assert.Equal(t, parser.TagSyntax, result.Diagnostics[1].Tag())

	// Without a dir to recover to, the document is a library.
	result = parse(t, "test", "x = 5\n")
	assert.Equal(t, parser.Library, result.Dialect)
	assert.Len(t, result.Diagnostics, 1)
	assert.Empty(t, result.AST.Decls)
}

func TestParseStatementRecovery(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "function f()\n    x = = 3\n    y = 2\nend\n$after = 1\n")
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message(), `unexpected "=" in state expression`)
	assert.Contains(t, result.Diagnostics[0].Message(), "line 2 column 9")

	require.Len(t, result.AST.Decls, 2)
	sec, ok := result.AST.Decls[0].(*ast.Section)
	require.True(t, ok)
	assert.Equal(t, "f", sec.Name.Text)
	require.Len(t, sec.Body, 2)
	assert.IsType(t, &ast.Bad{}, sec.Body[0])
	assert.IsType(t, &ast.Assign{}, sec.Body[1])
	assert.IsType(t, &ast.ConstAssign{}, result.AST.Decls[1])
}

func TestParseSectionRecovery(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "function (x)\n    /say hi\nend\n$after = 1\n")
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message(), "in state section-header")

	require.Len(t, result.AST.Decls, 2)
	sec, ok := result.AST.Decls[0].(*ast.Section)
	require.True(t, ok)
	assert.Empty(t, sec.Body)
	assert.IsType(t, &ast.ConstAssign{}, result.AST.Decls[1])
}

func TestParseDelimitedRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		state string
	}{
		{name: "object", body: "o = {a: 1, b: }", state: "object-value"},
		{name: "array", body: "o = [1, , 2]", state: "array-value"},
		{name: "literal array", body: "o = [i; 1, , 2]", state: "literal-array"},
		{name: "selector", body: `tell @s[tag=, =] "hi"`, state: "qualifier"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result := parse(t, "test", "function f()\n    "+test.body+"\n    z = 1\nend\n")
			require.Len(t, result.Diagnostics, 1, messages(result))
			assert.Equal(t, parser.TagSyntax, result.Diagnostics[0].Tag())
			assert.Contains(t, result.Diagnostics[0].Message(), "in state "+test.state+";")

			require.Len(t, result.AST.Decls, 1)
			sec, ok := result.AST.Decls[0].(*ast.Section)
			require.True(t, ok)
			require.Len(t, sec.Body, 2)
			assert.NotEqual(t, "*ast.Bad", typeName(sec.Body[0]))
			assert.IsType(t, &ast.Assign{}, sec.Body[1])
		})
	}
}

func TestParseResourceRecovery(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "advancement a {x: }\n$after = 1\n")
	require.Len(t, result.Diagnostics, 1, messages(result))
	assert.Contains(t, result.Diagnostics[0].Message(), "in state object-value")
	require.Len(t, result.AST.Decls, 2)
	assert.IsType(t, &ast.Resource{}, result.AST.Decls[0])
	assert.IsType(t, &ast.ConstAssign{}, result.AST.Decls[1])
}

func TestParseUnclosedObject(t *testing.T) {
	t.Parallel()

	// The object stops at the end of the block, which closes the block
	// without a second complaint about the assignment's line.
	result := parse(t, "test", "reset\n    if x\n        y = {a: 1\n    end\n    z = 1\nend\n")
	require.Len(t, result.Diagnostics, 1, messages(result))
	assert.Contains(t, result.Diagnostics[0].Message(), `unexpected "end" in state object-key`)
	assert.Contains(t, result.Diagnostics[0].Message(), "line 4 column 5")

	require.Len(t, result.AST.Decls, 1)
	sec, ok := result.AST.Decls[0].(*ast.Section)
	require.True(t, ok)
	require.Len(t, sec.Body, 2)
	chain, ok := sec.Body[0].(*ast.Chain)
	require.True(t, ok)
	require.Len(t, chain.Body, 1)
	assert.IsType(t, &ast.Assign{}, chain.Body[0])
	assert.IsType(t, &ast.Assign{}, sec.Body[1])

	// An unclosed array behaves the same way.
	result = parse(t, "test", "reset\n    y = [1, 2\nend\n")
	require.Len(t, result.Diagnostics, 1, messages(result))
	assert.Contains(t, result.Diagnostics[0].Message(), `unexpected "end" in state array-value`)
}

func TestParseTopLevelRecovery(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "$a = 1\nbogus stuff\n$b = 2\n")
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message(), "in state top-level")
	require.Len(t, result.AST.Decls, 3)
	assert.IsType(t, &ast.Bad{}, result.AST.Decls[1])
}

func TestParseWarnings(t *testing.T) {
	t.Parallel()

	result := parse(t, "test", "reset\n    on foo do /say hi\n    align q do /say hi\nend\n")
	require.Len(t, result.Diagnostics, 2)
	assert.False(t, result.HasErrors())
	for i := range result.Diagnostics {
		assert.Equal(t, report.Warning, result.Diagnostics[i].Level)
		assert.Equal(t, parser.TagUnknownName, result.Diagnostics[i].Tag())
	}
	assert.True(t, strings.HasPrefix(result.Diagnostics[0].Message(), `unknown executee "foo"; expected "attacker"`))
	assert.True(t, strings.HasPrefix(result.Diagnostics[1].Message(), `unknown axis "q"`))
}

func TestParseKitchenSink(t *testing.T) {
	t.Parallel()

	result := parse(t, "kitchen.cbscript", kitchenSink)
	assert.Empty(t, messages(result))
	assert.Equal(t, parser.Script, result.Dialect)
	assert.Equal(t, "pack", result.OutputDirectory)
	assert.Equal(t, "demo", result.Description)

	var kinds []string
	for _, decl := range result.AST.Decls {
		kinds = append(kinds, strings.TrimPrefix(typeName(decl), "*ast."))
	}
	assert.Equal(t, []string{
		"Import", "ConstAssign", "Resource", "ArrayDecl", "SelectorDef",
		"SelectorAssign", "Section",
	}, kinds)

	def := result.AST.Decls[4].(*ast.SelectorDef)
	assert.Equal(t, "@zombie", def.Name.Text)
	assert.Len(t, def.Body, 3)

	fn := result.AST.Decls[6].(*ast.Section)
	assert.Equal(t, "greet", fn.Name.Text)
	assert.Len(t, fn.Params, 2)
	for _, stmt := range fn.Body {
		assert.NotEqual(t, "*ast.Bad", typeName(stmt))
	}
}

func TestParseReset(t *testing.T) {
	t.Parallel()

	file := source.NewFile("kitchen.cbscript", "? x\n"+kitchenSink+"\nfunction (\n")
	p := parser.New(parser.Options{})
	first := p.Parse(file)
	second := p.Parse(file)
	assert.NotEmpty(t, first.Diagnostics)
	assert.Equal(t, first, second)

	fresh := parser.New(parser.Options{}).Parse(file)
	assert.Equal(t, fresh, second)
}

func TestExpectedSets(t *testing.T) {
	t.Parallel()

	for s := parser.StateStart; s <= parser.StateEndOfLine; s++ {
		assert.Positive(t, s.Expected().Len(), "%v", s)
		assert.NotContains(t, s.String(), "parser.State(")
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

const kitchenSink = `dir "pack"
desc "demo"
scale 1000

import common.utils
$max = 10 * 2
advancement first_steps {
    criteria: {
        tick: {trigger: "minecraft:tick"}
    },
    rewards: [1, 2b, -3.5f]
}
array slots[0 to $max]
define @zombie = @e[type=zombie, tag=!dead]
    hp = Health float 1
    <pos> : Pos double
    create {Tags: ["a"], Data: [i; 1, 2, 3]}
end
@players = @a[level=1..5]

function greet($name, other)
    tell @a "hello"
    for $i in 0 to 10 by 2
        count += $i
    end
    while count > 0 and @s[tag=x]
        count--
    end
    as @a[limit=1] at @s eyes if score >= 3 do /say hi
    if block ~ ~-1 ~ stone
        /say stone
    else unless predicate lucky
        /say unlucky
    else
        /say lucky
    end
    rotated ~ ~ ~ then return 5
    on attacker align xyz in the_nether do remove @s.tag
    define name banner = "Banner"
    pos = <1, 2, 3> * <4, 5, 6>
    value = success
    /data get entity @s
    storage:data.items[0].count = 0b101
    :temp = &@s
    greet("x", 1)
    return
end
`
