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

package cbls

import (
	"github.com/craftblock/cbls/ast"
	"github.com/craftblock/cbls/token"
	"github.com/craftblock/cbls/walk"
)

// Symbol is a name declared by a document.
type Symbol struct {
	Name string `json:"name"`

	// What sort of thing is declared, such as "function", "constant", or
	// "advancement".
	Kind string `json:"kind"`

	// The 1-based position of the name.
	Line   int `json:"line"`
	Column int `json:"column"`
}

// symbols lists the names declared in file, in source order. Symbols inside
// constructs that failed to parse are not included.
func symbols(file *ast.File) []Symbol {
	var out []Symbol
	add := func(kind string, name token.Token) {
		if !name.IsZero() {
			out = append(out, Symbol{Name: name.Text, Kind: kind, Line: name.Line, Column: name.Column})
		}
	}

	_ = walk.Nodes(file, func(n ast.Node) error {
		switch n := n.(type) {
		case *ast.Section:
			if n.Name.IsZero() {
				add(n.Keyword.Text, n.Keyword)
			} else {
				add(n.Keyword.Text, n.Name)
			}
		case *ast.ConstAssign:
			add("constant", n.Name)
		case *ast.ArrayDecl:
			add("array", n.Name)
		case *ast.SelectorDef:
			add("selector", n.Name)
			return walk.SkipChildren
		case *ast.SelectorAssign:
			add("selector", n.Name)
		case *ast.Resource:
			add(n.Keyword.Text, n.Name)
			return walk.SkipChildren
		case *ast.DefineName:
			add("name", n.Name)
		case ast.Expr:
			return walk.SkipChildren
		}
		return nil
	})
	return out
}
