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

package ast

import "github.com/craftblock/cbls/token"

// Import is an import declaration: import a.b.c.
type Import struct {
	Extent
	Path []token.Token
}

// ConstAssign assigns a compile-time constant: $name = expr. It may appear
// both at the top level and inside a section.
type ConstAssign struct {
	Extent
	Name  token.Token
	Value Expr
}

// Resource declares a JSON resource: advancement, predicate, item_modifier,
// or loot_table, followed by a name and an object.
type Resource struct {
	Extent
	Keyword token.Token
	Name    token.Token
	Body    *Object
}

// ArrayDecl declares a fixed-size array: array name[size] or
// array name[from to to].
type ArrayDecl struct {
	Extent
	Name     token.Token
	From, To Expr // To is nil for the single-size form.
}

// SelectorDef defines a named selector with optional fields:
//
//	define @name = @e[type=zombie]
//	    health = Health float
//	end
type SelectorDef struct {
	Extent
	Name token.Token // The @name being defined.
	Op   token.Token // = or :
	UUID Expr        // Set for the define @name : uuid(@selector) form.
	Base *Selector
	Body []SelectorItem
}

// SelectorItem is a single line inside a [SelectorDef].
type SelectorItem struct {
	Extent

	// Name is the field name. For a vector path <name>, IsVector is set.
	Name     token.Token
	IsVector bool

	// Exactly one of Selector, Path, or Create is set.
	Selector *Selector
	Path     *DataPath
	DataType token.Token
	Scale    Expr
	Create   *Object
}

// SelectorAssign binds a selector name outside of a definition block:
// @name = @e[...].
type SelectorAssign struct {
	Extent
	Name  token.Token
	Value *Selector
}

// Section is a reset, clock, function, or macro section.
type Section struct {
	Extent
	Keyword token.Token
	Name    token.Token // Zero for reset.
	Params  []Param
	Body    []Stmt
}

// Param is a single function or macro parameter.
type Param struct {
	Extent
	Dollar token.Token // Zero unless the parameter is a $constant.
	Name   token.Token
}

func (*Import) node()         {}
func (*ConstAssign) node()    {}
func (*Resource) node()       {}
func (*ArrayDecl) node()      {}
func (*SelectorDef) node()    {}
func (*SelectorItem) node()   {}
func (*SelectorAssign) node() {}
func (*Section) node()        {}
func (*Param) node()          {}

func (*Import) decl()         {}
func (*ConstAssign) decl()    {}
func (*Resource) decl()       {}
func (*ArrayDecl) decl()      {}
func (*SelectorDef) decl()    {}
func (*SelectorAssign) decl() {}
func (*Section) decl()        {}

func (*ConstAssign) stmt()    {}
func (*SelectorDef) stmt()    {}
func (*SelectorAssign) stmt() {}
