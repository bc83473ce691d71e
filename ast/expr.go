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

// Literal is a number, string, or boolean.
type Literal struct {
	Extent
	Token token.Token

	// The normalized value: strings without quotes, integers in decimal
	// with any unary minus folded in.
	Value string
}

// ConstRef refers to a compile-time constant: $name.
type ConstRef struct {
	Extent
	Name token.Token
}

// Ident is a plain variable or function name.
type Ident struct {
	Extent
	Name token.Token
}

// VectorName is a vector variable written <name>.
type VectorName struct {
	Extent
	Name token.Token
}

// Storage is a storage-path variable, name:path or :path.
type Storage struct {
	Extent
	Name token.Token // Zero for the :path form.
	Path *DataPath
}

// Ref is a reference to a selector's data: &@s.
type Ref struct {
	Extent
	Target *Selector
}

// Selector is an entity reference with optional qualifiers: @e[type=cow].
//
// A selector used where an expression is expected tests whether any entity
// matches.
type Selector struct {
	Extent
	At         token.Token
	Count      Expr // Set for @s[5] style indexing.
	Qualifiers []*Qualifier
}

// Qualifier is one entry inside a selector's brackets.
type Qualifier struct {
	Extent
	Name token.Token
	Op   token.Token // Zero for a bare-name shorthand.

	Negated bool
	Value   Node // Literal, Ident, Object, or Range.
}

// Range is a numeric range a..b; either side may be omitted.
type Range struct {
	Extent
	Lo, Hi Expr
}

// Vector is a vector literal <x, y, z>.
type Vector struct {
	Extent
	X, Y, Z Expr
}

// Binary is a binary arithmetic or comparison expression.
type Binary struct {
	Extent
	Left  Expr
	Op    token.Token
	Right Expr

	// Set when * is applied to two vectors.
	Dot bool
}

// Unary is a prefix operator applied to an expression.
type Unary struct {
	Extent
	Op token.Token
	X  Expr
}

// Member accesses a field of an expression: x.name or x.<name>.
type Member struct {
	Extent
	X        Expr
	Name     token.Token
	IsVector bool
}

// Index indexes into an expression: x[i].
type Index struct {
	Extent
	X     Expr
	Index Expr
}

// Call calls a function or method: f(a, b).
type Call struct {
	Extent
	Fn   Expr
	Args []Expr
}

// Paren is a parenthesized expression, or a parenthesized list of constants.
type Paren struct {
	Extent
	Elems []Expr
}

// List is a bracketed list of constants: [1, 2, 3].
type List struct {
	Extent
	Elems []Expr
}

// CommandResult captures the success or result of the command on the next
// line.
type CommandResult struct {
	Extent
	Keyword token.Token
	Command token.Token
}

// Create creates an entity, either of a previously defined selector type,
// create @name[count], or from a JSON description, create {...}.
type Create struct {
	Extent
	Entity token.Token
	Count  Expr
	Body   *Object
}

// Object is a JSON-like object literal.
type Object struct {
	Extent
	Pairs []*Pair
}

// Pair is a single key-value pair inside an [Object].
type Pair struct {
	Extent
	Key   token.Token
	Value Expr
}

// Array is a JSON-like array literal.
type Array struct {
	Extent
	Elems []Expr
}

// LiteralArray is an NBT typed array literal such as [I; 1, 2, 3].
type LiteralArray struct {
	Extent
	Tag   token.Token
	Elems []Expr
}

// DataPath is a dotted NBT path such as Inventory[{Slot:0b}].tag.
type DataPath struct {
	Extent
	Parts []*PathPart
}

// PathPart is one component of a [DataPath].
type PathPart struct {
	Extent
	Name   token.Token
	Filter *Object
	Index  Expr // An *Object or an integer Literal.
}

// Coords is a triple of coordinates.
type Coords struct {
	Extent
	Parts [3]*Coord
}

// Coord is a single coordinate: a number, ~, ~5, ^, or ^-1.
type Coord struct {
	Extent
	Prefix token.Token // ~, ^, the empty tilde, or zero.
	Offset Expr        // May be nil.
}

func (*Literal) node()       {}
func (*ConstRef) node()      {}
func (*Ident) node()         {}
func (*VectorName) node()    {}
func (*Storage) node()       {}
func (*Ref) node()           {}
func (*Selector) node()      {}
func (*Qualifier) node()     {}
func (*Range) node()         {}
func (*Vector) node()        {}
func (*Binary) node()        {}
func (*Unary) node()         {}
func (*Member) node()        {}
func (*Index) node()         {}
func (*Call) node()          {}
func (*Paren) node()         {}
func (*List) node()          {}
func (*CommandResult) node() {}
func (*Create) node()        {}
func (*Object) node()        {}
func (*Pair) node()          {}
func (*Array) node()         {}
func (*LiteralArray) node()  {}
func (*DataPath) node()      {}
func (*PathPart) node()      {}
func (*Coords) node()        {}
func (*Coord) node()         {}

func (*Literal) expr()       {}
func (*ConstRef) expr()      {}
func (*Ident) expr()         {}
func (*VectorName) expr()    {}
func (*Storage) expr()       {}
func (*Ref) expr()           {}
func (*Selector) expr()      {}
func (*Range) expr()         {}
func (*Vector) expr()        {}
func (*Binary) expr()        {}
func (*Unary) expr()         {}
func (*Member) expr()        {}
func (*Index) expr()         {}
func (*Call) expr()          {}
func (*Paren) expr()         {}
func (*List) expr()          {}
func (*CommandResult) expr() {}
func (*Create) expr()        {}
func (*Object) expr()        {}
func (*Array) expr()         {}
func (*LiteralArray) expr()  {}
