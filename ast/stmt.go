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

// Command is a raw game command line.
type Command struct {
	Extent
	Token token.Token
}

// Return returns from a function, optionally with a value.
type Return struct {
	Extent
	Value Expr // May be nil.
}

// DefineName gives an identifier a display name: define name x = "text".
type DefineName struct {
	Extent
	Name  token.Token
	Value token.Token
}

// For is a counted loop: for $i in 1 to 10 by 2 ... end.
//
// When To is nil, the loop iterates over the value of From.
type For struct {
	Extent
	Var          token.Token
	From, To, By Expr
	Body         []Stmt
}

// While loops while its condition holds.
type While struct {
	Extent
	Cond Cond
	Body []Stmt
}

// Chain is an execute chain: a sequence of execute items followed by either
// an inline action or a block with optional else clauses.
type Chain struct {
	Extent
	Items []*ExecItem

	// Exactly one of Action or Body is used.
	Action Stmt
	Body   []Stmt
	Else   []*Else
}

// Else is an else clause of a [Chain]. Items is empty for a plain else.
type Else struct {
	Extent
	Items []*ExecItem
	Body  []Stmt
}

// ExecItem is a single context-modifying clause of an execute chain, such as
// if <condition>, as @a, at @s eyes, or in the_nether.
type ExecItem struct {
	Extent
	Keyword token.Token

	Cond     Cond      // if, unless
	Selector *Selector // as, at, facing, rotated
	Alias    token.Token
	Anchor   token.Token // eyes or feet
	Coords   *Coords     // at, facing, rotated
	Name     token.Token // on <executee>, align <axes>, in <dimension>
}

// Remove deletes a variable or data path.
type Remove struct {
	Extent
	Target Expr
}

// Message is tell, title, subtitle, or actionbar.
type Message struct {
	Extent
	Keyword token.Token
	Target  *Selector
	Value   Expr
}

// Assign assigns to a variable, possibly with a compound operator.
type Assign struct {
	Extent
	Target Expr
	Op     token.Token
	Value  Expr
}

// IncDec is x++ or x--.
type IncDec struct {
	Extent
	Target Expr
	Op     token.Token
}

// ExprStmt is an expression evaluated for its side effects, typically a
// function or method call.
type ExprStmt struct {
	Extent
	X Expr
}

func (*Command) node()    {}
func (*Return) node()     {}
func (*DefineName) node() {}
func (*For) node()        {}
func (*While) node()      {}
func (*Chain) node()      {}
func (*Else) node()       {}
func (*ExecItem) node()   {}
func (*Remove) node()     {}
func (*Message) node()    {}
func (*Assign) node()     {}
func (*IncDec) node()     {}
func (*ExprStmt) node()   {}

func (*Command) stmt()    {}
func (*Return) stmt()     {}
func (*DefineName) stmt() {}
func (*For) stmt()        {}
func (*While) stmt()      {}
func (*Chain) stmt()      {}
func (*Remove) stmt()     {}
func (*Message) stmt()    {}
func (*Assign) stmt()     {}
func (*IncDec) stmt()     {}
func (*ExprStmt) stmt()   {}
