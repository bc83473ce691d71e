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

// Package ast defines the syntax tree produced by the CraftBlock parser.
//
// The tree is a set of tagged variants: each production family of the
// grammar has an interface ([Decl], [Stmt], [Expr], [Cond]) implemented by
// one struct per production. Every node embeds the [Extent] it was parsed
// from.
//
// Nodes produced while recovering from a syntax error are [Bad] nodes, which
// implement every interface so that they can stand in for whatever failed to
// parse.
package ast

import (
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// Extent is the region of source a node was parsed from. Nodes embed it so
// that they implement [source.Spanner].
type Extent = source.Span

// Node is any syntax tree node.
type Node interface {
	source.Spanner
	node()
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	decl()
}

// Stmt is a statement inside a section body.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression.
type Expr interface {
	Node
	expr()
}

// Cond is a condition, as used by if, unless, and while.
type Cond interface {
	Node
	cond()
}

// File is a whole parsed document.
type File struct {
	Extent

	// The leading declarations of a script. All nil for a library.
	Dir    *DirDecl
	Desc   *DescDecl
	Params []*FileParam

	Decls []Decl
}

// DirDecl is the leading output-directory declaration: dir "path".
type DirDecl struct {
	Extent
	Keyword token.Token
	Value   token.Token // Zero if the value failed to parse.
}

// DescDecl is the optional description: desc "text".
type DescDecl struct {
	Extent
	Keyword token.Token
	Value   token.Token // Zero if the value failed to parse.
}

// FileParam is a named numeric file parameter, such as scale 1000.
type FileParam struct {
	Extent
	Name  token.Token
	Value token.Token // Zero if the value failed to parse.
}

// Bad is a placeholder for a construct that failed to parse.
type Bad struct {
	Extent
}

func (*File) node()      {}
func (*DirDecl) node()   {}
func (*DescDecl) node()  {}
func (*FileParam) node() {}

func (*Bad) node() {}
func (*Bad) decl() {}
func (*Bad) stmt() {}
func (*Bad) expr() {}
func (*Bad) cond() {}
