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

// Not negates a condition.
type Not struct {
	Extent
	Cond Cond
}

// Logical joins two conditions with and or or.
type Logical struct {
	Extent
	Left  Cond
	Op    token.Token
	Right Cond
}

// PredicateCond tests a named predicate.
type PredicateCond struct {
	Extent
	Name token.Token
}

// BlockCond tests the block at some coordinates: block ~ ~-1 ~ stone.
type BlockCond struct {
	Extent
	Coords *Coords
	Block  token.Token
}

// Compare tests an expression, optionally against another one. A bare
// expression is true when it is nonzero, or for a selector, when it matches
// any entity.
type Compare struct {
	Extent
	Left  Expr
	Op    token.Token // Zero for a bare expression.
	Right Expr
}

func (*Not) node()           {}
func (*Logical) node()       {}
func (*PredicateCond) node() {}
func (*BlockCond) node()     {}
func (*Compare) node()       {}

func (*Not) cond()           {}
func (*Logical) cond()       {}
func (*PredicateCond) cond() {}
func (*BlockCond) cond()     {}
func (*Compare) cond()       {}
