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

package token

import (
	"iter"
	"strconv"

	"github.com/craftblock/cbls/internal/trie"
)

type property uint16

const (
	keyword property = 1 << iota
	punct
	number
	integer
	assign
	compare
	arith
	executeItem
	objectKey
	section
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of kind properties, stored as bitsets.
var properties = [...]property{
	Decimal:   number | integer,
	Float:     number,
	Hex:       number | integer,
	Binary:    number | integer,
	NBTNumber: number,

	And:          keyword,
	By:           keyword,
	Case:         keyword,
	Default:      keyword,
	Define:       keyword,
	Desc:         keyword,
	Dir:          keyword,
	Do:           keyword,
	End:          keyword,
	Else:         keyword,
	For:          keyword,
	Function:     keyword | section,
	If:           keyword | executeItem,
	Import:       keyword,
	In:           keyword | executeItem,
	Keys:         keyword,
	LootTable:    keyword,
	Name:         keyword | objectKey,
	Not:          keyword,
	Or:           keyword,
	Recipe:       keyword,
	Remove:       keyword,
	Return:       keyword,
	Result:       keyword,
	Success:      keyword,
	Shaped:       keyword,
	Switch:       keyword,
	Then:         keyword,
	To:           keyword,
	Unless:       keyword | executeItem,
	While:        keyword,
	With:         keyword,
	False:        keyword,
	True:         keyword,
	Clock:        keyword | section,
	Macros:       keyword,
	Reset:        keyword | section,
	Macro:        keyword | section,
	Align:        keyword | executeItem,
	As:           keyword | executeItem,
	At:           keyword | executeItem,
	Eyes:         keyword,
	Facing:       keyword | executeItem | objectKey,
	Feet:         keyword,
	Here:         keyword,
	Move:         keyword,
	On:           keyword | executeItem,
	Overworld:    keyword,
	Rotated:      keyword | executeItem,
	TheEnd:       keyword,
	TheNether:    keyword,
	Advancement:  keyword,
	Actionbar:    keyword,
	Create:       keyword,
	Tell:         keyword,
	Title:        keyword,
	Subtitle:     keyword,
	Array:        keyword,
	Block:        keyword | objectKey,
	BlockData:    keyword,
	BlockTag:     keyword,
	Entity:       keyword,
	EntityTag:    keyword,
	ItemTag:      keyword,
	ItemModifier: keyword,
	Predicate:    keyword | objectKey,
	Pop:          keyword,
	Push:         keyword,

	Dollar:   punct,
	Dot:      punct,
	DotDot:   punct,
	Comma:    punct,
	Colon:    punct,
	Semi:     punct,
	Tilde:    punct,
	Amp:      punct,
	Bang:     punct,
	LParen:   punct,
	RParen:   punct,
	LBracket: punct,
	RBracket: punct,
	LBrace:   punct,
	RBrace:   punct,

	Plus:       punct | arith,
	PlusPlus:   punct,
	Minus:      punct | arith,
	MinusMinus: punct,
	Star:       punct | arith,
	Slash:      punct | arith,
	Percent:    punct | arith,
	Caret:      punct | arith,

	Eq:        punct | assign,
	PlusEq:    punct | assign,
	MinusEq:   punct | assign,
	StarEq:    punct | assign,
	PercentEq: punct | assign,

	EqEq:      punct | compare,
	Less:      punct | compare,
	LessEq:    punct | compare,
	Greater:   punct | compare,
	GreaterEq: punct | compare,
}

var punctTrie = func() *trie.Trie[Kind] {
	trie := new(trie.Trie[Kind])
	for k := range Kind(total) {
		if k.IsPunct() {
			trie.Insert(k.String(), k)
		}
	}
	return trie
}()

// Kinds returns an iterator over every kind, in order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range Kind(total) {
			if !yield(k) {
				return
			}
		}
	}
}

// Prefix returns the longest operator or punctuation kind whose spelling is a
// prefix of text, or [Unrecognized] if there is none.
func Prefix(text string) Kind {
	_, k := punctTrie.Get(text)
	return k
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k.properties()&keyword != 0
}

// IsPunct returns whether this is an operator or punctuation.
func (k Kind) IsPunct() bool {
	return k.properties()&punct != 0
}

// IsLiteral returns whether every token of this kind is spelled the same way,
// i.e., whether it is a reserved word or punctuation.
func (k Kind) IsLiteral() bool {
	return k.IsKeyword() || k.IsPunct()
}

// IsNumber returns whether this is any numeric literal.
func (k Kind) IsNumber() bool {
	return k.properties()&number != 0
}

// IsInteger returns whether this is a decimal, hexadecimal, or binary integer.
func (k Kind) IsInteger() bool {
	return k.properties()&integer != 0
}

// IsAssignment returns whether this is = or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	return k.properties()&assign != 0
}

// IsComparison returns whether this is a comparison operator.
func (k Kind) IsComparison() bool {
	return k.properties()&compare != 0
}

// IsArithmetic returns whether this is a binary arithmetic operator.
func (k Kind) IsArithmetic() bool {
	return k.properties()&arith != 0
}

// IsOperator returns whether this punctuation is highlighted as an operator.
func (k Kind) IsOperator() bool {
	return k.properties()&(arith|assign|compare) != 0 ||
		k == PlusPlus || k == MinusMinus
}

// IsExecuteItem returns whether this keyword starts an execute item.
func (k Kind) IsExecuteItem() bool {
	return k.properties()&executeItem != 0
}

// IsObjectKey returns whether this reserved word may be used as a key in a
// JSON object.
func (k Kind) IsObjectKey() bool {
	return k.properties()&objectKey != 0
}

// IsSection returns whether this keyword begins a section.
func (k Kind) IsSection() bool {
	return k.properties()&section != 0
}

// Describe returns a description of this kind suitable for diagnostics.
//
// Reserved words and punctuation are quoted; other kinds are described by
// name, e.g. "identifier".
func (k Kind) Describe() string {
	if k.IsLiteral() {
		return strconv.Quote(k.String())
	}
	return k.String()
}
