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

package parser

import (
	"github.com/craftblock/cbls/ast"
	"github.com/craftblock/cbls/token"
)

var (
	dataTypes = []string{"byte", "double", "float", "int", "long", "short"}
	arrayTags = []string{"b", "i", "l"}

	selectorEnd = token.NewSet(token.RBracket, token.Newline)
	objectEnd   = token.NewSet(token.RBrace, token.End)
	arrayEnd    = token.NewSet(token.RBracket, token.End)
)

// selector parses @name, optionally followed by a bracketed count or
// qualifier list.
func (p *Parser) selector() *ast.Selector {
	sel := &ast.Selector{At: p.expect(token.AtIdent, StateSelector)}
	if !p.at(token.LBracket) {
		sel.Extent = p.span(sel.At)
		return sel
	}

	p.pop()
	p.tolerate(selectorEnd, token.NewSet(token.RBracket), func() {
		next := p.peek().Kind
		if next.IsInteger() || (next == token.Minus && p.peekN(1).Kind.IsInteger()) {
			sel.Count = p.integer(StateSelector)
		} else {
			sel.Qualifiers = p.qualifiers()
		}
		p.expect(token.RBracket, StateSelector)
	})
	sel.Extent = p.span(sel.At)
	return sel
}

// qualifiers parses qualifiers separated by commas or and.
func (p *Parser) qualifiers() []*ast.Qualifier {
	var quals []*ast.Qualifier
	for !p.at(token.RBracket) {
		if len(quals) > 0 && !p.at(token.Comma, token.And) {
			p.fail(StateQualifier)
		}
		if len(quals) > 0 {
			p.pop()
		}
		quals = append(quals, p.qualifier())
	}
	return quals
}

// qualifier parses a single selector qualifier, such as tag=foo, !tag,
// level=1..5, or score>=3.
func (p *Parser) qualifier() *ast.Qualifier {
	first := p.peek()
	if first.Kind != token.Ident && !first.Kind.IsObjectKey() {
		p.fail(StateQualifier)
	}
	q := &ast.Qualifier{Name: p.pop()}

	switch op := p.peek(); {
	case op.Kind == token.Eq:
		q.Op = p.pop()
		q.Value, q.Negated = p.qualifierValue()
	case compareOps.Has(op.Kind):
		q.Op = p.pop()
		q.Value = p.integer(StateQualifierValue)
	}

	q.Extent = p.span(first)
	return q
}

// qualifierValue parses whatever follows the = of a qualifier. The value
// may be absent.
func (p *Parser) qualifierValue() (value ast.Node, negated bool) {
	first := p.peek()
	switch first.Kind {
	case token.Comma, token.And, token.RBracket:
		return nil, false

	case token.Bang, token.Not:
		p.pop()
		name := p.expect(token.Ident, StateQualifierValue)
		return &ast.Ident{Extent: name.Span(), Name: name}, true

	case token.Ident:
		p.pop()
		return &ast.Ident{Extent: first.Span(), Name: first}, false

	case token.String:
		return p.literal(p.pop(), false), false

	case token.LBrace:
		return p.object(), false

	case token.DotDot:
		p.pop()
		r := &ast.Range{Hi: p.integer(StateRange)}
		r.Extent = p.span(first)
		return r, false
	}

	lo := p.integer(StateQualifierValue)
	if !p.at(token.DotDot) {
		return lo, false
	}
	p.pop()
	r := &ast.Range{Lo: lo}
	if p.peek().Kind.IsInteger() || p.at(token.Minus) {
		r.Hi = p.integer(StateRange)
	}
	r.Extent = p.span(first)
	return r, false
}

// object parses a JSON-like object. An error inside it skips to the closing
// brace.
func (p *Parser) object() *ast.Object {
	first := p.expect(token.LBrace, StateObjectValue)
	obj := &ast.Object{}
	p.tolerate(objectEnd, token.NewSet(token.RBrace), func() {
		p.skipNewlines()
		for !p.at(token.RBrace) {
			if len(obj.Pairs) > 0 {
				p.expect(token.Comma, StateObjectKey)
				p.skipNewlines()
				if p.at(token.RBrace) {
					break
				}
			}
			obj.Pairs = append(obj.Pairs, p.pair())
			p.skipNewlines()
		}
		p.pop()
	})
	obj.Extent = p.span(first)
	return obj
}

func (p *Parser) pair() *ast.Pair {
	first := p.peek()
	if first.Kind != token.Ident && first.Kind != token.String && !first.Kind.IsObjectKey() {
		p.fail(StateObjectKey)
	}
	pair := &ast.Pair{Key: p.pop()}
	p.expect(token.Colon, StateObjectKey)
	p.skipNewlines()
	pair.Value = p.value(StateObjectValue)
	pair.Extent = p.span(first)
	return pair
}

// value parses a JSON value.
func (p *Parser) value(state State) ast.Expr {
	first := p.peek()
	switch first.Kind {
	case token.Dollar:
		p.pop()
		ref := &ast.ConstRef{Name: p.expect(token.Ident, state)}
		ref.Extent = p.span(first)
		return ref
	case token.String, token.True, token.False:
		return p.literal(p.pop(), false)
	case token.LBrace:
		return p.object()
	case token.LBracket:
		return p.array()
	default:
		return p.number(state)
	}
}

// array parses a JSON array, or a literal array if the first element is a
// type tag followed by a semicolon. An error inside it skips to the closing
// bracket.
func (p *Parser) array() ast.Expr {
	first := p.expect(token.LBracket, StateArrayValue)
	var (
		elems []ast.Expr
		tag   token.Token
	)
	p.tolerate(arrayEnd, token.NewSet(token.RBracket), func() {
		p.skipNewlines()
		state := StateArrayValue
		if p.at(token.Ident) && p.peekN(1).Kind == token.Semi {
			state = StateLiteralArray
			tag = p.pop()
			p.pop()
			p.checkName(tag, "array type", arrayTags)
			p.skipNewlines()
		}

		for !p.at(token.RBracket) {
			if len(elems) > 0 {
				p.expect(token.Comma, state)
				p.skipNewlines()
			}
			if state == StateLiteralArray {
				elems = append(elems, p.literalValue())
			} else {
				elems = append(elems, p.value(state))
			}
			p.skipNewlines()
		}
		p.pop()
	})

	if !tag.IsZero() {
		return &ast.LiteralArray{Extent: p.span(first), Tag: tag, Elems: elems}
	}
	return &ast.Array{Extent: p.span(first), Elems: elems}
}

// literalValue parses an element of a literal array: a number or a
// $constant.
func (p *Parser) literalValue() ast.Expr {
	if first, ok := p.accept(token.Dollar); ok {
		ref := &ast.ConstRef{Name: p.expect(token.Ident, StateLiteralArray)}
		ref.Extent = p.span(first)
		return ref
	}
	return p.number(StateLiteralArray)
}

// dataPath parses a dotted NBT path such as Inventory[{Slot:0b}].tag.
func (p *Parser) dataPath() *ast.DataPath {
	first := p.peek()
	path := &ast.DataPath{}
	for {
		path.Parts = append(path.Parts, p.pathPart())
		if !p.at(token.Dot) {
			break
		}
		p.pop()
	}
	path.Extent = p.span(first)
	return path
}

func (p *Parser) pathPart() *ast.PathPart {
	first := p.peek()
	if !p.at(token.Ident, token.Facing) {
		p.fail(StateDataPath)
	}
	part := &ast.PathPart{Name: p.pop()}
	if p.at(token.LBrace) {
		part.Filter = p.object()
	}
	if _, ok := p.accept(token.LBracket); ok {
		if p.at(token.LBrace) {
			part.Index = p.object()
		} else {
			part.Index = p.integer(StateDataPath)
		}
		p.expect(token.RBracket, StateDataPath)
	}
	part.Extent = p.span(first)
	return part
}

// dataType parses an NBT data type name, warning about unknown ones.
func (p *Parser) dataType() token.Token {
	tok := p.expect(token.Ident, StateDataType)
	p.checkName(tok, "data type", dataTypes)
	return tok
}
