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

// conditions parses conditions joined by and or or, which associate to the
// left with equal precedence.
func (p *Parser) conditions() ast.Cond {
	left := p.condition()
	for p.at(token.And, token.Or) {
		op := p.pop()
		right := p.condition()
		left = &ast.Logical{
			Extent: p.file.Span(left.Span().Start, right.Span().End),
			Left:   left,
			Op:     op,
			Right:  right,
		}
	}
	return left
}

// condition parses a single condition. A bare expression, such as a
// selector, is a condition in its own right.
func (p *Parser) condition() ast.Cond {
	first := p.peek()
	switch first.Kind {
	case token.Not:
		p.pop()
		cond := &ast.Not{Cond: p.condition()}
		cond.Extent = p.span(first)
		return cond

	case token.Predicate:
		p.pop()
		cond := &ast.PredicateCond{Name: p.expect(token.Ident, StateCondition)}
		cond.Extent = p.span(first)
		return cond

	case token.Block:
		p.pop()
		cond := &ast.BlockCond{Coords: p.coords()}
		cond.Block = p.expect(token.Ident, StateCondition)
		cond.Extent = p.span(first)
		return cond
	}

	if !p.atSet(exprStart) {
		p.fail(StateCondition)
	}
	cond := &ast.Compare{Left: p.expr()}
	if p.atSet(compareOps) {
		cond.Op = p.pop()
		cond.Right = p.expr()
	}
	cond.Extent = p.span(first)
	return cond
}

// expr parses an arithmetic expression.
func (p *Parser) expr() ast.Expr {
	left := p.term()
	for p.at(token.Plus, token.Minus) {
		left = p.binary(left, p.term)
	}
	return left
}

func (p *Parser) term() ast.Expr {
	left := p.power()
	for p.at(token.Star, token.Slash, token.Percent) {
		left = p.binary(left, p.power)
	}
	return left
}

func (p *Parser) power() ast.Expr {
	left := p.unary()
	if p.at(token.Caret) {
		op := p.pop()
		right := p.integer(StateExpression)
		left = &ast.Binary{Extent: p.spanOf(left), Left: left, Op: op, Right: right}
	}
	return left
}

// binary consumes an operator and its right operand, parsed by next.
func (p *Parser) binary(left ast.Expr, next func() ast.Expr) ast.Expr {
	op := p.pop()
	right := next()
	return &ast.Binary{
		Extent: p.spanOf(left),
		Left:   left,
		Op:     op,
		Right:  right,
		Dot:    op.Kind == token.Star && isVector(left) && isVector(right),
	}
}

func (p *Parser) unary() ast.Expr {
	if !p.at(token.Minus) {
		return p.postfix()
	}

	if p.peekN(1).Kind.IsNumber() {
		return p.number(StateExpression)
	}

	op := p.pop()
	x := p.unary()
	return &ast.Unary{Extent: p.span(op), Op: op, X: x}
}

// postfix parses an atom followed by any number of member accesses, index
// operations, and calls.
func (p *Parser) postfix() ast.Expr {
	first := p.peek()
	x := p.atom()
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.pop()
			member := &ast.Member{X: x}
			if _, ok := p.accept(token.Less); ok {
				member.IsVector = true
				member.Name = p.expect(token.Ident, StateExpression)
				p.expect(token.Greater, StateExpression)
			} else {
				if !p.at(token.Ident, token.Facing) {
					p.fail(StateDataPath)
				}
				member.Name = p.pop()
			}
			member.Extent = p.span(first)
			x = member

		case token.LBracket:
			p.pop()
			index := &ast.Index{X: x, Index: p.expr()}
			p.expect(token.RBracket, StateExpression)
			index.Extent = p.span(first)
			x = index

		case token.LParen:
			call := &ast.Call{Fn: x, Args: p.args()}
			call.Extent = p.span(first)
			x = call

		default:
			return x
		}
	}
}

// args parses a parenthesized argument list.
func (p *Parser) args() []ast.Expr {
	p.pop()
	var args []ast.Expr
	for !p.at(token.RParen) {
		if len(args) > 0 {
			p.expect(token.Comma, StateArguments)
		}
		if !p.atSet(exprStart) {
			p.fail(StateArguments)
		}
		args = append(args, p.expr())
	}
	p.pop()
	return args
}

// atom parses a literal, variable, vector, or parenthesized expression.
//
//nolint:gocyclo // One case per atom.
func (p *Parser) atom() ast.Expr {
	first := p.peek()
	switch first.Kind {
	case token.Decimal, token.Hex, token.Binary, token.Float, token.NBTNumber, token.String:
		return p.literal(p.pop(), false)

	case token.True, token.False:
		return p.literal(p.pop(), false)

	case token.Dollar:
		p.pop()
		ref := &ast.ConstRef{Name: p.expect(token.Ident, StateExpression)}
		ref.Extent = p.span(first)
		return ref

	case token.Ident:
		p.pop()
		if p.at(token.Colon) {
			p.pop()
			storage := &ast.Storage{Name: first, Path: p.dataPath()}
			storage.Extent = p.span(first)
			return storage
		}
		return &ast.Ident{Extent: p.span(first), Name: first}

	case token.Colon:
		p.pop()
		storage := &ast.Storage{Path: p.dataPath()}
		storage.Extent = p.span(first)
		return storage

	case token.Amp:
		p.pop()
		ref := &ast.Ref{Target: p.selector()}
		ref.Extent = p.span(first)
		return ref

	case token.AtIdent:
		return p.selector()

	case token.Less:
		if p.peekN(1).Kind == token.Ident && p.peekN(2).Kind == token.Greater {
			p.pop()
			name := &ast.VectorName{Name: p.pop()}
			p.pop()
			name.Extent = p.span(first)
			return name
		}
		return p.vector()

	case token.LParen:
		p.pop()
		paren := &ast.Paren{Elems: []ast.Expr{p.expr()}}
		p.expect(token.RParen, StateExpression)
		paren.Extent = p.span(first)
		return paren

	case token.Success, token.Result:
		p.pop()
		result := &ast.CommandResult{Keyword: first}
		p.expect(token.Newline, StateCommandResult)
		p.skipNewlines()
		result.Command = p.expect(token.Command, StateCommandResult)
		result.Extent = p.span(first)
		return result
	}

	p.fail(StateExpression)
	return nil
}

// vector parses <x, y, z>.
func (p *Parser) vector() *ast.Vector {
	first := p.pop()
	vec := &ast.Vector{}
	vec.X = p.expr()
	p.expect(token.Comma, StateVector)
	vec.Y = p.expr()
	p.expect(token.Comma, StateVector)
	vec.Z = p.expr()
	p.expect(token.Greater, StateVector)
	vec.Extent = p.span(first)
	return vec
}

// coords parses three coordinates, such as ~ ~1 ~ or ^ ^ ^2.
func (p *Parser) coords() *ast.Coords {
	first := p.peek()
	coords := &ast.Coords{}
	for i := range coords.Parts {
		coords.Parts[i] = p.coord()
	}
	coords.Extent = p.span(first)
	return coords
}

func (p *Parser) coord() *ast.Coord {
	first := p.peek()
	coord := &ast.Coord{}
	switch first.Kind {
	case token.TildeEmpty:
		coord.Prefix = p.pop()
	case token.Tilde, token.Caret:
		coord.Prefix = p.pop()
		if p.peek().Kind.IsNumber() || (p.at(token.Minus) && p.peekN(1).Kind.IsNumber()) {
			coord.Offset = p.number(StateCoordinate)
		}
	default:
		coord.Offset = p.number(StateCoordinate)
	}
	coord.Extent = p.span(first)
	return coord
}

// constExpr parses a compile-time expression over literals and $constants.
func (p *Parser) constExpr() ast.Expr {
	left := p.constAnd()
	for p.at(token.Or) {
		left = p.binary(left, p.constAnd)
	}
	return left
}

func (p *Parser) constAnd() ast.Expr {
	left := p.constNot()
	for p.at(token.And) {
		left = p.binary(left, p.constNot)
	}
	return left
}

func (p *Parser) constNot() ast.Expr {
	if !p.at(token.Not) {
		return p.constCompare()
	}
	op := p.pop()
	x := p.constNot()
	return &ast.Unary{Extent: p.span(op), Op: op, X: x}
}

func (p *Parser) constCompare() ast.Expr {
	left := p.constSum()
	if p.atSet(compareOps) {
		left = p.binary(left, p.constSum)
	}
	return left
}

func (p *Parser) constSum() ast.Expr {
	left := p.constTerm()
	for p.at(token.Plus, token.Minus) {
		left = p.binary(left, p.constTerm)
	}
	return left
}

func (p *Parser) constTerm() ast.Expr {
	left := p.constUnary()
	for p.at(token.Star, token.Slash, token.Percent) {
		left = p.binary(left, p.constUnary)
	}
	return left
}

func (p *Parser) constUnary() ast.Expr {
	if !p.at(token.Minus) {
		return p.constPostfix()
	}
	if p.peekN(1).Kind.IsNumber() {
		return p.number(StateConstExpression)
	}
	op := p.pop()
	x := p.constUnary()
	return &ast.Unary{Extent: p.span(op), Op: op, X: x}
}

func (p *Parser) constPostfix() ast.Expr {
	first := p.peek()
	x := p.constAtom()
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.pop()
			member := &ast.Member{X: x, Name: p.expect(token.Ident, StateConstExpression)}
			member.Extent = p.span(first)
			x = member

		case token.LBracket:
			p.pop()
			index := &ast.Index{X: x, Index: p.constExpr()}
			p.expect(token.RBracket, StateConstExpression)
			index.Extent = p.span(first)
			x = index

		default:
			return x
		}
	}
}

func (p *Parser) constAtom() ast.Expr {
	first := p.peek()
	switch first.Kind {
	case token.Decimal, token.Hex, token.Binary, token.Float, token.String,
		token.True, token.False:
		return p.literal(p.pop(), false)

	case token.Dollar:
		p.pop()
		ref := &ast.ConstRef{Name: p.expect(token.Ident, StateConstExpression)}
		ref.Extent = p.span(first)
		return ref

	case token.LBracket:
		list := &ast.List{Elems: p.constList(token.RBracket)}
		list.Extent = p.span(first)
		return list

	case token.LParen:
		paren := &ast.Paren{Elems: p.constList(token.RParen)}
		paren.Extent = p.span(first)
		return paren
	}

	p.fail(StateConstExpression)
	return nil
}

// constList parses a comma-separated list of constant expressions, which
// may span lines, up to and including the closing delimiter.
func (p *Parser) constList(closer token.Kind) []ast.Expr {
	p.pop()
	var elems []ast.Expr
	p.skipNewlines()
	for !p.at(closer) {
		if len(elems) > 0 {
			p.expect(token.Comma, StateConstExpression)
			p.skipNewlines()
		}
		elems = append(elems, p.constExpr())
		p.skipNewlines()
	}
	p.pop()
	return elems
}

// integer parses an integer literal with an optional leading minus.
func (p *Parser) integer(state State) *ast.Literal {
	neg, negative := p.accept(token.Minus)
	if !p.peek().Kind.IsInteger() {
		p.fail(state)
	}
	lit := p.literal(p.pop(), negative)
	if negative {
		lit.Extent = p.span(neg)
	}
	return lit
}

// number parses any numeric literal with an optional leading minus.
func (p *Parser) number(state State) *ast.Literal {
	neg, negative := p.accept(token.Minus)
	if !p.peek().Kind.IsNumber() {
		p.fail(state)
	}
	lit := p.literal(p.pop(), negative)
	if negative {
		lit.Extent = p.span(neg)
	}
	return lit
}

// literal builds a literal out of tok, normalizing its value.
func (p *Parser) literal(tok token.Token, negative bool) *ast.Literal {
	value := tok.Value()
	switch {
	case tok.Kind.IsInteger():
		value = token.IntValue(tok.Kind, tok.Text, negative)
	case negative:
		value = "-" + value
	}
	return &ast.Literal{Extent: tok.Span(), Token: tok, Value: value}
}

// spanOf returns the span from the start of n through the last token
// consumed.
func (p *Parser) spanOf(n ast.Node) ast.Extent {
	return p.file.Span(n.Span().Start, p.prev.End())
}

func isVector(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Vector, *ast.VectorName:
		return true
	}
	return false
}
