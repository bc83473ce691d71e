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
	chainEnd   = token.NewSet(token.End, token.Else)
	headerStop = token.NewSet(token.Newline, token.Do, token.Then)

	executees = []string{"attacker", "controller", "leasher", "origin", "owner", "passengers", "target", "vehicle"}
	axes      = []string{"x", "y", "z", "xy", "xz", "yz", "xyz"}
	anchors   = []string{"eyes", "feet"}
)

// body parses statements until one of closers or the end of input, neither
// of which is consumed. Each statement is tolerant: a syntax error skips the
// rest of its line.
func (p *Parser) body(closers token.Set, state State) []ast.Stmt {
	var stmts []ast.Stmt
	stop := closers.With(token.Newline)
	for {
		p.skipNewlines()
		if p.atSet(closers) || p.at(token.EOF) {
			return stmts
		}

		first := p.peek()
		var stmt ast.Stmt
		if !p.tolerate(stop, lineEnd, func() { stmt = p.stmt(state) }) {
			stmt = &ast.Bad{Extent: p.span(first)}
		}
		stmts = append(stmts, stmt)
	}
}

// stmt parses a single statement, including its end of line.
//
//nolint:gocyclo // One case per statement form.
func (p *Parser) stmt(state State) ast.Stmt {
	first := p.peek()
	switch first.Kind {
	case token.Command:
		stmt := &ast.Command{Token: p.pop()}
		stmt.Extent = p.span(first)
		p.eol()
		return stmt

	case token.Dollar:
		stmt := p.constAssign()
		p.eol()
		return stmt

	case token.Return:
		p.pop()
		stmt := &ast.Return{}
		if !p.at(token.Newline, token.EOF, token.End) {
			stmt.Value = p.expr()
		}
		stmt.Extent = p.span(first)
		p.eol()
		return stmt

	case token.Define:
		switch p.peekN(1).Kind {
		case token.Name:
			return p.defineName()
		case token.AtIdent:
			return p.selectorDef()
		default:
			p.pop()
			p.fail(StateDefineName)
		}

	case token.AtIdent:
		if p.peekN(1).Kind == token.Eq && p.peekN(2).Kind == token.AtIdent {
			stmt := p.selectorAssign()
			p.eol()
			return stmt
		}
		return p.assignment()

	case token.For:
		return p.forLoop()

	case token.While:
		p.pop()
		stmt := &ast.While{}
		p.tolerate(lineEnd, noneToEat, func() {
			stmt.Cond = p.conditions()
			p.eol()
		})
		stmt.Body = p.body(blockEnd, StateSectionBody)
		p.expect(token.End, StateSectionBody)
		stmt.Extent = p.span(first)
		p.eol()
		return stmt

	case token.If, token.Unless, token.As, token.At, token.Facing,
		token.Rotated, token.On, token.Align, token.In:
		return p.chain()

	case token.Remove:
		p.pop()
		stmt := &ast.Remove{Target: p.postfix()}
		stmt.Extent = p.span(first)
		p.eol()
		return stmt

	case token.Tell, token.Title, token.Subtitle, token.Actionbar:
		stmt := &ast.Message{Keyword: p.pop()}
		if !p.at(token.AtIdent) {
			p.fail(StateMessage)
		}
		stmt.Target = p.selector()
		stmt.Value = p.expr()
		stmt.Extent = p.span(first)
		p.eol()
		return stmt

	case token.Ident, token.Colon, token.Amp, token.Less:
		return p.assignment()
	}

	p.fail(state)
	return nil
}

// defineName parses define name id = "text".
func (p *Parser) defineName() *ast.DefineName {
	first := p.pop()
	p.pop() // name
	stmt := &ast.DefineName{Name: p.expect(token.Ident, StateDefineName)}
	p.expect(token.Eq, StateDefineName)
	stmt.Value = p.expect(token.String, StateDefineName)
	stmt.Extent = p.span(first)
	p.eol()
	return stmt
}

// assignment parses the statements that start with a variable: assignment,
// compound assignment, increment and decrement, and bare calls.
func (p *Parser) assignment() ast.Stmt {
	first := p.peek()
	target := p.postfix()

	var stmt ast.Stmt
	switch op := p.peek(); {
	case op.Kind.IsAssignment():
		p.pop()
		assign := &ast.Assign{Target: target, Op: op}
		assign.Value = p.assignValue()
		assign.Extent = p.span(first)
		stmt = assign

	case op.Kind == token.PlusPlus, op.Kind == token.MinusMinus:
		p.pop()
		stmt = &ast.IncDec{Extent: p.span(first), Target: target, Op: op}

	default:
		if _, isCall := target.(*ast.Call); !isCall {
			p.fail(StateAssignment)
		}
		stmt = &ast.ExprStmt{Extent: p.span(first), X: target}
	}

	p.eol()
	return stmt
}

// assignValue parses the right-hand side of an assignment.
func (p *Parser) assignValue() ast.Expr {
	switch p.peek().Kind {
	case token.Create:
		return p.create()
	case token.LBrace:
		return p.object()
	case token.LBracket:
		return p.array()
	default:
		return p.expr()
	}
}

// create parses create @name[count] or create {...}.
func (p *Parser) create() *ast.Create {
	first := p.pop()
	expr := &ast.Create{}
	switch {
	case p.at(token.LBrace):
		expr.Body = p.object()
	case p.at(token.AtIdent):
		expr.Entity = p.pop()
		if _, ok := p.accept(token.LBracket); ok {
			expr.Count = p.constExpr()
			p.expect(token.RBracket, StateConstExpression)
		}
	default:
		p.fail(StateAssignment)
	}
	expr.Extent = p.span(first)
	return expr
}

// forLoop parses for $i in from [to to [by step]] ... end.
func (p *Parser) forLoop() *ast.For {
	first := p.pop()
	stmt := &ast.For{}
	p.tolerate(lineEnd, noneToEat, func() {
		p.expect(token.Dollar, StateForLoop)
		stmt.Var = p.expect(token.Ident, StateForLoop)
		p.expect(token.In, StateForLoop)
		stmt.From = p.constExpr()
		if _, ok := p.accept(token.To); ok {
			stmt.To = p.constExpr()
			if _, ok := p.accept(token.By); ok {
				stmt.By = p.constExpr()
			}
		}
		p.eol()
	})

	stmt.Body = p.body(blockEnd, StateSectionBody)
	p.expect(token.End, StateSectionBody)
	stmt.Extent = p.span(first)
	p.eol()
	return stmt
}

// chain parses an execute chain: one or more execute items, followed by
// either do/then and a single statement, or a block with optional else
// branches.
//
// An error among the items skips to the end of the header; the body is
// still parsed.
func (p *Parser) chain() *ast.Chain {
	first := p.peek()
	stmt := &ast.Chain{}
	p.tolerate(headerStop, noneToEat, func() {
		stmt.Items = p.execItems(headerStop)
	})

	if _, ok := p.accept(token.Do); ok {
		stmt.Action = p.stmt(StateStatement)
	} else if _, ok := p.accept(token.Then); ok {
		stmt.Action = p.stmt(StateStatement)
	} else {
		p.eol()
		stmt.Body = p.body(chainEnd, StateExecuteBody)
		for p.at(token.Else) {
			stmt.Else = append(stmt.Else, p.elseBranch())
		}
		p.expect(token.End, StateExecuteBody)
		p.eol()
	}

	stmt.Extent = p.span(first)
	return stmt
}

// elseBranch parses else [items] followed by a block.
func (p *Parser) elseBranch() *ast.Else {
	first := p.pop()
	branch := &ast.Else{}
	if !p.at(token.Newline) {
		p.tolerate(lineEnd, noneToEat, func() {
			branch.Items = p.execItems(lineEnd)
		})
	}
	p.eol()
	branch.Body = p.body(chainEnd, StateExecuteBody)
	branch.Extent = p.span(first)
	return branch
}

// execItems parses execute items until a token in end.
func (p *Parser) execItems(end token.Set) []*ast.ExecItem {
	var items []*ast.ExecItem
	for !p.atSet(end) && !p.at(token.EOF) {
		if !p.atSet(itemStart) {
			if len(items) == 0 {
				p.fail(StateExecuteItem)
			}
			p.fail(StateExecuteBody)
		}
		items = append(items, p.execItem())
	}
	return items
}

// execItem parses a single execute item.
func (p *Parser) execItem() *ast.ExecItem {
	item := &ast.ExecItem{Keyword: p.pop()}
	switch item.Keyword.Kind {
	case token.If, token.Unless:
		item.Cond = p.conditions()

	case token.As:
		item.Selector = p.selector()
		if p.at(token.LParen) {
			p.pop()
			item.Alias = p.expect(token.AtIdent, StateExecuteItem)
			p.expect(token.RParen, StateExecuteItem)
		}

	case token.At, token.Facing:
		if !p.at(token.AtIdent) {
			item.Coords = p.coords()
			break
		}
		item.Selector = p.selector()
		if p.at(token.Eyes, token.Feet, token.Ident) {
			item.Anchor = p.pop()
			if item.Anchor.Kind == token.Ident {
				p.warn(ErrUnknownName{Token: item.Anchor, What: "anchor", Want: anchors})
			}
		}

	case token.Rotated:
		if p.at(token.AtIdent) {
			item.Selector = p.selector()
		} else {
			item.Coords = p.coords()
		}

	case token.On:
		item.Name = p.expect(token.Ident, StateExecuteItem)
		p.checkName(item.Name, "executee", executees)

	case token.Align:
		item.Name = p.expect(token.Ident, StateExecuteItem)
		p.checkName(item.Name, "axis", axes)

	case token.In:
		if !p.at(token.Overworld, token.TheEnd, token.TheNether, token.Ident, token.String) {
			p.fail(StateDimension)
		}
		item.Name = p.pop()
	}

	item.Extent = p.span(item.Keyword)
	return item
}

// checkName warns if tok is not one of want.
func (p *Parser) checkName(tok token.Token, what string, want []string) {
	for _, w := range want {
		if tok.Text == w {
			return
		}
	}
	p.warn(ErrUnknownName{Token: tok, What: what, Want: want})
}
