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

// importDecl parses import a.b.c.
func (p *Parser) importDecl() *ast.Import {
	first := p.pop()
	decl := &ast.Import{}
	decl.Path = append(decl.Path, p.expect(token.Ident, StateImportPath))
	for p.at(token.Dot) {
		p.pop()
		decl.Path = append(decl.Path, p.expect(token.Ident, StateImportPath))
	}
	decl.Extent = p.span(first)
	p.eol()
	return decl
}

// constAssign parses $name = value. The caller consumes the end of line.
func (p *Parser) constAssign() *ast.ConstAssign {
	first := p.pop()
	decl := &ast.ConstAssign{Name: p.expect(token.Ident, StateConstExpression)}
	p.expect(token.Eq, StateAssignment)
	decl.Value = p.constExpr()
	decl.Extent = p.span(first)
	return decl
}

// resource parses a JSON resource such as advancement name {...}.
func (p *Parser) resource() *ast.Resource {
	decl := &ast.Resource{Keyword: p.pop()}
	decl.Name = p.expect(token.Ident, StateResource)
	if !p.at(token.LBrace) {
		p.fail(StateResource)
	}
	decl.Body = p.object()
	decl.Extent = p.span(decl.Keyword)
	p.eol()
	return decl
}

// arrayDecl parses array name[size] or array name[from to to].
func (p *Parser) arrayDecl() *ast.ArrayDecl {
	first := p.pop()
	decl := &ast.ArrayDecl{Name: p.expect(token.Ident, StateArrayDecl)}
	p.expect(token.LBracket, StateArrayDecl)
	decl.From = p.constExpr()
	if _, ok := p.accept(token.To); ok {
		decl.To = p.constExpr()
	}
	p.expect(token.RBracket, StateArrayDecl)
	decl.Extent = p.span(first)
	p.eol()
	return decl
}

// selectorAssign parses @name = @selector. The caller consumes the end of
// line.
func (p *Parser) selectorAssign() *ast.SelectorAssign {
	decl := &ast.SelectorAssign{Name: p.pop()}
	p.expect(token.Eq, StateSelectorDef)
	decl.Value = p.selector()
	decl.Extent = p.span(decl.Name)
	return decl
}

// selectorDef parses a selector definition block:
//
//	define @name = @selector
//	    field = data.path type scale
//	    <vec> : data.path type
//	    create {...}
//	end
//
// Errors in the header skip to the closing end.
func (p *Parser) selectorDef() *ast.SelectorDef {
	first := p.pop()
	decl := &ast.SelectorDef{}

	p.tolerate(blockEnd, blockEnd, func() {
		decl.Name = p.expect(token.AtIdent, StateSelectorDef)
		if !p.at(token.Eq, token.Colon) {
			p.fail(StateSelectorDef)
		}
		decl.Op = p.pop()

		if decl.Op.Kind == token.Colon && !p.at(token.AtIdent) {
			decl.UUID = p.uuid()
			p.expect(token.LParen, StateSelectorDef)
			decl.Base = p.selector()
			p.expect(token.RParen, StateSelectorDef)
		} else {
			decl.Base = p.selector()
		}
		p.eol()

		for !p.at(token.End, token.EOF) {
			p.tolerate(lineEnd.With(token.End), lineEnd, func() {
				if item := p.selectorItem(); item != nil {
					decl.Body = append(decl.Body, *item)
				}
			})
		}
		p.expect(token.End, StateSelectorItem)
	})

	decl.Extent = p.span(first)
	p.eol()
	return decl
}

// uuid parses a UUID written as five dash-separated integers.
func (p *Parser) uuid() ast.Expr {
	first := p.peek()
	text := p.expect(token.Decimal, StateSelectorDef).Text
	for range 4 {
		text += p.expect(token.Minus, StateSelectorDef).Text
		text += p.expect(token.Decimal, StateSelectorDef).Text
	}
	return &ast.Literal{Extent: p.span(first), Token: first, Value: text}
}

// selectorItem parses one line of a selector definition, or nothing for a
// blank line.
func (p *Parser) selectorItem() *ast.SelectorItem {
	if p.at(token.Newline) {
		p.skipNewlines()
		return nil
	}

	first := p.peek()
	item := &ast.SelectorItem{}
	switch first.Kind {
	case token.Create:
		p.pop()
		if !p.at(token.LBrace) {
			p.fail(StateSelectorItem)
		}
		item.Create = p.object()

	case token.Ident, token.Less:
		if _, ok := p.accept(token.Less); ok {
			item.IsVector = true
			item.Name = p.expect(token.Ident, StateSelectorItem)
			p.expect(token.Greater, StateSelectorItem)
		} else {
			item.Name = p.pop()
		}

		if !p.at(token.Eq, token.Colon) {
			p.fail(StateSelectorItem)
		}
		p.pop()

		if p.at(token.AtIdent) {
			item.Selector = p.selector()
			break
		}
		item.Path = p.dataPath()
		item.DataType = p.dataType()
		if !p.at(token.Newline, token.EOF) {
			item.Scale = p.constExpr()
		}

	default:
		p.fail(StateSelectorItem)
	}

	item.Extent = p.span(first)
	p.eol()
	return item
}

// section parses reset, clock, function, and macro sections. Errors in the
// header skip to the closing end.
func (p *Parser) section() *ast.Section {
	sec := &ast.Section{Keyword: p.pop()}

	p.tolerate(blockEnd, blockEnd, func() {
		switch sec.Keyword.Kind {
		case token.Clock:
			sec.Name = p.expect(token.Ident, StateSectionHeader)
		case token.Function:
			sec.Name = p.expect(token.Ident, StateSectionHeader)
			sec.Params = p.params()
		case token.Macro:
			p.expect(token.Dollar, StateSectionHeader)
			sec.Name = p.expect(token.Ident, StateSectionHeader)
			sec.Params = p.params()
		}
		p.eol()

		sec.Body = p.body(blockEnd, StateSectionBody)
		p.expect(token.End, StateSectionBody)
	})

	sec.Extent = p.span(sec.Keyword)
	p.eol()
	return sec
}

// params parses a parenthesized parameter list.
func (p *Parser) params() []ast.Param {
	p.expect(token.LParen, StateSectionHeader)

	var params []ast.Param
	for !p.at(token.RParen) {
		if len(params) > 0 {
			p.expect(token.Comma, StateParameters)
		}

		first := p.peek()
		var param ast.Param
		if dollar, ok := p.accept(token.Dollar); ok {
			param.Dollar = dollar
		}
		param.Name = p.expect(token.Ident, StateParameters)
		param.Extent = p.span(first)
		params = append(params, param)
	}

	p.pop()
	return params
}
