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
	"fmt"
	"slices"
	"strconv"

	"github.com/craftblock/cbls/ast"
	"github.com/craftblock/cbls/token"
)

var (
	lineEnd   = token.NewSet(token.Newline)
	blockEnd  = token.NewSet(token.End)
	noneToEat = token.Set{}
)

// parseFile parses an entire document.
//
// The first token decides the dialect: dir makes a script, and the start of
// any top-level declaration (or nothing at all) makes a library. Anything
// else triggers initial-state recovery.
func (p *Parser) parseFile() *ast.File {
	file := &ast.File{}
	defer func() {
		file.Extent = p.file.Span(0, len(p.file.Text()))
	}()

	// Nothing below is allowed to unwind past here, but a stray bailout must
	// not take down the caller.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()

	p.skipNewlines()
	switch first := p.peek(); {
	case first.Kind == token.Dir:
	case first.Kind == token.EOF, declStart.Has(first.Kind):
		p.decls(file)
		return file
	default:
		if !p.recoverInitial() {
			return file
		}
	}

	p.script(file)
	return file
}

// recoverInitial handles a syntax error before the first top-level construct,
// which is taken to mean that the dir declaration is missing or misplaced.
//
// It records the error, then discards tokens until it finds dir. If there is
// none, it gives up and returns false. Otherwise, the lexer is restarted and
// replayed up to the dir, ready for the script to be parsed.
func (p *Parser) recoverInitial() bool {
	bad := p.peek()
	p.failState = StateStart
	p.report.Error(ErrUnexpected{Token: bad, State: StateStart, Want: StateStart.Expected()})

	for !p.at(token.Dir) {
		if p.at(token.EOF) {
			p.log.Debug("no dir declaration to recover to", "path", p.file.Path())
			return false
		}
		p.pop()
	}

	p.log.Debug("replaying document up to dir declaration",
		"path", p.file.Path(),
		"skipped", p.consumed,
		"line", p.peek().Line,
	)
	p.rewind()
	return true
}

// script parses a script, starting at its dir declaration.
func (p *Parser) script(file *ast.File) {
	p.result.Dialect = Script
	file.Dir = p.dir()
	if p.at(token.Desc) {
		file.Desc = p.desc()
	}
	for p.at(token.Ident) {
		file.Params = append(file.Params, p.fileParam())
	}
	p.decls(file)
}

func (p *Parser) dir() *ast.DirDecl {
	decl := &ast.DirDecl{Keyword: p.pop()}
	since := p.report.Len()
	p.tolerate(lineEnd, lineEnd, func() {
		decl.Value = p.expect(token.String, StateDirValue)
		p.eol()
	})
	decl.Extent = p.span(decl.Keyword)

	if decl.Value.IsZero() {
		p.label(since, "Expected a string for dir")
		p.result.OutputDirectory = NoOutputDirectory
	} else {
		p.result.OutputDirectory = decl.Value.Value()
	}
	return decl
}

func (p *Parser) desc() *ast.DescDecl {
	decl := &ast.DescDecl{Keyword: p.pop()}
	since := p.report.Len()
	p.tolerate(lineEnd, lineEnd, func() {
		decl.Value = p.expect(token.String, StateDescValue)
		p.eol()
	})
	decl.Extent = p.span(decl.Keyword)

	if decl.Value.IsZero() {
		p.label(since, "Expected a string for desc")
	} else {
		p.result.Description = decl.Value.Value()
	}
	return decl
}

// fileParam parses a named integer parameter such as scale 1000.
func (p *Parser) fileParam() *ast.FileParam {
	param := &ast.FileParam{Name: p.pop()}
	name := param.Name.Text
	if !slices.Contains(p.opts.FileParameters, name) {
		msg := fmt.Sprintf("unknown file parameter %q at line %d", name, param.Name.Line)
		p.result.Messages = append(p.result.Messages, msg)
		p.log.Warn("unknown file parameter", "path", p.file.Path(), "name", name, "line", param.Name.Line)
	}

	value := DefaultFileParameter
	since := p.report.Len()
	ok := p.tolerate(lineEnd, lineEnd, func() {
		lit := p.integer(StateFileParamValue)
		param.Value = lit.Token
		if v, err := strconv.Atoi(lit.Value); err == nil {
			value = v
		}
		p.eol()
	})
	if !ok && param.Value.IsZero() {
		p.label(since, "Expected an integer for file parameter")
	}

	param.Extent = p.span(param.Name)
	p.result.FileParameters[name] = value
	return param
}

// decls parses top-level declarations until the end of input.
func (p *Parser) decls(file *ast.File) {
	for {
		p.skipNewlines()
		if p.at(token.EOF) {
			return
		}

		first := p.peek()
		var decl ast.Decl
		if !p.tolerate(lineEnd, lineEnd, func() { decl = p.decl() }) {
			decl = &ast.Bad{Extent: p.span(first)}
		}
		file.Decls = append(file.Decls, decl)
	}
}

// decl parses a single top-level declaration.
func (p *Parser) decl() ast.Decl {
	switch p.peek().Kind {
	case token.Import:
		return p.importDecl()
	case token.Dollar:
		decl := p.constAssign()
		p.eol()
		return decl
	case token.Advancement, token.Predicate, token.ItemModifier, token.LootTable:
		return p.resource()
	case token.Array:
		return p.arrayDecl()
	case token.Define:
		return p.selectorDef()
	case token.AtIdent:
		decl := p.selectorAssign()
		p.eol()
		return decl
	case token.Reset, token.Clock, token.Function, token.Macro:
		return p.section()
	default:
		p.fail(StateTopLevel)
		return nil
	}
}
