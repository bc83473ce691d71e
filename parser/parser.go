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
	"log/slog"
	"slices"

	"github.com/craftblock/cbls/ast"
	"github.com/craftblock/cbls/internal/logutil"
	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// Options configures a [Parser].
type Options struct {
	// The names of the file parameters a script may declare. Defaults to
	// just "scale".
	FileParameters []string

	// The file extensions, without a dot, that declare a document to be a
	// script or a library. Default to "cbscript" and "cblib".
	ScriptExtension, LibraryExtension string

	// Where to log recovery excursions. May be nil.
	Logger *slog.Logger

	// If set, every diagnostic records where in the parser it was raised.
	Tracing bool
}

func (o *Options) setDefaults() {
	if o.FileParameters == nil {
		o.FileParameters = []string{"scale"}
	}
	if o.ScriptExtension == "" {
		o.ScriptExtension = "cbscript"
	}
	if o.LibraryExtension == "" {
		o.LibraryExtension = "cblib"
	}
	o.Logger = logutil.OrDiscard(o.Logger)
}

// Parser is a recursive-descent parser for CraftBlock documents.
//
// A Parser is meant to be reused serially for successive revisions of one
// document; [Parser.Parse] resets it first. It must not be used from several
// goroutines at once.
type Parser struct {
	opts   Options
	lexer  *Lexer
	report report.Report
	log    *slog.Logger

	file *source.File

	// Tokens that have been lexed but not yet consumed.
	buf []token.Token
	// The last token consumed, and how many have been consumed since the
	// lexer was last rewound.
	prev     token.Token
	consumed int

	// The state of the most recent syntax error.
	failState State
	// One more than the value of consumed when recovery last stopped on a
	// token it left in place; zero if none.
	halted int

	result *Result
}

// bailout is the panic value used to unwind to the nearest rule that
// tolerates syntax errors.
type bailout struct{}

// New returns a new parser with the given options.
func New(opts Options) *Parser {
	opts.setDefaults()
	p := &Parser{
		opts:  opts,
		lexer: NewLexer(LexerOptions{}),
		log:   opts.Logger,
	}
	p.report.Tracing = opts.Tracing
	return p
}

// Reset discards all state from the previous parse: its diagnostics, the
// lexer's position and line counter, and any buffered tokens.
func (p *Parser) Reset() {
	p.report.Reset()
	p.lexer.Reset()
	p.buf = p.buf[:0]
	p.prev = token.Token{}
	p.consumed = 0
	p.halted = 0
	p.result = nil
}

// Parse parses file, which must not be modified while this runs.
//
// The extension of file's path declares which dialect the document should
// be. If it is neither the script nor the library extension, the document's
// dialect is not checked.
//
// Parse never fails; everything that goes wrong is recorded in the
// returned result's diagnostics.
func (p *Parser) Parse(file *source.File) *Result {
	p.Reset()
	p.file = file
	p.lexer.Input(file, &p.report)
	p.result = &Result{
		Description:    NoDescription,
		FileParameters: make(map[string]int),
	}

	p.result.AST = p.parseFile()
	p.checkDialect()

	result := p.result
	result.Diagnostics = slices.Clone(p.report.Diagnostics)
	p.log.Debug("parsed document",
		"path", file.Path(),
		"dialect", result.Dialect,
		"diagnostics", len(result.Diagnostics),
	)
	return result
}

// checkDialect compares the inferred dialect against the file extension.
func (p *Parser) checkDialect() {
	if p.file.IsBlank() {
		return
	}

	var want Dialect
	switch p.file.Ext() {
	case p.opts.ScriptExtension:
		want = Script
	case p.opts.LibraryExtension:
		want = Library
	default:
		return
	}

	if got := p.result.Dialect; got != want {
		p.report.Error(ErrDialectMismatch{Path: p.file.Path(), Want: want, Got: got})
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN returns the token n tokens past the next one.
func (p *Parser) peekN(n int) token.Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lexer.Next())
	}
	return p.buf[n]
}

// pop consumes and returns the next token. At the end of input it keeps
// returning [token.EOF] without consuming anything.
func (p *Parser) pop() token.Token {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return tok
	}
	p.buf = p.buf[1:]
	p.prev = tok
	p.consumed++
	return tok
}

// at returns whether the next token is any of kinds.
func (p *Parser) at(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atSet returns whether the next token is in set.
func (p *Parser) atSet(set token.Set) bool {
	return set.Has(p.peek().Kind)
}

// accept consumes the next token if it is of the given kind.
func (p *Parser) accept(kind token.Kind) (token.Token, bool) {
	if p.at(kind) {
		return p.pop(), true
	}
	return token.Token{}, false
}

// expect consumes a token of the given kind, or fails in state.
func (p *Parser) expect(kind token.Kind, state State) token.Token {
	if !p.at(kind) {
		p.fail(state)
	}
	return p.pop()
}

// fail records a syntax error at the next token, then unwinds to the
// nearest tolerant rule.
func (p *Parser) fail(state State) {
	p.failState = state
	p.report.Error(ErrUnexpected{
		Token: p.peek(),
		State: state,
		Want:  state.Expected(),
	})
	panic(bailout{})
}

// warn records a warning without interrupting the parse.
func (p *Parser) warn(err report.Diagnose) {
	p.report.Warn(err)
}

// skipNewlines consumes any run of newlines.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.pop()
	}
}

// eol consumes the end of a line: one or more newlines, or the end of the
// input.
func (p *Parser) eol() {
	switch p.peek().Kind {
	case token.EOF:
	case token.Newline:
		p.skipNewlines()
	default:
		if p.halted == p.consumed+1 {
			// Already reported by the rule that stopped here.
			return
		}
		p.fail(StateEndOfLine)
	}
}

// span returns the span from the start of first through the last token
// consumed.
func (p *Parser) span(first token.Token) ast.Extent {
	end := p.prev.End()
	if end < first.Offset {
		end = first.Offset
	}
	return p.file.Span(first.Offset, end)
}

// tolerate runs rule, absorbing any syntax error it raises.
//
// On error, tokens are skipped until one in stop is found; if that token is
// also in eat, it is consumed. If rule failed without consuming anything and
// the offending token is not in stop, that token is skipped. A token in stop
// is never skipped, so recovery only makes progress when eat covers stop.
//
// A stop token left in place is remembered, so that a statement ending there
// does not report it a second time.
//
// Returns whether rule completed without error.
func (p *Parser) tolerate(stop, eat token.Set, rule func()) (ok bool) {
	start := p.consumed
	defer func() {
		if ok {
			return
		}

		r := recover()
		if _, isBailout := r.(bailout); !isBailout {
			panic(r)
		}

		failedAt := p.peek()
		skipped := 0
		if p.consumed == start && !p.atSet(stop) && !p.at(token.EOF) {
			p.pop()
			skipped++
		}
		for !p.atSet(stop) && !p.at(token.EOF) {
			p.pop()
			skipped++
		}
		if p.atSet(eat) {
			p.pop()
		} else if !p.at(token.EOF) {
			p.halted = p.consumed + 1
		}

		logutil.Trace(p.log, "recovered from syntax error",
			"state", p.failState,
			"line", failedAt.Line,
			"column", failedAt.Column,
			"skipped", skipped,
			"resume", p.peek().Kind,
		)
	}()

	rule()
	return true
}

// label attaches a label to the diagnostic most recently recorded, provided
// one has been recorded since the report had length since.
func (p *Parser) label(since int, text string) {
	if p.report.Len() > since {
		p.report.Last().With(report.Label("%s", text))
	}
}

// rewind restarts the lexer from the beginning of the document and replays
// it until as many tokens have been consumed as before.
//
// Lexical errors in the replayed text are not reported a second time.
func (p *Parser) rewind() {
	replay := p.consumed
	quiet := p.peek().Offset

	p.lexer.Reset()
	p.lexer.quietUntil = quiet
	p.buf = p.buf[:0]
	p.prev = token.Token{}
	p.consumed = 0
	p.halted = 0

	for range replay {
		p.pop()
	}
}
