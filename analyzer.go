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

package cbls

import (
	"errors"
	"log/slog"

	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/parser"
	"github.com/craftblock/cbls/semantic"
	"github.com/craftblock/cbls/source"
	"github.com/craftblock/cbls/token"
)

// ErrNoFilename is returned when asked to analyze a document without a path,
// whose dialect therefore cannot be checked.
var ErrNoFilename = errors.New("unable to determine filename")

// Analysis is everything learned from one revision of a document.
type Analysis struct {
	Path string

	// The raw parse, including the syntax tree.
	Result *parser.Result

	// Plain messages that are not diagnostics, such as unknown file
	// parameters.
	Messages    []string
	Diagnostics []Diagnostic
	Symbols     []Symbol

	// The classified tokens, and their encoding.
	Highlights []semantic.Token
	Encoded    []uint32
}

// HasErrors returns whether any diagnostic is an error.
func (a *Analysis) HasErrors() bool {
	for _, d := range a.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Analyzer runs the lexer, the parser, and the token classifier over a
// document.
//
// An Analyzer must not be used from several goroutines at once. Use one per
// document, or one per worker.
type Analyzer struct {
	cfg   config.Config
	units source.Unit
	log   *slog.Logger

	parser *parser.Parser
	lexer  *parser.Lexer
}

// NewAnalyzer returns an analyzer for the given configuration. It logs to
// [slog.Default].
//
// An invalid column unit in cfg falls back to UTF-16; use
// [config.Config.Validate] to catch it beforehand.
func NewAnalyzer(cfg config.Config) *Analyzer {
	units, err := cfg.Units()
	if err != nil {
		units = source.UTF16
	}

	log := slog.Default()
	return &Analyzer{
		cfg:   cfg,
		units: units,
		log:   log,
		parser: parser.New(parser.Options{
			FileParameters:   cfg.FileParameters,
			ScriptExtension:  cfg.ScriptExtension,
			LibraryExtension: cfg.LibraryExtension,
			Logger:           log,
			Tracing:          cfg.Debug,
		}),
		lexer: parser.NewLexer(parser.LexerOptions{KeepComments: cfg.ShowComments}),
	}
}

// Analyze analyzes text as the contents of path. The extension of path
// declares the document's dialect.
func (a *Analyzer) Analyze(path, text string) (*Analysis, error) {
	if path == "" {
		return nil, ErrNoFilename
	}
	return a.AnalyzeFile(source.NewFile(path, text)), nil
}

// AnalyzeFile is like [Analyzer.Analyze], but for an already loaded file.
func (a *Analyzer) AnalyzeFile(file *source.File) *Analysis {
	result := a.parser.Parse(file)

	a.lexer.Input(file, nil)
	var tokens []token.Token
	for tok := range a.lexer.All() {
		tokens = append(tokens, a.measure(file, tok))
	}
	highlights := semantic.Classify(tokens)

	analysis := &Analysis{
		Path:       file.Path(),
		Result:     result,
		Messages:   result.Messages,
		Symbols:    symbols(result.AST),
		Highlights: highlights,
		Encoded:    semantic.Encode(highlights),
	}
	for i := range result.Diagnostics {
		analysis.Diagnostics = append(analysis.Diagnostics, a.convert(&result.Diagnostics[i]))
	}

	a.log.Debug("analyzed document",
		"path", file.Path(),
		"dialect", result.Dialect,
		"diagnostics", len(analysis.Diagnostics),
		"highlights", len(highlights),
	)
	return analysis
}

// measure re-measures a token's column and length in the configured units.
func (a *Analyzer) measure(file *source.File, tok token.Token) token.Token {
	if a.units == source.UTF16 {
		return tok
	}
	tok.Column = file.Location(tok.Offset, a.units).Column
	tok.Length = a.units.Measure(tok.Text)
	return tok
}
