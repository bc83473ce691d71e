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

// Package cbls is the front end of the CraftBlock language tools.
//
// CraftBlock is a scripting language that compiles to game-command
// datapacks. This module lexes and parses CraftBlock documents, recovering
// from syntax errors as it goes, and produces what an editor needs to
// present them: diagnostics, and a semantic highlighting stream.
//
// The work happens in several packages:
//
//   - [github.com/craftblock/cbls/parser] lexes and parses a document into
//     an [github.com/craftblock/cbls/ast.File], recording diagnostics in a
//     [github.com/craftblock/cbls/report.Report].
//   - [github.com/craftblock/cbls/semantic] classifies tokens and encodes
//     them for highlighting.
//   - [github.com/craftblock/cbls/workspace] caches the latest analysis of
//     every open document.
//
// This package ties them together. An [Analyzer] runs every phase over one
// document and returns an [Analysis], with diagnostics converted to the
// 0-based positions the Language Server Protocol uses. An Analyzer owns a
// lexer and a parser, and is meant to be reused for successive revisions of
// the same document:
//
//	a := cbls.NewAnalyzer(config.Default())
//	analysis, err := a.Analyze("main.cbscript", text)
package cbls
