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

// Package parser implements the CraftBlock lexer and parser.
//
// [Lexer] turns source text into [token.Token]s, and [Parser] turns them
// into an [ast.File] plus a [report.Report] of everything that went wrong
// along the way. Neither ever gives up on a document: unrecognized
// characters are skipped, and syntax errors are absorbed by the nearest
// construct that can tolerate them, so that an editor always has tokens to
// highlight and diagnostics to show.
//
// A syntax error before the first top-level construct is assumed to be a
// misplaced dir declaration. In that case the parser discards tokens until
// it finds one, then restarts the lexer and replays it up to that point.
package parser

//go:generate go run github.com/craftblock/cbls/internal/enum dialect.yaml
//go:generate go run github.com/craftblock/cbls/internal/enum state.yaml
