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
	"github.com/craftblock/cbls/report"
)

// Defaults used when a leading declaration is missing or malformed.
const (
	NoDescription        = "No Description"
	NoOutputDirectory    = "No output directory"
	DefaultFileParameter = 1000
)

// Result is everything [Parser.Parse] learns about a document.
type Result struct {
	Dialect Dialect

	// The value of the dir declaration. Empty for a library.
	OutputDirectory string

	// The value of the desc declaration, or [NoDescription].
	Description string

	// The file parameters declared after dir and desc, by name.
	FileParameters map[string]int

	// Plain, human-readable messages that do not warrant a diagnostic, such
	// as unknown file parameter names.
	Messages []string

	// The diagnostics recorded while lexing and parsing, in the order they
	// were found.
	Diagnostics []report.Diagnostic

	AST *ast.File
}

// Report wraps this result's diagnostics in a [report.Report].
func (r *Result) Report() *report.Report {
	return &report.Report{Diagnostics: r.Diagnostics}
}

// HasErrors returns whether any diagnostic is an error.
func (r *Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Level == report.Error {
			return true
		}
	}
	return false
}
