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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
)

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "dir 5\n")

	var r report.Report
	r.Error(errBadDir{file.Span(4, 5)}).With(report.Label("Expected a string for dir"))
	r.Warnf("unknown parameter").With(report.InFile("test.cbscript"))

	text, errs, warns := report.Renderer{Compact: true}.RenderString(&r)
	assert.Equal(t,
		"test.cbscript:1:5: error: unexpected number (Expected a string for dir)\n"+
			"test.cbscript: warning: unknown parameter\n",
		text)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warns)

	_, errs, warns = report.Renderer{Compact: true, WarningsAreErrors: true}.RenderString(&r)
	assert.Equal(t, 2, errs)
	assert.Zero(t, warns)
}

func TestRenderSnippet(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "dir 5\n")

	var r report.Report
	r.Error(errBadDir{file.Span(4, 5)}).With(report.Label("Expected a string for dir"))

	text, _, _ := report.Renderer{}.RenderString(&r)
	assert.Equal(t, `error: unexpected number
  --> test.cbscript:1:5
  |
1 | dir 5
  |     ^ expected a string
  = label: Expected a string for dir

encountered 1 error
`, text)
}

func TestRenderTabs(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "\tx = 世界\n")

	var r report.Report
	r.Warnf("wide").With(report.Snippet(file.Span(5, 11)))

	text := report.Renderer{}.Diagnostic(&r.Diagnostics[0])
	assert.Equal(t, `warning: wide
  --> test.cbscript:1:6
  |
1 |     x = 世界
  |         ^^^^`, text)
}

func TestRenderRemarks(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Remark(&report.ErrInFile{Err: assert.AnError, Path: "a"})

	text, errs, warns := report.Renderer{Compact: true}.RenderString(&r)
	assert.Empty(t, text)
	assert.Zero(t, errs+warns)

	text, _, _ = report.Renderer{Compact: true, ShowRemarks: true}.RenderString(&r)
	assert.Equal(t, "a: remark: "+assert.AnError.Error()+"\n", text)
}

func TestRenderColor(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Warnf("unknown parameter").With(report.InFile("a.cbscript"))

	text, _, _ := report.Renderer{Compact: true, Colorize: true}.RenderString(&r)
	assert.Equal(t, "a.cbscript: \033[1;33mwarning: unknown parameter\033[0m\n", text)

	text, _, _ = report.Renderer{Compact: true, Colorize: true, WarningsAreErrors: true}.RenderString(&r)
	assert.Equal(t, "a.cbscript: \033[1;31merror: unknown parameter\033[0m\n", text)

	text, _, _ = report.Renderer{Compact: true}.RenderString(&r)
	assert.Equal(t, "a.cbscript: warning: unknown parameter\n", text)
}
