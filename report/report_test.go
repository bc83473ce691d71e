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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/source"
)

type errBadDir struct {
	span source.Span
}

func (e errBadDir) Error() string { return "unexpected number" }

func (e errBadDir) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("bad-dir"),
		report.Snippet(e.span, "expected a string"),
	)
}

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.cbscript", "dir 5\n")

	var r report.Report
	assert.Nil(t, r.Last())

	d := r.Error(errBadDir{file.Span(4, 5)})
	assert.Equal(t, report.Error, d.Level)
	assert.Equal(t, "unexpected number", d.Message())
	assert.True(t, d.Is("bad-dir"))
	assert.Equal(t, file.Span(4, 5), d.Primary())
	assert.Equal(t, "test.cbscript", d.InFile())

	r.Last().With(report.Label("Expected a string for dir"))
	assert.Equal(t, "Expected a string for dir", r.Diagnostics[0].Label())

	r.Warnf("unknown parameter %q", "speed").With(report.InFile("test.cbscript"))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.Count(report.Error))
	assert.Equal(t, 1, r.Count(report.Warning))
	assert.Equal(t, "unknown parameter \"speed\"", r.Last().Message())
	assert.True(t, r.Last().Primary().IsZero())
	assert.Equal(t, "test.cbscript", r.Last().InFile())

	r.Reset()
	assert.Zero(t, r.Len())
	assert.Nil(t, r.Last())
}

func TestReportTracing(t *testing.T) {
	t.Parallel()

	r := report.Report{Tracing: true}
	d := r.Errorf("boom")
	require.Len(t, d.Debug(), 1)
	assert.Contains(t, d.Debug()[0], "report_test.go")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var r report.Report
	d := r.Errorf("x").With(
		nil,
		report.Snippet(source.Span{}),
		report.Note("a note"),
		report.Help("some help"),
	)
	assert.Empty(t, d.Annotations())
	assert.Equal(t, []string{"a note"}, d.Notes())
	assert.Equal(t, []string{"some help"}, d.Help())

	assert.Panics(t, func() {
		d.With(report.Message("one"), report.Message("two"))
	})
}

func TestAsError(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Error(&report.ErrInFile{Err: errors.New("file too big"), Path: "big.cbscript"})

	err := error(&report.AsError{Report: r})
	assert.Equal(t, "big.cbscript: error: file too big\n", err.Error())
}
