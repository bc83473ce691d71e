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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/semantic"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errs bytes.Buffer
	cmd := newCLI(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	err = cmd.Execute()
	return out.String(), errs.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}
	return dir
}

func TestLegend(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "legend")
	require.NoError(t, err)

	var legend semantic.Legend
	require.NoError(t, json.Unmarshal([]byte(out), &legend))
	assert.Equal(t, semantic.DefaultLegend(), legend)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "dir 'a'\n", "tokens", "-", "--ext", "cbscript")
	require.NoError(t, err)

	var got struct{ Data []uint32 }
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []uint32{
		0, 0, 3, uint32(semantic.Keyword), 0,
		0, 4, 3, uint32(semantic.String), 0,
	}, got.Data)

	out, _, err = run(t, "", "tokens", "-", "--ext", ".cblib")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, out)
}

func TestStdinNeedsExt(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"tokens", "-"},
		{"lex", "-"},
		{"check", "-"},
	} {
		_, _, err := run(t, "dir 'a'\n", args...)
		require.ErrorIs(t, err, cbls.ErrNoFilename, args)
		assert.Contains(t, err.Error(), "unable to determine filename")
	}
}

func TestLex(t *testing.T) {
	t.Parallel()

	out, stderr, err := run(t, "dir 'a' # out\n?", "lex", "-", "--ext", "cbscript")
	require.NoError(t, err)
	assert.Equal(t, "1:1\tDir\t3\t\"dir\"\n"+
		"1:5\tString\t3\t\"'a'\"\n"+
		"1:9\tComment\t5\t\"# out\"\n"+
		"1:14\tNewline\t1\t\"\\n\"\n",
		out)
	assert.Contains(t, stderr, "stdin.cbscript:2:1: error: unrecognized character '?'")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"good.cbscript":      "dir 'a'\n",
		"bad.cbscript":       "dir 5\n",
		"lib/util.cblib":     "$a = 1\n",
		"lib/wrong.cblib":    "dir 'a'\n",
		"notes/readme.txt":   "dir 5\n",
		"lib/nested/x.cblib": "function f()\nend\n",
	})

	out, _, err := run(t, "", "check", "--format", "json", filepath.Join(dir, "**", "*.{cbscript,cblib}"))
	require.ErrorIs(t, err, errFailed)

	var results []struct {
		Path        string
		Diagnostics []struct {
			Code     string
			Severity string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))

	var paths []string
	codes := make(map[string][]string)
	for _, r := range results {
		rel, err := filepath.Rel(dir, filepath.FromSlash(r.Path))
		require.NoError(t, err)
		rel = filepath.ToSlash(rel)
		paths = append(paths, rel)
		for _, d := range r.Diagnostics {
			assert.Equal(t, "error", d.Severity)
			codes[rel] = append(codes[rel], d.Code)
		}
	}
	assert.Equal(t, []string{
		"bad.cbscript",
		"good.cbscript",
		"lib/nested/x.cblib",
		"lib/util.cblib",
		"lib/wrong.cblib",
	}, paths)
	assert.Equal(t, map[string][]string{
		"bad.cbscript":    {"syntax-error"},
		"lib/wrong.cblib": {"dialect-mismatch"},
	}, codes)
}

func TestCheckText(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"good.cbscript": "dir 'a'\n",
		"bad.cbscript":  "dir 5\n",
	})

	out, _, err := run(t, "", "check", filepath.Join(dir, "good.cbscript"))
	require.NoError(t, err)
	assert.Empty(t, out)

	bad := filepath.Join(dir, "bad.cbscript")
	out, _, err = run(t, "", "check", bad)
	require.ErrorIs(t, err, errFailed)
	assert.True(t, strings.HasPrefix(out, filepath.ToSlash(bad)+":1:5: error: syntax error at line 1 column 5"), out)
	assert.True(t, strings.HasSuffix(out, " (Expected a string for dir)\n"), out)
}

func TestCheckStdin(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"good.cbscript": "dir 'a'\n"})
	good := filepath.Join(dir, "good.cbscript")

	out, _, err := run(t, "dir 5\n", "check", "--format", "json", "--ext", "cbscript", good, "-")
	require.ErrorIs(t, err, errFailed)

	var results []struct {
		Path        string
		Diagnostics []struct{ Code string }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "-", results[0].Path)
	require.Len(t, results[0].Diagnostics, 1)
	assert.Equal(t, "syntax-error", results[0].Diagnostics[0].Code)
	assert.Equal(t, filepath.ToSlash(good), results[1].Path)
	assert.Empty(t, results[1].Diagnostics)
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := run(t, "", "check", filepath.Join(dir, "missing.cbscript"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "missing.cbscript")

	_, _, err = run(t, "", "check", filepath.Join(dir, "*.cbscript"))
	require.ErrorContains(t, err, "no documents match")

	_, _, err = run(t, "", "check", "--format", "xml", filepath.Join(dir, "x.cbscript"))
	require.ErrorContains(t, err, `unknown format "xml"`)
}
