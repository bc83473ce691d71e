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

// Package corpora runs tests over a directory of input files whose expected
// outputs are stored next to them.
//
// For an input named "foo.cbscript" and an output with the extension "diag",
// the expected output lives in "foo.cbscript.diag". A missing output file is
// expected to be empty. Setting the corpus's refresh variable to a glob
// rewrites the outputs of every matching test instead of checking them.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/craftblock/cbls/internal"
	"github.com/craftblock/cbls/source"
)

// DefaultRefresh is the variable consulted when [Corpus.Refresh] is empty.
const DefaultRefresh = "CBLS_REFRESH"

// Corpus is a golden test corpus.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// A doublestar glob, relative to Root, selecting the input files, e.g.
	// "**/*.{cbscript,cblib}".
	Pattern string

	// The environment variable holding the refresh glob.
	Refresh string

	Outputs []Output

	// Test runs one case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of every test in a [Corpus].
type Output struct {
	// Appended, after a dot, to the input's name to find the golden file.
	Extension string

	// May be nil, in which case outputs are compared byte-for-byte.
	Compare Compare
}

// Compare compares two outputs, returning a description of the difference,
// or "" if they match.
type Compare func(got, want string) string

// Run runs every test in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	root := filepath.Join(internal.CallerDir(1), c.Root)
	inputs := &source.FS{FS: os.DirFS(root)}
	tests, err := doublestar.Glob(inputs.FS, c.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: listing %q in %q: %v", c.Pattern, root, err)
	}
	slices.Sort(tests)
	if len(tests) == 0 {
		t.Fatalf("corpora: no files match %q in %q", c.Pattern, root)
	}

	env := c.Refresh
	if env == "" {
		env = DefaultRefresh
	}
	refresh := os.Getenv(env)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", env, refresh)
		}
		t.Logf("corpora: refreshing test data because %s=%s", env, refresh)
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			file, err := inputs.Open(name)
			if err != nil {
				t.Fatalf("corpora: loading input: %v", err)
			}

			results := c.Test(t, name, file.Text())
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				golden := filepath.Join(root, filepath.FromSlash(name)) + "." + output.Extension
				if rewrite {
					if err := write(golden, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: loading output: %v", err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %s:\n%s", filepath.Base(golden), diff)
				}
			}
		})
	}
}

// write replaces a golden file; empty outputs are stored as no file at all.
func write(path, data string) error {
	if data == "" {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}

// Diff is the default [Compare]. It returns a colorized unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = fmt.Sprint("\033[1;92m", line, "\033[0m")
		case strings.HasPrefix(line, "-"):
			lines[i] = fmt.Sprint("\033[1;91m", line, "\033[0m")
		}
	}
	return strings.Join(lines, "\n")
}
