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

package cbls_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/internal/corpora"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:    "testdata/corpus",
		Pattern: "**/*.{cbscript,cblib}",
		Outputs: []corpora.Output{
			{Extension: "diag"},
			{Extension: "symbols"},
		},
		Test: func(t *testing.T, path, text string) []string {
			analysis, err := cbls.NewAnalyzer(config.Default()).Analyze(path, text)
			require.NoError(t, err)

			var diags, symbols strings.Builder
			for _, d := range analysis.Diagnostics {
				fmt.Fprintf(&diags, "%d:%d %v %s\n", d.StartLine+1, d.StartColumn+1, d.Severity, d.Code)
			}
			for _, s := range analysis.Symbols {
				fmt.Fprintf(&symbols, "%d:%d %s %s\n", s.Line, s.Column, s.Kind, s.Name)
			}
			return []string{diags.String(), symbols.String()}
		},
	}
	corpus.Run(t)
}
