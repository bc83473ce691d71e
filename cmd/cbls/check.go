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
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/report"
)

// defaultPattern selects every document under the working directory.
const defaultPattern = "**/*.{cbscript,cblib}"

// checked is the outcome of checking one document.
type checked struct {
	Path        string            `json:"path"`
	Messages    []string          `json:"messages,omitempty"`
	Diagnostics []cbls.Diagnostic `json:"diagnostics"`

	analysis *cbls.Analysis
}

func (a *app) checkCommand() *cobra.Command {
	var (
		format   string
		snippets bool
	)
	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Report diagnostics for documents",
		Long: `Check analyzes every document matching the given doublestar patterns
(default "` + defaultPattern + `") and prints their diagnostics in path order.
A pattern of "-" reads one document from stdin; see --ext.

Exits with a non-zero status if any document has an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q; expected \"text\" or \"json\"", format)
			}

			paths, err := expand(args)
			if err != nil {
				return err
			}
			results, err := a.checkAll(cmd.Context(), paths)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				err = printJSON(out, results)
			} else {
				err = a.printText(out, results, snippets)
			}
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.analysis.HasErrors() {
					return errFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", `output format, "text" or "json"`)
	cmd.Flags().BoolVar(&snippets, "snippets", false, "show the source of each diagnostic in text output")
	return cmd
}

// expand turns command line patterns into a sorted list of paths.
//
// An argument without glob syntax is taken literally, so that a missing file
// is reported rather than silently matching nothing.
func expand(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{defaultPattern}
	}

	var paths []string
	for _, arg := range args {
		if arg == stdinName || !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}

		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents match %s", strings.Join(args, " "))
	}
	return paths, nil
}

// checkAll analyzes paths concurrently. The results are in the same order
// as paths.
func (a *app) checkAll(ctx context.Context, paths []string) ([]checked, error) {
	results := make([]checked, len(paths))

	// Stdin is read up front, so the workers only ever read the overlay.
	if slices.Contains(paths, stdinName) {
		if _, err := a.readStdin(); err != nil {
			return nil, fmt.Errorf("%s: %w", stdinName, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, a.cfg.Parallelism))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := a.open(path)
			if err != nil {
				return err
			}

			analysis := cbls.NewAnalyzer(a.cfg).AnalyzeFile(file)
			results[i] = checked{
				Path:        display(path),
				Messages:    analysis.Messages,
				Diagnostics: analysis.Diagnostics,
				analysis:    analysis,
			}
			if results[i].Diagnostics == nil {
				results[i].Diagnostics = []cbls.Diagnostic{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.log.Debug("checked documents", "count", len(paths))
	return results, nil
}

func (a *app) printText(w io.Writer, results []checked, snippets bool) error {
	units, err := a.cfg.Units()
	if err != nil {
		return err
	}
	renderer := report.Renderer{Compact: !snippets, Units: units}

	for _, r := range results {
		for _, msg := range r.Messages {
			if _, err := fmt.Fprintf(w, "%s: %s\n", r.Path, msg); err != nil {
				return err
			}
		}
		if _, _, err := renderer.Render(r.analysis.Result.Report(), w); err != nil {
			return err
		}
	}
	return nil
}
