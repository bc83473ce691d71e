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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/parser"
	"github.com/craftblock/cbls/report"
	"github.com/craftblock/cbls/semantic"
)

func (a *app) lexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the tokens of a document",
		Long: `Lex prints one token per line: its position, its kind, its length, and
its text. Positions and lengths are in UTF-16 code units.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.open(args[0])
			if err != nil {
				return err
			}

			var r report.Report
			tokens := parser.Lex(file, parser.LexerOptions{KeepComments: true}, &r)

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				kind := strings.TrimPrefix(tok.Kind.GoString(), "token.")
				if _, err := fmt.Fprintf(out, "%d:%d\t%s\t%d\t%q\n", tok.Line, tok.Column, kind, tok.Length, tok.Text); err != nil {
					return err
				}
			}

			_, _, err = report.Renderer{Compact: true}.Render(&r, cmd.ErrOrStderr())
			return err
		},
	}
}

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the encoded highlighting of a document",
		Long: `Tokens prints the semantic highlighting of a document as a JSON object
whose "data" field holds five integers per token: the line delta, the column
delta, the length, the type index, and the modifier bits. See "cbls legend".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.open(args[0])
			if err != nil {
				return err
			}

			analysis := cbls.NewAnalyzer(a.cfg).AnalyzeFile(file)
			data := analysis.Encoded
			if data == nil {
				data = []uint32{}
			}
			return printJSON(cmd.OutOrStdout(), struct {
				Data []uint32 `json:"data"`
			}{data})
		},
	}
}

func (a *app) legendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the semantic token legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), semantic.DefaultLegend())
		},
	}
}
