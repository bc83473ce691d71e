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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/internal/logutil"
	"github.com/craftblock/cbls/source"
)

// stdinName is the file argument that stands for standard input.
const stdinName = "-"

// app is the state shared by every subcommand.
type app struct {
	stdin io.Reader

	// Documents are opened from stdin, once read, and then from disk.
	stdinFiles source.Map
	files      source.Openers

	configPath string
	verbose    bool
	ext        string

	cfg config.Config
	log *slog.Logger
}

func newCLI(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin, stdinFiles: source.NewMap(nil)}
	a.files = source.Openers{a.stdinFiles, source.Disk{}}

	root := &cobra.Command{
		Use:   "cbls",
		Short: "CraftBlock language tools",
		Long: `cbls checks CraftBlock datapack scripts (.cbscript) and libraries
(.cblib), and shows how an editor would see them.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "cbls.yaml", "configuration file (.yaml, .yml or .toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging information")
	flags.StringVar(&a.ext, "ext", "", "extension to assume for a document read from stdin")

	root.AddCommand(
		a.checkCommand(),
		a.lexCommand(),
		a.tokensCommand(),
		a.legendCommand(),
	)
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if a.verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	a.log = logutil.NewLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(a.log)

	a.log.Debug("loaded configuration", "path", a.configPath, "parallelism", cfg.Parallelism)
	return nil
}

// open loads a document named on the command line.
func (a *app) open(path string) (*source.File, error) {
	name := path
	if path == stdinName {
		var err error
		if name, err = a.readStdin(); err != nil {
			return nil, fmt.Errorf("%s: %w", stdinName, err)
		}
	}

	file, err := a.files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", display(path), err)
	}
	return file, nil
}

// readStdin reads stdin into the overlay the first time it is called, and
// returns the name the document is stored under.
//
// Not safe to call concurrently with open.
func (a *app) readStdin() (string, error) {
	ext := strings.TrimPrefix(a.ext, ".")
	if ext == "" {
		return "", cbls.ErrNoFilename
	}

	name := "stdin." + ext
	if _, ok := a.stdinFiles.Get()[name]; ok {
		return name, nil
	}
	text, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", err
	}
	a.stdinFiles.Add(name, string(text))
	return name, nil
}

// display returns the name a document is printed under.
func display(path string) string {
	if path == stdinName {
		return path
	}
	return filepath.ToSlash(path)
}

// errFailed is returned by commands whose output already explains the
// failure.
var errFailed = errors.New("failed")

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
