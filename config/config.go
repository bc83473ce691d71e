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

// Package config loads settings for the CraftBlock language tools.
//
// Settings are read from a YAML or TOML file, chosen by extension, and may
// be overridden by environment variables. A missing file is not an error;
// every setting has a default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/craftblock/cbls/source"
)

// Environment variables that override file settings.
const (
	EnvDebug     = "CBLS_DEBUG"
	EnvSourceTag = "CBLS_SOURCE_TAG"
)

// ErrUnknownFormat is returned when a configuration file's extension is not
// one of .yaml, .yml, or .toml.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Config is the full set of settings.
type Config struct {
	// Names accepted as file parameters after desc, such as scale.
	FileParameters []string `yaml:"file_parameters" toml:"file_parameters"`

	// Extensions, without a dot, that declare a document's dialect.
	ScriptExtension  string `yaml:"script_extension" toml:"script_extension"`
	LibraryExtension string `yaml:"library_extension" toml:"library_extension"`

	// The source reported with every diagnostic.
	SourceTag string `yaml:"source_tag" toml:"source_tag"`

	// Whether comments are highlighted.
	ShowComments bool `yaml:"show_comments" toml:"show_comments"`

	// How many documents the CLI analyzes at once.
	Parallelism int `yaml:"parallelism" toml:"parallelism"`

	// The unit columns are counted in: utf16, bytes, or runes.
	ColumnUnits string `yaml:"column_units" toml:"column_units"`

	Debug bool `yaml:"debug" toml:"debug"`
}

// Default returns the default configuration.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads the configuration file at path, applies defaults, and then
// applies environment overrides. If path is empty or does not exist, only
// defaults and the environment are used.
func Load(path string) (Config, error) {
	var c Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if c, err = Parse(data, filepath.Ext(path)); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	c.applyDefaults()
	c.ApplyEnv(os.Getenv)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse decodes a configuration file's contents. ext selects the format, and
// may be given with or without its leading dot.
//
// Defaults are not applied.
func Parse(data []byte, ext string) (Config, error) {
	var c Config
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("failed to parse TOML config: unknown key %q", undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return c, nil
}

// ApplyEnv overrides settings from the environment, as read by getenv.
//
// CBLS_DEBUG enables debugging when set to anything other than a false
// boolean. CBLS_SOURCE_TAG replaces the diagnostic source.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if debug := clean(getenv(EnvDebug)); debug != "" {
		d, err := strconv.ParseBool(debug)
		c.Debug = err != nil || d
	}
	if tag := clean(getenv(EnvSourceTag)); tag != "" {
		c.SourceTag = tag
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if _, err := c.Units(); err != nil {
		return err
	}
	if c.ScriptExtension == c.LibraryExtension {
		return fmt.Errorf("script and library extensions must differ, both are %q", c.ScriptExtension)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	return nil
}

// Units returns the parsed column unit.
func (c *Config) Units() (source.Unit, error) {
	unit, err := source.ParseUnit(c.ColumnUnits)
	if err == nil && unit == source.TermWidth {
		err = fmt.Errorf("column unit %q is only for terminals", c.ColumnUnits)
	}
	return unit, err
}

func (c *Config) applyDefaults() {
	if c.FileParameters == nil {
		c.FileParameters = []string{"scale"}
	}
	if c.ScriptExtension == "" {
		c.ScriptExtension = "cbscript"
	}
	if c.LibraryExtension == "" {
		c.LibraryExtension = "cblib"
	}
	if c.SourceTag == "" {
		c.SourceTag = "cbls"
	}
	if c.Parallelism == 0 {
		c.Parallelism = runtime.NumCPU()
	}
	if c.ColumnUnits == "" {
		c.ColumnUnits = source.UTF16.String()
	}
}

// clean strips quotes and spaces from an environment value.
func clean(value string) string {
	return strings.Trim(value, "\"' ")
}
