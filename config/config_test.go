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

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/source"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := config.Default()
	assert.Equal(t, []string{"scale"}, c.FileParameters)
	assert.Equal(t, "cbscript", c.ScriptExtension)
	assert.Equal(t, "cblib", c.LibraryExtension)
	assert.Equal(t, "cbls", c.SourceTag)
	assert.Equal(t, runtime.NumCPU(), c.Parallelism)
	assert.False(t, c.ShowComments)
	assert.NoError(t, c.Validate())

	unit, err := c.Units()
	require.NoError(t, err)
	assert.Equal(t, source.UTF16, unit)
}

func TestParse(t *testing.T) {
	t.Parallel()

	want := config.Config{
		FileParameters: []string{"scale", "speed"},
		SourceTag:      "craftblock",
		ShowComments:   true,
		Parallelism:    2,
		ColumnUnits:    "bytes",
	}

	yamlText := "file_parameters: [scale, speed]\nsource_tag: craftblock\nshow_comments: true\nparallelism: 2\ncolumn_units: bytes\n"
	tomlText := "file_parameters = [\"scale\", \"speed\"]\nsource_tag = \"craftblock\"\nshow_comments = true\nparallelism = 2\ncolumn_units = \"bytes\"\n"

	for ext, text := range map[string]string{".yaml": yamlText, "yml": yamlText, ".toml": tomlText, "TOML": tomlText} {
		c, err := config.Parse([]byte(text), ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, c, ext)
	}

	c, err := config.Parse(nil, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, c)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("{}"), ".json")
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Parse([]byte("colour: red\n"), ".yaml")
	assert.ErrorContains(t, err, "YAML")

	_, err = config.Parse([]byte("colour = \"red\"\n"), ".toml")
	assert.ErrorContains(t, err, "unknown key \"colour\"")

	_, err = config.Parse([]byte("parallelism = \n"), ".toml")
	assert.ErrorContains(t, err, "TOML")
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env       map[string]string
		debug     bool
		sourceTag string
	}{
		{env: nil, sourceTag: "cbls"},
		{env: map[string]string{config.EnvDebug: "1"}, debug: true, sourceTag: "cbls"},
		{env: map[string]string{config.EnvDebug: "false"}, sourceTag: "cbls"},
		{env: map[string]string{config.EnvDebug: "yes please"}, debug: true, sourceTag: "cbls"},
		{env: map[string]string{config.EnvSourceTag: " 'mine' "}, sourceTag: "mine"},
	}

	for _, test := range tests {
		c := config.Default()
		c.ApplyEnv(func(key string) string { return test.env[key] })
		assert.Equal(t, test.debug, c.Debug, "%v", test.env)
		assert.Equal(t, test.sourceTag, c.SourceTag, "%v", test.env)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.ColumnUnits = "furlongs"
	assert.Error(t, c.Validate())

	c = config.Default()
	c.ColumnUnits = "width"
	assert.Error(t, c.Validate())

	c = config.Default()
	c.LibraryExtension = c.ScriptExtension
	assert.ErrorContains(t, c.Validate(), "must differ")

	c = config.Default()
	c.Parallelism = -1
	assert.Error(t, c.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	c, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "cbscript", c.ScriptExtension)

	path := filepath.Join(dir, "cbls.toml")
	require.NoError(t, os.WriteFile(path, []byte("script_extension = \"cbs\"\n"), 0o600))
	c, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cbs", c.ScriptExtension)
	assert.Equal(t, "cblib", c.LibraryExtension)

	path = filepath.Join(dir, "cbls.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=1\n"), 0o600))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}
