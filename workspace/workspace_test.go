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

package workspace_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/semantic"
	"github.com/craftblock/cbls/workspace"
)

const uri = "file:///pack/src/main.cbscript"

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri, want string
	}{
		{uri, "/pack/src/main.cbscript"},
		{"file:///with%20space/a.cblib", "/with space/a.cblib"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
		{"main.cbscript", "main.cbscript"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, workspace.Path(tt.uri), tt.uri)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	analysis, err := store.Open(uri, 1, "dir 'a'\n")
	require.NoError(t, err)
	assert.False(t, analysis.HasErrors())
	assert.Equal(t, "/pack/src/main.cbscript", analysis.Path)

	diags, err := store.Diagnostics(uri)
	require.NoError(t, err)
	assert.Empty(t, diags)

	version, ok := store.Version(uri)
	assert.True(t, ok)
	assert.Equal(t, int32(1), version)

	_, err = store.Open("", 1, "dir 'a'\n")
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestChange(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	_, err := store.Open(uri, 1, "dir 'a'\n")
	require.NoError(t, err)

	applied, err := store.Change(uri, 2, "dir 5\n")
	require.NoError(t, err)
	assert.True(t, applied)

	diags, err := store.Diagnostics(uri)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "syntax-error", diags[0].Code)

	// Stale revisions do not replace newer ones.
	for _, v := range []int32{1, 2} {
		applied, err = store.Change(uri, v, "dir 'b'\n")
		require.NoError(t, err)
		assert.False(t, applied)
	}
	diags, err = store.Diagnostics(uri)
	require.NoError(t, err)
	assert.Len(t, diags, 1)

	applied, err = store.Change(uri, 7, "dir 'b'\n")
	require.NoError(t, err)
	assert.True(t, applied)
	diags, err = store.Diagnostics(uri)
	require.NoError(t, err)
	assert.Empty(t, diags)

	version, _ := store.Version(uri)
	assert.Equal(t, int32(7), version)

	_, err = store.Change("file:///other.cbscript", 1, "")
	require.ErrorIs(t, err, workspace.ErrNotOpen)
}

func TestClose(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	_, err := store.Open(uri, 1, "dir 'a'\n")
	require.NoError(t, err)

	assert.True(t, store.Close(uri))
	assert.False(t, store.Close(uri))

	_, err = store.Diagnostics(uri)
	require.ErrorIs(t, err, workspace.ErrNotOpen)
	_, err = store.SemanticTokens(uri)
	require.ErrorIs(t, err, workspace.ErrNotOpen)
	_, ok := store.Version(uri)
	assert.False(t, ok)
}

func TestSemanticTokens(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	analysis, err := store.Open(uri, 1, "dir 'a'\n  x = 10\n")
	require.NoError(t, err)

	data, err := store.SemanticTokens(uri)
	require.NoError(t, err)
	assert.Equal(t, analysis.Encoded, data)

	tokens, err := semantic.Decode(data)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, semantic.Keyword, tokens[0].Type)

	// A shorter revision must not leave stale data behind.
	_, err = store.Change(uri, 2, "dir 'a'\n")
	require.NoError(t, err)
	data, err = store.SemanticTokens(uri)
	require.NoError(t, err)
	assert.Len(t, data, 10)
}

func TestURIs(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	for _, u := range []string{
		"file:///c.cbscript",
		"file:///a.cblib",
		"file:///b.cbscript",
	} {
		_, err := store.Open(u, 1, "")
		require.NoError(t, err)
	}
	assert.Equal(t, []string{
		"file:///a.cblib",
		"file:///b.cbscript",
		"file:///c.cbscript",
	}, store.URIs())
}

func TestConcurrent(t *testing.T) {
	t.Parallel()

	store := workspace.NewStore(config.Default())
	_, err := store.Open(uri, 0, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Change(uri, int32(i+1), "dir 'a'\n")
			_, _ = store.SemanticTokens(uri)
		}()
	}
	wg.Wait()

	version, _ := store.Version(uri)
	assert.Equal(t, int32(16), version)
}
