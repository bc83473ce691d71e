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

package source_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftblock/cbls/source"
)

func TestFS(t *testing.T) {
	t.Parallel()

	opener := source.FS{FS: os.DirFS("testdata")}

	file, err := opener.Open("hello.cbscript")
	require.NoError(t, err)
	assert.Equal(t, "dir \"hello\"\n", file.Text())
	assert.Equal(t, "hello.cbscript", file.Path())

	_, err = opener.Open("missing.cbscript")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDisk(t *testing.T) {
	t.Parallel()

	file, err := source.Disk{}.Open("testdata/hello.cbscript")
	require.NoError(t, err)
	assert.Equal(t, "dir \"hello\"\n", file.Text())

	_, err = source.Disk{}.Open("testdata/missing.cbscript")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpeners(t *testing.T) {
	t.Parallel()

	mapped := source.NewMap(nil)
	mapped.Add("overlaid.cblib", "import common\n")

	opener := source.Openers{
		mapped,
		&source.FS{FS: os.DirFS("testdata")},
	}

	file, err := opener.Open("overlaid.cblib")
	require.NoError(t, err)
	assert.Equal(t, "import common\n", file.Text())

	file, err = opener.Open("hello.cbscript")
	require.NoError(t, err)
	assert.Equal(t, "dir \"hello\"\n", file.Text())

	_, err = opener.Open("missing.cbscript")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
