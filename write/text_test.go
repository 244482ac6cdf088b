// Copyright 2026 The umpyutl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//go:build !integration

package write

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umpyutl/umpyutl/read"
)

func TestToTxt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")
	lines := []string{"Leia Organa", "", "Luke Skywalker"}
	require.NoError(t, ToTxt(path, lines))

	assert.Equal(t, "Leia Organa\n\nLuke Skywalker\n", readFile(t, path))

	back, err := read.FromTxt(path)
	require.NoError(t, err)
	assert.Equal(t, lines, back)
}

func TestToTxt_WithoutNewline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")
	lines := []string{"Leia\n", "Luke\n", "Han"}
	require.NoError(t, ToTxt(path, lines, WithNewline(false)))

	assert.Equal(t, "Leia\nLuke\nHan", readFile(t, path))

	back, err := read.FromTxt(path, read.WithStrip(false))
	require.NoError(t, err)
	assert.Equal(t, lines, back)
}

func TestToTxt_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0o600))
	require.NoError(t, ToTxt(path, []string{"Rey"}))

	assert.Equal(t, "Rey\n", readFile(t, path))
}

func TestToTxt_Permissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "default.txt")
	require.NoError(t, ToTxt(path, nil))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Zero(t, info.Mode().Perm()&^DefaultPermissions)

	path = filepath.Join(dir, "private.txt")
	require.NoError(t, ToTxt(path, []string{"secret plans"}, WithPermissions(0o600)))
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0o077)
}

func TestToTxt_BOM(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bom.txt")
	require.NoError(t, ToTxt(path, []string{"Mos Eisley"}, WithEncoding("utf-8-sig")))

	assert.Equal(t, "\ufeffMos Eisley\n", readFile(t, path))

	back, err := read.FromTxt(path, read.WithEncoding("utf-8-sig"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Mos Eisley"}, back)
}
