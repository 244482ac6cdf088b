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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umpyutl/umpyutl/convert"
	"github.com/umpyutl/umpyutl/read"
)

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestToCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "planets.csv")
	rows := [][]any{
		{"Tatooine", convert.ToInt("200,000"), convert.ToFloat("10,465.5"), true},
		{"Hoth", convert.ToInt("unknown"), nil, false},
		{"Yavin, IV", 1, 2.5, "quoted \"moon\""},
	}
	require.NoError(t, ToCSV(path, rows, []string{"name", "population", "diameter", "visited"}))

	assert.Equal(t, "name,population,diameter,visited\r\n"+
		"Tatooine,200000,10465.5,true\r\n"+
		"Hoth,unknown,,false\r\n"+
		"\"Yavin, IV\",1,2.5,\"quoted \"\"moon\"\"\"\r\n", readFile(t, path))

	back, err := read.FromCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yavin, IV", "1", "2.5", "quoted \"moon\""}, back[3])
}

func TestToCSV_NoHeadersAndOptions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "droids.csv")
	rows := [][]string{{"C-3PO", "protocol"}, {"R2-D2", "astromech"}}
	require.NoError(t, ToCSV(path, rows, nil, WithDelimiter('|'), WithCRLF(false)))

	assert.Equal(t, "C-3PO|protocol\nR2-D2|astromech\n", readFile(t, path))

	back, err := read.FromCSV(path, read.WithDelimiter('|'))
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestToCSV_CellFormatting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cells.csv")
	rows := [][]any{{true, false, 1e21, 0.5, nil, int64(-7)}}
	require.NoError(t, ToCSV(path, rows, nil))

	assert.Equal(t, "true,false,1000000000000000000000,0.5,,-7\r\n", readFile(t, path))
}

func TestToCSV_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := ToCSV(filepath.Join(dir, "nested.csv"), [][]any{{"Naboo", []string{"Theed"}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0, column 1")

	var writeErr *Error
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "to_csv", writeErr.Op)

	err = ToCSV(filepath.Join(dir, "missing", "dir.csv"), [][]string{{"x"}}, nil)
	require.Error(t, err)

	err = ToCSV(filepath.Join(dir, "bad.csv"), [][]string{{"x"}}, nil, WithDelimiter('\n'))
	require.Error(t, err)
}

func TestDictsToCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "starships.csv")
	rows := []map[string]any{
		{"name": "X-wing", "length": 12.5, "crew": 1},
		{"name": "Death Star", "crew": convert.ToInt("342,953")},
	}
	require.NoError(t, DictsToCSV(path, rows, []string{"name", "crew", "length"}, WithCRLF(false)))

	assert.Equal(t, "name,crew,length\nX-wing,1,12.5\nDeath Star,342953,\n", readFile(t, path))

	back, err := read.FromCSVToDicts(path)
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"name": "X-wing", "crew": "1", "length": "12.5"},
		{"name": "Death Star", "crew": "342953", "length": ""},
	}, back)
}

func TestDictsToCSV_ExtraField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "starships.csv")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	rows := []map[string]any{{"name": "A-wing"}, {"name": "B-wing", "pilot": "Ten Numb"}}
	err := DictsToCSV(path, rows, []string{"name"})
	require.ErrorIs(t, err, ErrExtraField)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "pilot")
	assert.Equal(t, "keep", readFile(t, path))

	var writeErr *Error
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "dicts_to_csv", writeErr.Op)
}

func TestToCSV_Encoding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "latin1.csv")
	require.NoError(t, ToCSV(path, [][]string{{"España"}}, nil, WithEncoding("latin-1"), WithCRLF(false)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'E', 's', 'p', 'a', 0xf1, 'a', '\n'}, data)

	back, err := read.FromCSV(path, read.WithEncoding("latin-1"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"España"}}, back)

	require.Error(t, ToCSV(path, [][]string{{"x"}}, nil, WithEncoding("klingon-8")))
}
