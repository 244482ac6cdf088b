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

package read

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umpyutl/umpyutl/internal/charset"
)

// writeFixture writes content to a file in a fresh temporary directory and
// returns its path.
func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestFromCSV(t *testing.T) {
	t.Parallel()

	planets, err := FromCSV("testdata/wookieepedia_planets.csv")
	require.NoError(t, err)
	require.Len(t, planets, 4)

	assert.Equal(t, "name", planets[0][1])
	assert.Equal(t, "Tatooine", planets[1][1])
	assert.Equal(t, "10,465 km", planets[1][7])
	assert.Equal(t, "desert, rock arches, canyons", planets[1][10])
	assert.Equal(t, "unknown", planets[3][11])
}

func TestFromCSV_DelimiterAndRaggedRows(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "ragged.csv", []byte("name;moons\nEndor;9;forest\nKamino\n\n\"Yavin;IV\";0\n"))

	rows, err := FromCSV(path, WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "moons"},
		{"Endor", "9", "forest"},
		{"Kamino"},
		{"Yavin;IV", "0"},
	}, rows)
}

func TestFromCSV_QuotedLineBreak(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "quoted.csv", []byte("name,notes\r\nJakku,\"scavenger\r\nworld\"\r\n"))

	rows, err := FromCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "scavenger\nworld", rows[1][1])
}

func TestFromCSV_EmptyFile(t *testing.T) {
	t.Parallel()

	rows, err := FromCSV(writeFixture(t, "empty.csv", nil))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFromCSV_Encoding(t *testing.T) {
	t.Parallel()

	bom := writeFixture(t, "bom.csv", []byte("\ufeffname,climate\nHoth,frozen\n"))

	rows, err := FromCSV(bom)
	require.NoError(t, err)
	assert.Equal(t, "\ufeffname", rows[0][0])

	rows, err = FromCSV(bom, WithEncoding("utf-8-sig"))
	require.NoError(t, err)
	assert.Equal(t, "name", rows[0][0])

	latin1 := writeFixture(t, "latin1.csv", []byte{'n', 'a', 'm', 'e', '\n', 'E', 's', 'p', 'a', 0xf1, 'a', '\n'})
	rows, err = FromCSV(latin1, WithEncoding("latin-1"))
	require.NoError(t, err)
	assert.Equal(t, "España", rows[1][0])
}

func TestFromCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := FromCSV("testdata/missing.csv")
	require.ErrorIs(t, err, fs.ErrNotExist)

	var readErr *Error
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "from_csv", readErr.Op)
	assert.Equal(t, "testdata/missing.csv", readErr.Path)
	assert.Contains(t, err.Error(), "read from_csv testdata/missing.csv")

	_, err = FromCSV("testdata/wookieepedia_planets.csv", WithEncoding("klingon-8"))
	require.ErrorIs(t, err, charset.ErrUnknown)

	_, err = FromCSV("testdata/wookieepedia_planets.csv", WithDelimiter('"'))
	require.Error(t, err)

	_, err = FromCSV(t.TempDir())
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestFromCSV_LenientQuotes(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "heights.csv", []byte("name,height\nChewbacca,7'6\"\nYoda,\"2'2\"\"\"\nJawa,\"3'2\n"))

	rows, err := FromCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "height"},
		{"Chewbacca", `7'6"`},
		{"Yoda", `2'2"`},
		{"Jawa", "3'2\n"},
	}, rows)

	dicts, err := FromCSVToDicts(path)
	require.NoError(t, err)
	require.Len(t, dicts, 3)
	assert.Equal(t, `7'6"`, dicts[0]["height"])
}

func TestFromCSVToDicts(t *testing.T) {
	t.Parallel()

	starships, err := FromCSVToDicts("testdata/wookieepedia_starships.csv")
	require.NoError(t, err)
	require.Len(t, starships, 3)

	falcon := starships[0]
	assert.Equal(t, "Millennium Falcon", falcon["name"])
	assert.Equal(t, "1,050", falcon["max_atmosphering_speed"])
	assert.Equal(t, "2 months", falcon["consumables"])
	assert.Len(t, falcon, 13)
}

func TestFromCSVToDicts_ShortAndLongRows(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "rows.csv", []byte("name,sector\nGeonosis\nRyloth,Gaulus,Outer Rim,Twi'lek\n"))

	rows, err := FromCSVToDicts(path)
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"name": "Geonosis", "sector": ""},
		{"name": "Ryloth", "sector": "Gaulus"},
	}, rows)

	rows, err = FromCSVToDicts(path, WithRestKey("extra"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Geonosis", "sector": ""}, rows[0])
	assert.Equal(t, "Outer Rim,Twi'lek", rows[1]["extra"])
}

func TestFromCSVToDicts_HeaderOnly(t *testing.T) {
	t.Parallel()

	rows, err := FromCSVToDicts(writeFixture(t, "header.csv", []byte("name,sector\n")))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = FromCSVToDicts(writeFixture(t, "none.csv", nil))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFromCSVToRecords(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "records.csv", []byte("name,sector,name\nNaboo,Chommell,Theed\nUtapau\nMustafar,Atravis,Fralideja,volcanic\n"))

	records, err := FromCSVToRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, []string{"name", "sector", "name"}, first.Fields)
	assert.Equal(t, []string{"Naboo", "Chommell", "Theed"}, first.Values)
	assert.Empty(t, first.Rest)

	name, ok := first.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Theed", name)

	_, ok = first.Get("climate")
	assert.False(t, ok)

	sector, ok := records[1].Get("sector")
	assert.True(t, ok)
	assert.Empty(t, sector)

	assert.Equal(t, []string{"volcanic"}, records[2].Rest)
	assert.Equal(t, map[string]string{"name": "Fralideja", "sector": "Atravis"}, records[2].Map())
}
