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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starship struct {
	Name             string   `csv:"name" validate:"required"`
	Manufacturers    []string `csv:"manufacturer"`
	Length           float64  `csv:"length"`
	HyperdriveRating float64  `csv:"hyperdrive_rating"`
	MGLT             int      `csv:"MGLT"`
	Crew             int      `csv:"crew"`
	Passengers       uint     `csv:"passengers"`
	CargoCapacity    int64    `csv:"cargo_capacity"`
	Consumables      string   `csv:"consumables"`
}

func TestDecodeRecords_Starships(t *testing.T) {
	t.Parallel()

	rows, err := FromCSVToDicts("testdata/wookieepedia_starships.csv")
	require.NoError(t, err)

	var ships []starship
	require.NoError(t, DecodeRecords(rows, &ships, WithValidation()))
	require.Len(t, ships, 3)

	falcon := ships[0]
	assert.Equal(t, "Millennium Falcon", falcon.Name)
	assert.Equal(t, []string{"Corellian Engineering Corporation"}, falcon.Manufacturers)
	assert.InDelta(t, 34.37, falcon.Length, 1e-9)
	assert.InDelta(t, 0.5, falcon.HyperdriveRating, 0)
	assert.Equal(t, 75, falcon.MGLT)
	assert.Equal(t, int64(100000), falcon.CargoCapacity)

	deathStar := ships[2]
	assert.Equal(t, []string{"Imperial Department of Military Research", "Sienar Fleet Systems"}, deathStar.Manufacturers)
	assert.InDelta(t, 120000.0, deathStar.Length, 0)
	assert.Equal(t, 342953, deathStar.Crew)
	assert.Equal(t, uint(843342), deathStar.Passengers)
	assert.Equal(t, int64(1_000_000_000_000), deathStar.CargoCapacity)
	assert.Equal(t, "3 years", deathStar.Consumables)
}

func TestDecodeRecords_Pointers(t *testing.T) {
	t.Parallel()

	type moon struct {
		Name   string        `csv:"name"`
		Orbit  time.Duration `csv:"orbit"`
		Seen   time.Time     `csv:"seen"`
		Radius float32       `csv:"radius"`
		Tags   []string      `csv:"tags"`
		Sizes  []int         `csv:"sizes"`
	}

	records := []map[string]string{
		{"name": "Endor", "orbit": "402h", "seen": "1983-05-25T00:00:00Z", "radius": " 2,450.5 ", "tags": "forest; ewoks", "sizes": "1,2"},
		{"name": "Yavin IV", "orbit": "", "seen": "", "radius": "", "tags": "", "sizes": ""},
	}

	var moons []*moon
	require.NoError(t, DecodeRecords(records, &moons, WithListDelimiter(";")))
	require.Len(t, moons, 2)

	endor := moons[0]
	assert.Equal(t, 402*time.Hour, endor.Orbit)
	assert.Equal(t, time.Date(1983, 5, 25, 0, 0, 0, 0, time.UTC), endor.Seen.UTC())
	assert.InDelta(t, 2450.5, endor.Radius, 1e-3)
	assert.Equal(t, []string{"forest", "ewoks"}, endor.Tags)
	assert.Equal(t, []int{12}, endor.Sizes)

	yavin := moons[1]
	assert.Zero(t, yavin.Orbit)
	assert.Zero(t, yavin.Radius)
	assert.Empty(t, yavin.Tags)
}

func TestDecodeRecords_Unconvertible(t *testing.T) {
	t.Parallel()

	type planet struct {
		Name       string `csv:"name"`
		Population int    `csv:"population"`
	}

	rows, err := FromCSVToDicts("testdata/wookieepedia_planets.csv")
	require.NoError(t, err)

	var planets []planet
	err = DecodeRecords(rows, &planets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")

	var readErr *Error
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "decode_records", readErr.Op)
}

func TestDecodeRecords_Overflow(t *testing.T) {
	t.Parallel()

	type droid struct {
		Small int8    `csv:"small"`
		Count uint8   `csv:"count"`
		Ratio float32 `csv:"ratio"`
	}

	var droids []droid
	require.NoError(t, DecodeRecords([]map[string]string{{"small": " -128 ", "count": "2,55", "ratio": "1.5"}}, &droids))
	assert.Equal(t, []droid{{Small: -128, Count: 255, Ratio: 1.5}}, droids)

	for _, row := range []map[string]string{
		{"small": "1,000"},
		{"count": "300"},
		{"count": "-1"},
		{"ratio": "1e39"},
	} {
		var out []droid
		err := DecodeRecords([]map[string]string{row}, &out)
		require.Error(t, err, row)

		var readErr *Error
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, "decode_records", readErr.Op)
	}
}

func TestDecodeRecords_Validation(t *testing.T) {
	t.Parallel()

	type crewed struct {
		Name       string `csv:"name" validate:"required"`
		Passengers int    `csv:"passengers" validate:"gte=1"`
	}

	rows, err := FromCSVToDicts("testdata/wookieepedia_starships.csv")
	require.NoError(t, err)

	var ships []crewed
	require.NoError(t, DecodeRecords(rows, &ships))

	err = DecodeRecords(rows, &ships, WithValidation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "passengers")
	assert.NotContains(t, err.Error(), "record 0")
}

func TestDecodeRecords_InvalidTarget(t *testing.T) {
	t.Parallel()

	var ships []starship
	require.Error(t, DecodeRecords(nil, ships))
	require.Error(t, DecodeRecords(nil, (*[]starship)(nil)))

	var notSlice starship
	require.Error(t, DecodeRecords(nil, &notSlice))

	var names []string
	err := DecodeRecords([]map[string]string{{"name": "Lando"}}, &names, WithValidation())
	require.Error(t, err)
}
