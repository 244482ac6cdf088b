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
package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cast"
)

// ToCSV writes rows to a delimited file, preceded by headers when headers is
// not empty. Each cell is written as its string form; nil cells are written
// as "". Cells without a string form, such as slices and maps, are an error.
func ToCSV[T any](path string, rows [][]T, headers []string, opts ...Option) error {
	const op = "to_csv"

	o, err := newOptions(opts)
	if err != nil {
		return newError(op, path, err)
	}

	if err = writeRows(path, o, rows, headers); err != nil {
		return newError(op, path, err)
	}

	o.log().Debug("wrote csv", "path", path, "rows", len(rows))
	return nil
}

// DictsToCSV writes a header row of fieldnames followed by one row per map,
// with values in fieldname order. Missing keys are written as "". A key that
// is not in fieldnames fails the write with [ErrExtraField] before the file
// is touched.
func DictsToCSV(path string, rows []map[string]any, fieldnames []string, opts ...Option) error {
	const op = "dicts_to_csv"

	o, err := newOptions(opts)
	if err != nil {
		return newError(op, path, err)
	}

	for i, row := range rows {
		for key := range row {
			if !slices.Contains(fieldnames, key) {
				return newError(op, path, fmt.Errorf("row %d: %w: %q", i, ErrExtraField, key))
			}
		}
	}

	table := make([][]any, len(rows))
	for i, row := range rows {
		table[i] = make([]any, len(fieldnames))
		for j, field := range fieldnames {
			table[i][j] = row[field]
		}
	}

	if err = writeRows(path, o, table, fieldnames); err != nil {
		return newError(op, path, err)
	}

	o.log().Debug("wrote csv", "path", path, "rows", len(rows))
	return nil
}

func writeRows[T any](path string, o *options, rows [][]T, headers []string) error {
	return withFile(path, o, true, func(w io.Writer) error {
		writer := newCSVWriter(w, o)
		if len(headers) > 0 {
			if err := writer.Write(headers); err != nil {
				return err
			}
		}

		record := []string{}
		for i, row := range rows {
			record = record[:0]
			for j, cell := range row {
				s, err := cast.ToStringE(cell)
				if err != nil {
					return fmt.Errorf("row %d, column %d: %w", i, j, err)
				}
				record = append(record, s)
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}

		writer.Flush()
		return writer.Error()
	})
}

func newCSVWriter(w io.Writer, o *options) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = o.delimiter
	writer.UseCRLF = o.crlf
	return writer
}
