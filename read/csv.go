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
package read

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Record is one data row of a CSV file that has a header row.
type Record struct {
	// Fields is the header row. It is shared by every record of a file.
	Fields []string
	// Values holds one value per field. Fields missing from a short row are "".
	Values []string
	// Rest holds the values of a row longer than the header, past the last field.
	Rest []string
}

// Get returns the value of field and whether the header contains it.
// With duplicate field names the last occurrence wins.
func (r *Record) Get(field string) (string, bool) {
	for i := len(r.Fields) - 1; i >= 0; i-- {
		if r.Fields[i] == field {
			return r.Values[i], true
		}
	}
	return "", false
}

// Map returns the record as a field name to value map. Surplus values are
// not included.
func (r *Record) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for i, field := range r.Fields {
		m[field] = r.Values[i]
	}
	return m
}

// FromCSV reads a delimited file and returns every row, including the header
// row, as a slice of fields. Quoted fields may contain delimiters and line
// breaks. Empty lines are skipped.
func FromCSV(path string, opts ...Option) ([][]string, error) {
	const op = "from_csv"

	o, err := newOptions(opts)
	if err != nil {
		return nil, newError(op, path, err)
	}

	rows := [][]string{}
	err = withText(path, o, func(r io.Reader) error {
		reader := newCSVReader(r, o)
		for {
			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
	})
	if err != nil {
		return nil, newError(op, path, err)
	}

	o.log().Debug("read csv", "path", path, "rows", len(rows))
	return rows, nil
}

// FromCSVToRecords reads a delimited file whose first row names the fields
// and returns one [Record] per remaining row. An empty file yields no records.
func FromCSVToRecords(path string, opts ...Option) ([]*Record, error) {
	const op = "from_csv_to_records"

	o, err := newOptions(opts)
	if err != nil {
		return nil, newError(op, path, err)
	}

	records, err := readRecords(path, o)
	if err != nil {
		return nil, newError(op, path, err)
	}
	return records, nil
}

// FromCSVToDicts reads a delimited file whose first row names the fields and
// returns one map per remaining row, keyed by field name.
//
// Fields missing from a short row map to "". Surplus fields of a long row
// are dropped unless [WithRestKey] is given, in which case they are stored
// under that key joined by the delimiter.
func FromCSVToDicts(path string, opts ...Option) ([]map[string]string, error) {
	const op = "from_csv_to_dicts"

	o, err := newOptions(opts)
	if err != nil {
		return nil, newError(op, path, err)
	}

	records, err := readRecords(path, o)
	if err != nil {
		return nil, newError(op, path, err)
	}

	dicts := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		m := rec.Map()
		if o.restKey != "" && len(rec.Rest) > 0 {
			m[o.restKey] = strings.Join(rec.Rest, string(o.delimiter))
		}
		dicts = append(dicts, m)
	}
	return dicts, nil
}

func readRecords(path string, o *options) ([]*Record, error) {
	records := []*Record{}
	err := withText(path, o, func(r io.Reader) error {
		reader := newCSVReader(r, o)

		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		for {
			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			records = append(records, newRecord(header, row))
		}
	})
	if err != nil {
		return nil, err
	}

	o.log().Debug("read csv records", "path", path, "records", len(records))
	return records, nil
}

func newRecord(header, row []string) *Record {
	rec := &Record{Fields: header, Values: make([]string, len(header))}
	copy(rec.Values, row)
	if len(row) > len(header) {
		rec.Rest = row[len(header):]
	}
	return rec
}

func newCSVReader(r io.Reader, o *options) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = o.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}
