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
// Package read loads CSV, JSON, text, YAML, TOML and MessagePack files into
// plain Go values.
//
// Every function performs a single blocking read of one file and returns the
// decoded value or an error. Errors are of type [*Error] and unwrap to the
// underlying file system or decoding error, so [errors.Is] with
// [fs.ErrNotExist] works as expected.
//
// # Files
//
//	rows, err := read.FromCSV("planets.csv")
//	starships, err := read.FromCSVToDicts("starships.csv")
//	people, err := read.FromJSON("people.json")
//	lines, err := read.FromTxt("speech.txt")
//	cfg, err := read.FromYAML("loc.yml")
//	doc, err := read.From("settings.toml") // format from the extension
//
// # Options
//
// Text files are decoded from UTF-8 by default. Use [WithEncoding] for other
// encodings; "utf-8-sig" removes a leading byte order mark:
//
//	rows, err := read.FromCSV("export.csv", read.WithEncoding("utf-8-sig"), read.WithDelimiter(';'))
//
// Documents can be validated against a JSON Schema with [WithJSONSchema].
//
// # Typed Records
//
// [DecodeRecords] decodes CSV dict rows into structs. Numeric fields accept
// thousands separators ("1,000,000"), following the convert package:
//
//	type Starship struct {
//	    Name   string  `csv:"name"`
//	    Length float64 `csv:"length"`
//	}
//	var ships []Starship
//	err := read.DecodeRecords(rows, &ships, read.WithValidation())
package read
