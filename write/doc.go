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
// Package write serializes Go values to CSV, JSON, text, YAML, TOML and
// MessagePack files.
//
// Every function creates or truncates its target file, performs one
// blocking write and closes the file. Errors are of type [*Error].
//
//	err := write.ToCSV("planets.csv", [][]any{{"Hoth", 3}, {"Naboo", 3}}, []string{"name", "moons"})
//	err := write.DictsToCSV("ships.csv", rows, []string{"name", "length"})
//	err := write.ToJSON("people.json", people, write.WithEnsureASCII(true))
//	err := write.ToTxt("names.txt", []string{"Leia", "Luke"})
//	err := write.To("settings.toml", settings) // format from the extension
//
// Values produced by the convert package serialize the way one expects:
// numbers unquoted, lists as arrays and unconverted input as is.
package write
