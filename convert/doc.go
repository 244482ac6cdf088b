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

// Package convert provides best-effort coercion of loosely typed values into
// numbers and string lists.
//
// The functions are meant for cleaning fields decoded from text sources such
// as CSV or JSON documents, where a field may hold "5,000,000", "N/A" or a
// value that is not text at all. Conversion never fails loudly: when a value
// cannot be converted it is returned unchanged, with the same dynamic type
// and content.
//
// # Lenient Conversion
//
// [ToFloat] and [ToInt] only act on text. Thousands separators are removed
// before parsing, so "1,000,000.99" becomes 1000000.99:
//
//	convert.ToFloat("1,000,000.99") // float64(1000000.99)
//	convert.ToInt("1,000,000.9999") // int(1000000)
//	convert.ToFloat("N/A")          // "N/A", unchanged
//	convert.ToFloat(42)             // 42, unchanged: numbers are not normalized
//
// [ToList] trims the text and splits it either on a literal delimiter or on
// runs of whitespace:
//
//	convert.ToList("C-3PO, R2-D2, BB-8", ", ") // []string{"C-3PO", "R2-D2", "BB-8"}
//	convert.ToList("C-3PO R2-D2 BB-8", "")     // []string{"C-3PO", "R2-D2", "BB-8"}
//	convert.ToList(506, "")                    // 506, unchanged
//
// Callers that need to know whether a conversion happened can either check
// the dynamic type of the result or use the typed forms [Float], [Int] and
// [List], which report success with a boolean.
//
// # Input Classification
//
// Every input is classified by [KindOf] into one of a small set of kinds
// (text, number, boolean, null, sequence, mapping). Only [KindText] values
// are ever converted.
//
// All functions are pure and safe for concurrent use.
package convert
