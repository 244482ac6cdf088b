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
	"context"

	"github.com/umpyutl/umpyutl/internal/deprecation"
)

// warnDeprecated reports the first call to a deprecated writer. Option
// errors are left for the replacement to report.
func warnDeprecated(old, replacement string, opts []Option) {
	o, err := newOptions(opts)
	if err != nil {
		o = &options{}
	}
	deprecation.Warn(context.Background(), o.logger, old, replacement)
}

// WriteCSV writes rows to a delimited file.
//
// Deprecated: Use [ToCSV].
func WriteCSV[T any](path string, rows [][]T, headers []string, opts ...Option) error {
	warnDeprecated("write.WriteCSV", "write.ToCSV", opts)
	return ToCSV(path, rows, headers, opts...)
}

// WriteDictsToCSV writes maps to a delimited file.
//
// Deprecated: Use [DictsToCSV].
func WriteDictsToCSV(path string, rows []map[string]any, fieldnames []string, opts ...Option) error {
	warnDeprecated("write.WriteDictsToCSV", "write.DictsToCSV", opts)
	return DictsToCSV(path, rows, fieldnames, opts...)
}

// WriteFile writes lines to a text file.
//
// Deprecated: Use [ToTxt].
func WriteFile(path string, lines []string, opts ...Option) error {
	warnDeprecated("write.WriteFile", "write.ToTxt", opts)
	return ToTxt(path, lines, opts...)
}

// WriteJSON writes v as a JSON document.
//
// Deprecated: Use [ToJSON].
func WriteJSON(path string, v any, opts ...Option) error {
	warnDeprecated("write.WriteJSON", "write.ToJSON", opts)
	return ToJSON(path, v, opts...)
}
