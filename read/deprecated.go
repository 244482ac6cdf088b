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
	"context"

	"github.com/umpyutl/umpyutl/internal/deprecation"
)

// warnDeprecated reports the first call to a deprecated reader. Option
// errors are left for the replacement to report.
func warnDeprecated(old, replacement string, opts []Option) {
	o, err := newOptions(opts)
	if err != nil {
		o = &options{}
	}
	deprecation.Warn(context.Background(), o.logger, old, replacement)
}

// ReadCSV reads a delimited file into rows.
//
// Deprecated: Use [FromCSV].
func ReadCSV(path string, opts ...Option) ([][]string, error) {
	warnDeprecated("read.ReadCSV", "read.FromCSV", opts)
	return FromCSV(path, opts...)
}

// ReadCSVToDicts reads a delimited file with a header row into maps.
//
// Deprecated: Use [FromCSVToDicts].
func ReadCSVToDicts(path string, opts ...Option) ([]map[string]string, error) {
	warnDeprecated("read.ReadCSVToDicts", "read.FromCSVToDicts", opts)
	return FromCSVToDicts(path, opts...)
}

// ReadFile reads a text file into lines.
//
// Deprecated: Use [FromTxt].
func ReadFile(path string, opts ...Option) ([]string, error) {
	warnDeprecated("read.ReadFile", "read.FromTxt", opts)
	return FromTxt(path, opts...)
}

// ReadJSON reads a JSON document.
//
// Deprecated: Use [FromJSON].
func ReadJSON(path string, opts ...Option) (any, error) {
	warnDeprecated("read.ReadJSON", "read.FromJSON", opts)
	return FromJSON(path, opts...)
}

// ReadYAML reads a YAML document.
//
// Deprecated: Use [FromYAML].
func ReadYAML(path string, opts ...Option) (any, error) {
	warnDeprecated("read.ReadYAML", "read.FromYAML", opts)
	return FromYAML(path, opts...)
}
