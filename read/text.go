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

import "strings"

// FromTxt reads a text file and returns its lines.
//
// Line endings "\r\n" and "\r" are treated as "\n". By default each line is
// stripped of surrounding whitespace, so blank lines become "". With
// WithStrip(false) every line except possibly the last keeps its "\n".
func FromTxt(path string, opts ...Option) ([]string, error) {
	const op = "from_txt"

	o, err := newOptions(opts)
	if err != nil {
		return nil, newError(op, path, err)
	}

	data, err := readText(path, o)
	if err != nil {
		return nil, newError(op, path, err)
	}

	lines := splitLines(string(data))
	if o.strip {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}

	o.log().Debug("read text", "path", path, "lines", len(lines))
	return lines, nil
}

// splitLines splits s after each line break, normalizing line breaks to "\n".
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
