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

import "io"

// ToTxt writes lines to a text file. By default each line is followed by
// "\n"; with WithNewline(false) lines are written back to back as given.
func ToTxt(path string, lines []string, opts ...Option) error {
	const op = "to_txt"

	o, err := newOptions(opts)
	if err != nil {
		return newError(op, path, err)
	}

	err = withFile(path, o, true, func(w io.Writer) error {
		for _, line := range lines {
			if o.newline {
				line += "\n"
			}
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return newError(op, path, err)
	}

	o.log().Debug("wrote text", "path", path, "lines", len(lines))
	return nil
}
