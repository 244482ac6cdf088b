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

import "fmt"

// Error describes a failed read. It records the operation, the file and the
// underlying error.
type Error struct {
	Op   string // The operation being performed (e.g., "from_csv", "from_json")
	Path string // The file being read
	Err  error  // The underlying error
}

// Error returns a formatted error message with context information.
func (e *Error) Error() string {
	return fmt.Sprintf("read %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error, allowing for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}
