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
package fetch

import (
	"fmt"
	"net/http"

	"github.com/umpyutl/umpyutl/internal/logging"
)

// Error describes a failed request. It records the operation, the request
// URL and the underlying error.
type Error struct {
	Op  string // The operation being performed (e.g., "get_resource")
	URL string // The request URL, including the query string
	Err error  // The underlying error
}

// Error returns a formatted error message with context information.
// Sensitive query parameters in the URL are redacted.
func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s %s: %v", e.Op, logging.RedactURL(e.URL), e.Err)
}

// Unwrap returns the underlying error, allowing for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusError is returned by [GetResourceJSON] for responses outside the
// 2xx range.
type StatusError struct {
	StatusCode int    // e.g. 404
	Status     string // e.g. "404 Not Found"
	Body       []byte // the start of the response body
}

// Error returns the status line.
func (e *StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "unexpected status " + e.Status
}
