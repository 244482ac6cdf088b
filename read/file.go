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
	"io"
	"log/slog"
	"os"

	"github.com/umpyutl/umpyutl/internal/charset"
	"github.com/umpyutl/umpyutl/internal/logging"
)

// withText opens path and passes fn a reader that yields its content as
// UTF-8. The file is closed when fn returns.
func withText(path string, o *options, fn func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := charset.NewReader(f, o.encoding)
	if err != nil {
		return err
	}
	return fn(r)
}

// readText returns the content of path decoded to UTF-8.
func readText(path string, o *options) ([]byte, error) {
	var data []byte
	err := withText(path, o, func(r io.Reader) error {
		var err error
		data, err = io.ReadAll(r)
		return err
	})
	return data, err
}

func (o *options) log() *slog.Logger {
	return logging.Default(o.logger)
}
