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
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/umpyutl/umpyutl/internal/charset"
	"github.com/umpyutl/umpyutl/internal/logging"
)

// withFile creates or truncates path and passes fn a buffered writer. When
// text is set, output is encoded with the configured encoding. The file is
// flushed and closed on every path.
func withFile(path string, o *options, text bool, fn func(w io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	var w io.WriteCloser = nopCloser{buf}
	if text {
		if w, err = charset.NewWriter(buf, o.encoding); err != nil {
			return err
		}
	}

	if err = fn(w); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return buf.Flush()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func (o *options) log() *slog.Logger {
	return logging.Default(o.logger)
}
