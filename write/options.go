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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/umpyutl/umpyutl/codec"
	"github.com/umpyutl/umpyutl/internal/charset"
)

// DefaultPermissions is the mode of created files.
const DefaultPermissions fs.FileMode = 0o644

// Option is a functional option that configures a write.
type Option func(o *options) error

type options struct {
	encoding    string
	delimiter   rune
	crlf        bool
	newline     bool
	indent      int
	ensureASCII bool
	perm        fs.FileMode
	typ         codec.Type
	logger      *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		encoding:  charset.Default,
		delimiter: ',',
		crlf:      true,
		newline:   true,
		indent:    2,
		perm:      DefaultPermissions,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithEncoding sets the text encoding of the file, such as "utf-8-sig" or
// "latin-1". The default is "utf-8".
func WithEncoding(name string) Option {
	return func(o *options) error {
		if _, err := charset.Lookup(name); err != nil {
			return err
		}
		o.encoding = name
		return nil
	}
}

// WithDelimiter sets the CSV field delimiter. The default is ','.
func WithDelimiter(r rune) Option {
	return func(o *options) error {
		if r == '\r' || r == '\n' || r == '"' || r == 0xFFFD {
			return fmt.Errorf("invalid delimiter %q", r)
		}
		o.delimiter = r
		return nil
	}
}

// WithCRLF controls whether CSV rows end with "\r\n" (the default) or "\n".
func WithCRLF(crlf bool) Option {
	return func(o *options) error {
		o.crlf = crlf
		return nil
	}
}

// WithNewline controls whether [ToTxt] ends every line with "\n". It is
// enabled by default.
func WithNewline(newline bool) Option {
	return func(o *options) error {
		o.newline = newline
		return nil
	}
}

// WithIndent sets the number of spaces per nesting level of JSON, YAML and
// TOML output. The default is 2; 0 writes compact JSON and unindented TOML
// tables, and leaves YAML at its default.
func WithIndent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("indent must not be negative, got %d", spaces)
		}
		o.indent = spaces
		return nil
	}
}

// WithEnsureASCII escapes non-ASCII characters in JSON output.
func WithEnsureASCII(ensure bool) Option {
	return func(o *options) error {
		o.ensureASCII = ensure
		return nil
	}
}

// WithPermissions sets the mode of created files. Existing files keep their
// mode.
func WithPermissions(perm fs.FileMode) Option {
	return func(o *options) error {
		o.perm = perm
		return nil
	}
}

// WithType forces the document format used by [To] instead of detecting it
// from the file extension.
func WithType(t codec.Type) Option {
	return func(o *options) error {
		if t == "" {
			return errors.New("type cannot be empty")
		}
		o.typ = t
		return nil
	}
}

// WithLogger sets the logger for debug output and deprecation warnings.
// The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
