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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/umpyutl/umpyutl/codec"
	"github.com/umpyutl/umpyutl/internal/charset"
)

// Option is a functional option that configures a read.
type Option func(o *options) error

type options struct {
	encoding      string
	delimiter     rune
	strip         bool
	restKey       string
	listDelimiter string
	typ           codec.Type
	schema        *jsonschema.Schema
	validate      bool
	logger        *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		encoding:      charset.Default,
		delimiter:     ',',
		strip:         true,
		listDelimiter: ",",
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithEncoding sets the text encoding of the file, such as "utf-8-sig" or
// "latin-1". The default is "utf-8". Unknown names fail when the read starts.
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

// WithStrip controls whether [FromTxt] trims surrounding whitespace from each
// line. It is enabled by default; when disabled, lines keep their "\n".
func WithStrip(strip bool) Option {
	return func(o *options) error {
		o.strip = strip
		return nil
	}
}

// WithRestKey keeps the surplus fields of rows longer than the header.
// [FromCSVToDicts] stores them under key, joined by the delimiter.
// Without it surplus fields are dropped.
func WithRestKey(key string) Option {
	return func(o *options) error {
		o.restKey = key
		return nil
	}
}

// WithListDelimiter sets the separator [DecodeRecords] splits on when a text
// field is decoded into a slice. The default is ",".
func WithListDelimiter(delimiter string) Option {
	return func(o *options) error {
		o.listDelimiter = delimiter
		return nil
	}
}

// WithType forces the document format used by [From] instead of detecting it
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

// WithJSONSchema validates decoded documents against schema.
func WithJSONSchema(schema []byte) Option {
	return func(o *options) error {
		//nolint:gosec // only used to build a unique resource name
		name := fmt.Sprintf("inline_%d.json", rand.Int())
		compiler := jsonschema.NewCompiler()

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
		if err != nil {
			return fmt.Errorf("invalid json schema: %w", err)
		}
		if err = compiler.AddResource(name, doc); err != nil {
			return err
		}
		s, err := compiler.Compile(name)
		if err != nil {
			return err
		}
		o.schema = s
		return nil
	}
}

// WithValidation validates each struct produced by [DecodeRecords] using its
// `validate` struct tags.
func WithValidation() Option {
	return func(o *options) error {
		o.validate = true
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
