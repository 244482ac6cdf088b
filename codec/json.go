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
package codec

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TypeJSON is a constant representing the "json" encoding type.
const TypeJSON Type = "json"

// init registers the JSON encoding and decoding implementations with the codec package.
func init() {
	RegisterEncoder(TypeJSON, JSONCodec{})
	RegisterDecoder(TypeJSON, JSONCodec{})
}

// JSONCodec implements JSON serialization and deserialization.
//
// The zero value encodes compactly. HTML characters are never escaped, and
// non-ASCII characters are written as is unless EnsureASCII is set.
type JSONCodec struct {
	// Indent is the number of spaces per nesting level; 0 encodes compactly.
	Indent int
	// EnsureASCII escapes every non-ASCII character as \uXXXX.
	EnsureASCII bool
}

// Encode converts the provided value v into a JSON-encoded byte slice
// without a trailing newline.
func (c JSONCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", c.Indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if c.EnsureASCII {
		out = escapeNonASCII(out)
	}
	return out, nil
}

// Decode unmarshalls the provided JSON-encoded byte slice into the value pointed to by v.
// It wraps the standard library's json.Unmarshal function.
func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// escapeNonASCII rewrites every non-ASCII rune of encoded JSON as a \uXXXX
// escape, using surrogate pairs above the Basic Multilingual Plane. Encoded
// JSON only carries non-ASCII runes inside strings, so the rewrite is safe.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = appendEscape(out, r1)
			out = appendEscape(out, r2)
			continue
		}
		out = appendEscape(out, r)
	}
	return out
}

func appendEscape(out []byte, r rune) []byte {
	hex := strconv.FormatInt(int64(r), 16)
	out = append(out, '\\', 'u')
	for i := len(hex); i < 4; i++ {
		out = append(out, '0')
	}
	return append(out, hex...)
}
