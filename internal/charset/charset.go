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

// Package charset resolves text encoding names such as "utf-8-sig" or
// "latin-1" and wraps readers and writers to transcode from and to UTF-8.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default is the encoding used when none is given.
const Default = "utf-8"

// ErrUnknown is returned for encoding names that cannot be resolved.
var ErrUnknown = errors.New("unknown encoding")

// aliases covers the common names that the IANA and WHATWG indexes either
// lack or map differently ("latin-1" is windows-1252 in WHATWG).
var aliases = map[string]encoding.Encoding{
	"utf-8-sig":  unicode.UTF8BOM,
	"utf8-sig":   unicode.UTF8BOM,
	"utf-16":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":      unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16-le":  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16-be":  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16be":   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"latin-1":    charmap.ISO8859_1,
	"latin1":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"cp1252":     charmap.Windows1252,
}

// Lookup resolves name to an encoding. It returns nil for UTF-8, in which
// case no transcoding is needed.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch key {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	if enc, ok := aliases[key]; ok {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// NewReader returns a reader that decodes r from the named encoding into
// UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// NewWriter returns a writer that encodes UTF-8 input into the named
// encoding. The returned writer must be closed to flush buffered output;
// closing it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
