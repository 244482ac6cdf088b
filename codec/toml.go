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
	"strings"

	"github.com/BurntSushi/toml"
)

// TypeTOML is the codec type of TOML documents.
const TypeTOML Type = "toml"

func init() {
	RegisterEncoder(TypeTOML, TOMLCodec{Indent: 2})
	RegisterDecoder(TypeTOML, TOMLCodec{})
}

// TOMLCodec encodes and decodes TOML documents. A TOML document is always a
// table, so only maps and structs can be encoded.
type TOMLCodec struct {
	// Indent is the number of spaces nested tables are indented by.
	Indent int
}

// Encode converts v into a TOML document.
func (c TOMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = strings.Repeat(" ", c.Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a TOML document into the value pointed to by v.
func (TOMLCodec) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
