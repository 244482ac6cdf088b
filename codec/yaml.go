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

import "github.com/goccy/go-yaml"

// TypeYAML is the codec type of YAML documents.
const TypeYAML Type = "yaml"

func init() {
	RegisterEncoder(TypeYAML, YAMLCodec{})
	RegisterDecoder(TypeYAML, YAMLCodec{})
}

// YAMLCodec encodes and decodes YAML documents. The zero value indents by
// two spaces. Decoded integers are uint64 when non-negative and int64
// otherwise.
type YAMLCodec struct {
	// Indent is the number of spaces per nesting level; 0 uses the default.
	Indent int
	// IndentSequence indents sequence items under their parent key.
	IndentSequence bool
}

// Encode converts v into a YAML document.
func (c YAMLCodec) Encode(v any) ([]byte, error) {
	var opts []yaml.EncodeOption
	if c.Indent > 0 {
		opts = append(opts, yaml.Indent(c.Indent))
	}
	if c.IndentSequence {
		opts = append(opts, yaml.IndentSequence(true))
	}
	return yaml.MarshalWithOptions(v, opts...)
}

// Decode parses a YAML document into the value pointed to by v.
func (YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
