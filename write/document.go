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
	"fmt"
	"io"

	"github.com/umpyutl/umpyutl/codec"
)

// ToJSON writes v as a JSON document indented by two spaces. Non-ASCII
// characters are written as is unless [WithEnsureASCII] is set. The file has
// no trailing newline.
func ToJSON(path string, v any, opts ...Option) error {
	return writeDocument("to_json", path, codec.TypeJSON, v, opts)
}

// ToYAML writes v as a YAML document.
func ToYAML(path string, v any, opts ...Option) error {
	return writeDocument("to_yaml", path, codec.TypeYAML, v, opts)
}

// ToTOML writes v as a TOML document. v must encode to a table, such as a
// map or a struct.
func ToTOML(path string, v any, opts ...Option) error {
	return writeDocument("to_toml", path, codec.TypeTOML, v, opts)
}

// ToMsgPack writes v as a MessagePack document. The encoding option is
// ignored.
func ToMsgPack(path string, v any, opts ...Option) error {
	return writeDocument("to_msgpack", path, codec.TypeMsgPack, v, opts)
}

// To writes v in the format given by [WithType], or detected from the file
// extension (.json, .yaml, .yml, .toml, .msgpack, .mpk).
func To(path string, v any, opts ...Option) error {
	return writeDocument("to", path, "", v, opts)
}

func writeDocument(op, path string, typ codec.Type, v any, opts []Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return newError(op, path, err)
	}

	if o.typ != "" && typ == "" {
		typ = o.typ
	}
	if typ == "" {
		if typ, err = codec.DetectType(path); err != nil {
			return newError(op, path, err)
		}
	}

	encoder, err := o.encoder(typ)
	if err != nil {
		return newError(op, path, err)
	}

	data, err := encoder.Encode(v)
	if err != nil {
		return newError(op, path, fmt.Errorf("failed to encode %s: %w", typ, err))
	}

	err = withFile(path, o, typ != codec.TypeMsgPack, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return newError(op, path, err)
	}

	o.log().Debug("wrote document", "path", path, "type", string(typ), "bytes", len(data))
	return nil
}

// encoder returns the encoder for typ. The text formats are configured from
// the options; other types come from the codec registry.
func (o *options) encoder(typ codec.Type) (codec.Encoder, error) {
	switch typ {
	case codec.TypeJSON:
		return codec.JSONCodec{Indent: o.indent, EnsureASCII: o.ensureASCII}, nil
	case codec.TypeYAML:
		return codec.YAMLCodec{Indent: o.indent}, nil
	case codec.TypeTOML:
		return codec.TOMLCodec{Indent: o.indent}, nil
	}
	return codec.GetEncoder(typ)
}
