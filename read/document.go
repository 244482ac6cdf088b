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
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/umpyutl/umpyutl/codec"
)

// FromJSON reads a JSON document. Objects decode to map[string]any, arrays
// to []any and numbers to float64.
func FromJSON(path string, opts ...Option) (any, error) {
	return readDocument("from_json", path, codec.TypeJSON, opts)
}

// FromYAML reads a YAML document.
func FromYAML(path string, opts ...Option) (any, error) {
	return readDocument("from_yaml", path, codec.TypeYAML, opts)
}

// FromTOML reads a TOML document. The result is always a map[string]any.
func FromTOML(path string, opts ...Option) (any, error) {
	return readDocument("from_toml", path, codec.TypeTOML, opts)
}

// FromMsgPack reads a MessagePack document. The encoding option is ignored.
func FromMsgPack(path string, opts ...Option) (any, error) {
	return readDocument("from_msgpack", path, codec.TypeMsgPack, opts)
}

// From reads a document in the format given by [WithType], or detected from
// the file extension (.json, .yaml, .yml, .toml, .msgpack, .mpk).
func From(path string, opts ...Option) (any, error) {
	return readDocument("from", path, "", opts)
}

func readDocument(op, path string, typ codec.Type, opts []Option) (any, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, newError(op, path, err)
	}

	if o.typ != "" && typ == "" {
		typ = o.typ
	}
	if typ == "" {
		if typ, err = codec.DetectType(path); err != nil {
			return nil, newError(op, path, err)
		}
	}

	decoder, err := codec.GetDecoder(typ)
	if err != nil {
		return nil, newError(op, path, err)
	}

	var data []byte
	if typ == codec.TypeMsgPack {
		data, err = os.ReadFile(path)
	} else {
		data, err = readText(path, o)
	}
	if err != nil {
		return nil, newError(op, path, err)
	}

	var doc any
	if err = decoder.Decode(data, &doc); err != nil {
		return nil, newError(op, path, fmt.Errorf("failed to decode %s: %w", typ, err))
	}

	if err = o.validateSchema(doc); err != nil {
		return nil, newError(op, path, err)
	}

	o.log().Debug("read document", "path", path, "type", string(typ), "bytes", len(data))
	return doc, nil
}

// validateSchema checks doc against the configured schema. The document is
// passed through JSON first so that every decoder's numbers and maps reach
// the validator in the same shape.
func (o *options) validateSchema(doc any) error {
	if o.schema == nil {
		return nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("document cannot be validated against a json schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = o.schema.Validate(inst); err != nil {
		return fmt.Errorf("json schema validation failed: %w", err)
	}
	return nil
}
