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
// Package codec provides encoding and decoding of documents by format name.
//
// The codec package defines [Encoder] and [Decoder] interfaces and a registry
// keyed by [Type]. The read and write packages look codecs up here, so a
// format registered by an application becomes available to read.From and
// write.To.
//
// # Built-in Codecs
//
//   - JSON: encoding/json, with optional indentation and ASCII escaping
//   - YAML: github.com/goccy/go-yaml
//   - TOML: github.com/BurntSushi/toml
//   - MsgPack: github.com/vmihailenco/msgpack/v5
//
// # Custom Codecs
//
//	codec.RegisterEncoder(codec.Type("myformat"), MyCodec{})
//	codec.RegisterDecoder(codec.Type("myformat"), MyCodec{})
//
// # Type Casting
//
// Caster decoders turn a raw text field into a typed value. The lenient
// casters (float, int, list) use the convert package and never fail: text
// that does not convert is stored unchanged. The strict casters (bool,
// string, duration, time) use github.com/spf13/cast and return an error.
//
//	decoder, _ := codec.GetDecoder(codec.TypeCasterInt)
//	var value any
//	decoder.Decode([]byte("1,000,000"), &value) // value is int(1000000)
package codec
