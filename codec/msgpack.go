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

	"github.com/vmihailenco/msgpack/v5"
)

// TypeMsgPack is a constant representing the "msgpack" encoding type.
const TypeMsgPack Type = "msgpack"

func init() {
	RegisterEncoder(TypeMsgPack, MsgPackCodec{})
	RegisterDecoder(TypeMsgPack, MsgPackCodec{})
}

// MsgPackCodec implements MessagePack encoding and decoding.
// Integers decoded into an interface value are widened to int64 or uint64
// and floats to float64, matching what the JSON codec produces for numbers.
type MsgPackCodec struct{}

// Encode encodes v as MessagePack.
func (MsgPackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode decodes MessagePack data into the value pointed to by v.
func (MsgPackCodec) Decode(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)
	return dec.Decode(v)
}
