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
	"fmt"

	"github.com/spf13/cast"

	"github.com/umpyutl/umpyutl/convert"
)

// CastType is a string type that represents the type of a value that can be cast.
type CastType string

// revive:disable:exported
const (
	CastTypeFloat      CastType = "float"
	TypeCasterFloat    Type     = "caster-float"
	CastTypeInt        CastType = "int"
	TypeCasterInt      Type     = "caster-int"
	CastTypeList       CastType = "list"
	TypeCasterList     Type     = "caster-list"
	CastTypeBool       CastType = "bool"
	TypeCasterBool     Type     = "caster-bool"
	CastTypeString     CastType = "string"
	TypeCasterString   Type     = "caster-string"
	CastTypeDuration   CastType = "duration"
	TypeCasterDuration Type     = "caster-duration"
	CastTypeTime       CastType = "time"
	TypeCasterTime     Type     = "caster-time"
)

// init registers the various type casters with the codec package.
func init() {
	RegisterDecoder(TypeCasterFloat, NewCaster(CastTypeFloat))
	RegisterDecoder(TypeCasterInt, NewCaster(CastTypeInt))
	RegisterDecoder(TypeCasterList, NewCaster(CastTypeList))
	RegisterDecoder(TypeCasterBool, NewCaster(CastTypeBool))
	RegisterDecoder(TypeCasterString, NewCaster(CastTypeString))
	RegisterDecoder(TypeCasterDuration, NewCaster(CastTypeDuration))
	RegisterDecoder(TypeCasterTime, NewCaster(CastTypeTime))
}

// CasterCodec is a decoder that casts raw text to a specific type.
// The castType field determines the type to which the data will be cast.
type CasterCodec struct {
	castType  CastType
	delimiter string
}

// NewCaster creates a new CasterCodec instance with the specified castType.
// List casters split on whitespace.
func NewCaster(castType CastType) *CasterCodec {
	return &CasterCodec{
		castType: castType,
	}
}

// NewListCaster creates a list caster that splits on delimiter.
func NewListCaster(delimiter string) *CasterCodec {
	return &CasterCodec{
		castType:  CastTypeList,
		delimiter: delimiter,
	}
}

// Decode implements the Decoder interface for the CasterCodec. The result is
// stored in v, which must be a *any.
//
// Float, int and list casts are lenient: text that does not convert is
// stored unchanged as a string and no error is returned.
func (c *CasterCodec) Decode(data []byte, v any) error {
	m, ok := v.(*any)
	if !ok {
		return fmt.Errorf("invalid type assertion: caster target must be *any, got %T", v)
	}
	value := string(data)

	var err error
	switch c.castType {
	case CastTypeFloat:
		*m = convert.ToFloat(value)
	case CastTypeInt:
		*m = convert.ToInt(value)
	case CastTypeList:
		*m = convert.ToList(value, c.delimiter)
	case CastTypeBool:
		*m, err = cast.ToBoolE(value)
	case CastTypeString:
		*m, err = cast.ToStringE(value)
	case CastTypeDuration:
		*m, err = cast.ToDurationE(value)
	case CastTypeTime:
		*m, err = cast.ToTimeE(value)
	default:
		err = fmt.Errorf("unsupported cast type: %s", c.castType)
	}

	return err
}
