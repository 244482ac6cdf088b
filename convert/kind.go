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

package convert

import "reflect"

// Kind classifies an input value by the operations it supports.
type Kind uint8

const (
	// KindOther is any value that fits none of the other kinds (structs,
	// channels, functions, non-nil pointers).
	KindOther Kind = iota
	// KindNull is nil, or a nil pointer, interface, slice or map.
	KindNull
	// KindText is a string or a named type whose underlying type is string.
	KindText
	// KindNumber is any integer, unsigned integer, float or complex value.
	KindNumber
	// KindBoolean is a bool.
	KindBoolean
	// KindSequence is a slice or array, including []byte.
	KindSequence
	// KindMapping is a map.
	KindMapping
)

var kindNames = [...]string{
	KindOther:    "other",
	KindNull:     "null",
	KindText:     "text",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf classifies value. Scalars of predeclared types are matched directly;
// everything else is classified by its reflect.Kind, so named types follow
// their underlying type.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case string:
		return KindText
	case bool:
		return KindBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return KindNumber
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.IsNil() {
			return KindNull
		}
		return KindMapping
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
	}
	return KindOther
}

// text returns the string content of a KindText value.
func text(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if KindOf(value) != KindText {
		return "", false
	}
	return reflect.ValueOf(value).String(), true
}
