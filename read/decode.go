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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/umpyutl/umpyutl/convert"
)

// tagName is the struct tag that maps CSV fields to struct fields.
const tagName = "csv"

var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report CSV field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get(tagName), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
})

// DecodeRecords decodes dict rows, such as those returned by
// [FromCSVToDicts], into out, which must be a pointer to a slice of structs
// or struct pointers.
//
// Fields are matched by their `csv` tag, or case-insensitively by name.
// Text is converted leniently: numeric fields accept thousands separators
// and surrounding whitespace, slice fields are split on the list delimiter
// (see [WithListDelimiter]), durations use [time.ParseDuration] and times
// use RFC 3339. Blank text decodes to the zero value. With [WithValidation]
// each decoded struct is also checked against its `validate` tags.
func DecodeRecords(records []map[string]string, out any, opts ...Option) error {
	const op = "decode_records"

	o, err := newOptions(opts)
	if err != nil {
		return newError(op, "", err)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return newError(op, "", fmt.Errorf("out must be a non-nil pointer to a slice, got %T", out))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			lenientHookFunc(o.listDelimiter),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return newError(op, "", fmt.Errorf("failed to create decoder: %w", err))
	}
	if err = decoder.Decode(records); err != nil {
		return newError(op, "", err)
	}

	if o.validate {
		if err = validateSlice(rv.Elem()); err != nil {
			return newError(op, "", err)
		}
	}
	return nil
}

// lenientHookFunc converts text with the convert package before
// mapstructure's own weak conversion runs. Text that does not convert is
// passed through unchanged so that mapstructure reports it.
func lenientHookFunc(listDelimiter string) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := reflect.ValueOf(data).String()
		blank := strings.TrimSpace(s) == ""

		if blank {
			switch to {
			case reflect.TypeFor[time.Duration]():
				return time.Duration(0), nil
			case reflect.TypeFor[time.Time]():
				return time.Time{}, nil
			}
		}

		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if blank || to == reflect.TypeFor[time.Duration]() {
				return data, nil
			}
			// Values that do not fit stay text for mapstructure to reject.
			if i, ok := convert.Int(s); ok && !reflect.Zero(to).OverflowInt(int64(i)) {
				return i, nil
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if i, ok := convert.Int(s); ok && i >= 0 && !reflect.Zero(to).OverflowUint(uint64(i)) {
				return uint64(i), nil
			}
		case reflect.Float32, reflect.Float64:
			if f, ok := convert.Float(s); ok && !reflect.Zero(to).OverflowFloat(f) {
				return f, nil
			}
		case reflect.Slice:
			if to.Elem().Kind() == reflect.Uint8 {
				return data, nil
			}
			if blank {
				return []string{}, nil
			}
			items, _ := convert.List(s, listDelimiter)
			for i, item := range items {
				items[i] = strings.TrimSpace(item)
			}
			return items, nil
		}
		return data, nil
	}
}

func validateSlice(slice reflect.Value) error {
	var errs []error
	for i := range slice.Len() {
		elem := slice.Index(i)
		if elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			return fmt.Errorf("validation requires struct elements, got %s", elem.Type())
		}
		if err := structValidator().Struct(elem.Interface()); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
