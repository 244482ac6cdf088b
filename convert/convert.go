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

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// thousandsSeparator is removed from text before numeric parsing.
const thousandsSeparator = ","

// ToFloat attempts to convert value to a float64.
//
// Text values have every thousands separator comma removed and are then
// parsed in decimal notation, so "5,000,000" and " -1.5e3 " both convert.
// Any other value, or text that does not parse, is returned unchanged.
// Values that are already numeric are not normalized: ToFloat(42) returns
// the int 42.
func ToFloat(value any) any {
	if f, ok := Float(value); ok {
		return f
	}
	return value
}

// ToInt attempts to convert value to an int.
//
// It parses text like [ToFloat] and truncates the result toward zero, so
// "1,000,000.9999" converts to 1000000. Any other value, text that does not
// parse, and results that do not fit in an int are returned unchanged.
func ToInt(value any) any {
	if i, ok := Int(value); ok {
		return i
	}
	return value
}

// ToList attempts to split value into a []string.
//
// Text values are trimmed of leading and trailing whitespace and split on
// delimiter. The delimiter is matched literally and consecutive delimiters
// produce empty elements. An empty delimiter splits on runs of whitespace
// and discards empty fragments. Any non-text value is returned unchanged.
func ToList(value any, delimiter string) any {
	if l, ok := List(value, delimiter); ok {
		return l
	}
	return value
}

// Float is the typed form of [ToFloat]. It reports whether value was text
// that parsed as a decimal number.
func Float(value any) (float64, bool) {
	s, ok := text(value)
	if !ok {
		return 0, false
	}
	return parseDecimal(strings.ReplaceAll(s, thousandsSeparator, ""))
}

// Int is the typed form of [ToInt].
func Int(value any) (int, bool) {
	f, ok := Float(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	// -MinInt is exactly representable as a float64 and is one past MaxInt.
	if t < float64(math.MinInt) || t >= -float64(math.MinInt) {
		return 0, false
	}
	return int(t), true
}

// List is the typed form of [ToList].
func List(value any, delimiter string) ([]string, bool) {
	s, ok := text(value)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if delimiter != "" {
		return strings.Split(s, delimiter), true
	}
	return strings.Fields(s), true
}

// parseDecimal parses s as a float in decimal notation. Surrounding
// whitespace is ignored; overflow yields ±Inf rather than a failure.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// isHexLiteral reports whether s uses Go's hexadecimal float syntax.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
