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
package fetch

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"

	"github.com/spf13/cast"
)

// withQuery appends params to the query string of rawURL, keeping any query
// already present. Keys are written in sorted order.
func withQuery(rawURL string, params map[string]any) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	for _, key := range slices.Sorted(maps.Keys(params)) {
		values, err := queryValues(params[key])
		if err != nil {
			return "", fmt.Errorf("param %q: %w", key, err)
		}
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// queryValues returns the string forms of a parameter value. Slices and
// arrays other than []byte yield one value per element.
func queryValues(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			values := make([]string, 0, rv.Len())
			for i := range rv.Len() {
				elem := rv.Index(i).Interface()
				if elem == nil {
					continue
				}
				s, err := cast.ToStringE(elem)
				if err != nil {
					return nil, err
				}
				values = append(values, s)
			}
			return values, nil
		}
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}
