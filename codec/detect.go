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
	"path/filepath"
	"strings"
)

// extensionTypes maps file extensions to codec types for automatic format detection.
var extensionTypes = map[string]Type{
	".json":    TypeJSON,
	".yaml":    TypeYAML,
	".yml":     TypeYAML,
	".toml":    TypeTOML,
	".msgpack": TypeMsgPack,
	".mpk":     TypeMsgPack,
}

// DetectType returns the codec type for the extension of path.
// Extensions are matched case-insensitively.
func DetectType(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t, nil
	}
	return "", fmt.Errorf("cannot detect format from extension %q: %w", ext, ErrUnknownType)
}
