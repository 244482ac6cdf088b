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

// StrToFloat converts value like [ToFloat].
//
// Deprecated: Use [ToFloat].
func StrToFloat(value any) any { return ToFloat(value) }

// StrToInt converts value like [ToInt].
//
// Deprecated: Use [ToInt].
func StrToInt(value any) any { return ToInt(value) }

// StrToList splits value like [ToList].
//
// Deprecated: Use [ToList].
func StrToList(value any, delimiter string) any { return ToList(value, delimiter) }

// ConvertToFloat converts value like [ToFloat].
//
// Deprecated: Use [ToFloat].
func ConvertToFloat(value any) any { return ToFloat(value) }

// ConvertToInt converts value like [ToInt]. Unlike the first releases it
// accepts a fractional component and truncates it.
//
// Deprecated: Use [ToInt].
func ConvertToInt(value any) any { return ToInt(value) }

// ConvertToList splits value like [ToList].
//
// Deprecated: Use [ToList].
func ConvertToList(value any, delimiter string) any { return ToList(value, delimiter) }
