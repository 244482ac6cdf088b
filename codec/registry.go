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
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownType is returned when no codec is registered for a type.
var ErrUnknownType = errors.New("codec not registered")

// Registry holds the registered encoders and decoders.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	encoders map[Type]Encoder
	decoders map[Type]Decoder
}

var registry = &Registry{
	encoders: make(map[Type]Encoder),
	decoders: make(map[Type]Decoder),
}

// RegisterEncoder registers an encoder for the given type, replacing any
// encoder already registered under that name.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type, replacing any
// decoder already registered under that name.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// GetEncoder retrieves the registered encoder for the given type. If no encoder
// is registered for the given type, an error wrapping [ErrUnknownType] is returned.
func GetEncoder(name Type) (Encoder, error) {
	registry.mu.RLock()
	encoder, exists := registry.encoders[name]
	registry.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("encoder not found for type: %s: %w", name, ErrUnknownType)
	}

	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type. If no decoder
// is registered for the given type, an error wrapping [ErrUnknownType] is returned.
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	decoder, exists := registry.decoders[name]
	registry.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s: %w", name, ErrUnknownType)
	}

	return decoder, nil
}
