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

// Package deprecation logs a warning the first time a deprecated function
// is called.
package deprecation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/umpyutl/umpyutl/internal/logging"
)

// RemovalVersion is the release in which deprecated aliases are removed.
const RemovalVersion = "v3.0.0"

// Notices records which deprecated functions have already been reported.
// The zero value is ready to use.
type Notices struct {
	seen sync.Map
}

var defaultNotices Notices

// Warn reports a call to the deprecated function old once per process.
func Warn(ctx context.Context, logger *slog.Logger, old, replacement string) {
	defaultNotices.Warn(ctx, logger, old, replacement)
}

// Warn logs a deprecation warning for old unless one was already logged.
// It reports whether a warning was written.
func (n *Notices) Warn(ctx context.Context, logger *slog.Logger, old, replacement string) bool {
	if _, loaded := n.seen.LoadOrStore(old, struct{}{}); loaded {
		return false
	}
	logging.Context(ctx, logger).WarnContext(ctx, old+" is deprecated and will be removed in "+RemovalVersion,
		"function", old,
		"replacement", replacement,
	)
	return true
}
