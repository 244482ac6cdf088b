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

// Package logging resolves the [slog.Logger] instances used across the
// module and keeps secrets out of what they write.
//
// Packages take a logger through a WithLogger option and fall back to
// [Default], which resolves to [slog.Default] at call time so that an
// application's global logger configuration is honored.
//
//	logging.Context(ctx, logger).Info("fetched", "url", logging.RedactURL(u))
package logging

import (
	"log/slog"
	"net/url"
	"strings"
)

// Redacted replaces sensitive values in log output.
const Redacted = "***REDACTED***"

// sensitiveKeys are query parameter names whose values never reach the log.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"access_token":  {},
	"secret":        {},
	"api_key":       {},
	"apikey":        {},
	"key":           {},
	"authorization": {},
}

// Default returns logger when it is non-nil and [slog.Default] otherwise.
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// Discard returns a logger that drops every entry.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// IsSensitive reports whether values stored under key must be redacted.
// Keys are compared case-insensitively, with "-" treated as "_".
func IsSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ReplaceAll(strings.ToLower(key), "-", "_")]
	return ok
}

// RedactURL returns rawURL with the values of sensitive query parameters
// and any userinfo password replaced by [Redacted]. Other parameters keep
// their order and encoding. Text that does not parse as a URL is returned
// unchanged.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	changed := false
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), Redacted)
		changed = true
	}

	if u.RawQuery != "" {
		pairs := strings.Split(u.RawQuery, "&")
		for i, pair := range pairs {
			name, _, found := strings.Cut(pair, "=")
			key, err := url.QueryUnescape(name)
			if !found || err != nil || !IsSensitive(key) {
				continue
			}
			pairs[i] = name + "=" + Redacted
			changed = true
		}
		u.RawQuery = strings.Join(pairs, "&")
	}

	if !changed {
		return rawURL
	}
	return u.String()
}
