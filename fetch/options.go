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
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTimeout bounds a request, including reading the body.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent unless [WithUserAgent] or a User-Agent
	// header is given.
	DefaultUserAgent = "umpyutl-go"

	// DefaultMaxErrorBody is how much of a non-2xx body [StatusError] keeps.
	DefaultMaxErrorBody int64 = 64 << 10
)

// settings are the scalar request settings. Zero fields of a request's
// settings fall back to the client's.
type settings struct {
	Timeout      time.Duration
	UserAgent    string
	MaxErrorBody int64
}

// config collects the options of a client or of a single request.
type config struct {
	settings       settings
	params         map[string]any
	header         http.Header
	logger         *slog.Logger
	httpClient     *http.Client
	tracerProvider trace.TracerProvider
}

// Option configures a [Client] or a single request.
type Option func(c *config) error

func newConfig(opts []Option) (*config, error) {
	c := &config{
		params: map[string]any{},
		header: http.Header{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithParams adds querystring parameters. Slice and array values become
// repeated keys, nil values are skipped and other values are written in
// their string form. Request parameters replace client parameters with the
// same key.
func WithParams(params map[string]any) Option {
	return func(c *config) error {
		maps.Copy(c.params, params)
		return nil
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) Option {
	return func(c *config) error {
		c.header.Add(key, value)
		return nil
	}
}

// WithUserAgent sets the User-Agent header. The default is [DefaultUserAgent].
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		c.settings.UserAgent = ua
		return nil
	}
}

// WithTimeout bounds the request, including reading the response body.
// The default is [DefaultTimeout]; a negative duration disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		c.settings.Timeout = d
		return nil
	}
}

// WithMaxErrorBody sets how many bytes of a non-2xx body are kept in a
// [StatusError].
func WithMaxErrorBody(n int64) Option {
	return func(c *config) error {
		if n <= 0 {
			return errors.New("max error body must be positive")
		}
		c.settings.MaxErrorBody = n
		return nil
	}
}

// WithLogger sets the logger for request logs. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithHTTPClient replaces the instrumented pooled client. It only applies to
// [New].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTracerProvider sets the provider of the transport's spans. The default
// is the global provider. It only applies to [New].
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) error {
		c.tracerProvider = tp
		return nil
	}
}
