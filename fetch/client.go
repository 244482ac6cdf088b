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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/hashicorp/go-cleanhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/umpyutl/umpyutl/codec"
	"github.com/umpyutl/umpyutl/internal/logging"
)

// Client sends GET requests with shared defaults. It is safe for concurrent
// use.
type Client struct {
	httpClient *http.Client
	defaults   settings
	params     map[string]any
	header     http.Header
	logger     *slog.Logger
}

// New creates a client. Without [WithHTTPClient] it uses a pooled transport
// wrapped with OpenTelemetry instrumentation.
func New(opts ...Option) (*Client, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	defaults := settings{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxErrorBody: DefaultMaxErrorBody,
	}
	if err = mergo.Merge(&defaults, cfg.settings, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge settings: %w", err)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = cleanhttp.DefaultPooledClient()
		var otelOpts []otelhttp.Option
		if cfg.tracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(cfg.tracerProvider))
		}
		hc.Transport = otelhttp.NewTransport(hc.Transport, otelOpts...)
	}

	return &Client{
		httpClient: hc,
		defaults:   defaults,
		params:     cfg.params,
		header:     cfg.header,
		logger:     cfg.logger,
	}, nil
}

// MustNew creates a client or panics on error.
func MustNew(opts ...Option) *Client {
	c, err := New(opts...)
	if err != nil {
		panic("fetch client initialization failed: " + err.Error())
	}
	return c
}

var defaultClient = sync.OnceValue(func() *Client { return MustNew() })

// GetResource sends a GET request for rawURL and returns the response for
// any status code. The caller must close the response body. Options apply
// to this request only, on top of the client's.
func (c *Client) GetResource(ctx context.Context, rawURL string, opts ...Option) (*http.Response, error) {
	const op = "get_resource"

	resp, _, err := c.get(ctx, op, rawURL, opts)
	return resp, err
}

// GetResourceJSON sends a GET request for rawURL and decodes the response
// body as JSON. Objects decode to map[string]any, arrays to []any and
// numbers to float64. Responses outside the 2xx range return a
// [*StatusError].
func (c *Client) GetResourceJSON(ctx context.Context, rawURL string, opts ...Option) (any, error) {
	const op = "get_resource_json"

	resp, s, err := c.get(ctx, op, rawURL, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	reqURL := resp.Request.URL.String()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, s.MaxErrorBody))
		return nil, &Error{Op: op, URL: reqURL, Err: &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, URL: reqURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	decoder, err := codec.GetDecoder(codec.TypeJSON)
	if err != nil {
		return nil, &Error{Op: op, URL: reqURL, Err: err}
	}
	var doc any
	if err = decoder.Decode(data, &doc); err != nil {
		return nil, &Error{Op: op, URL: reqURL, Err: fmt.Errorf("failed to decode json: %w", err)}
	}
	return doc, nil
}

// get resolves the request options against the client and sends the request.
func (c *Client) get(ctx context.Context, op, rawURL string, opts []Option) (*http.Response, settings, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, settings{}, &Error{Op: op, URL: rawURL, Err: err}
	}

	s := cfg.settings
	if err = mergo.Merge(&s, c.defaults); err != nil {
		return nil, settings{}, &Error{Op: op, URL: rawURL, Err: fmt.Errorf("failed to merge settings: %w", err)}
	}

	params := make(map[string]any, len(c.params)+len(cfg.params))
	maps.Copy(params, c.params)
	maps.Copy(params, cfg.params)

	reqURL, err := withQuery(rawURL, params)
	if err != nil {
		return nil, s, &Error{Op: op, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, s, &Error{Op: op, URL: reqURL, Err: err}
	}
	req.Header = c.header.Clone()
	if req.Header == nil {
		req.Header = http.Header{}
	}
	for key, values := range cfg.header {
		req.Header[key] = values
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	hc := *c.httpClient
	hc.Timeout = max(s.Timeout, 0)

	logger := logging.Context(ctx, c.logger)
	if cfg.logger != nil {
		logger = logging.Context(ctx, cfg.logger)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = logging.RedactURL(ue.URL)
		}
		logger.DebugContext(ctx, "request failed", "url", logging.RedactURL(reqURL), "error", err)
		return nil, s, &Error{Op: op, URL: reqURL, Err: err}
	}

	logger.DebugContext(ctx, "fetched resource",
		"url", logging.RedactURL(reqURL),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, s, nil
}

// GetResource sends a GET request with the default client.
// See [Client.GetResource].
func GetResource(ctx context.Context, rawURL string, opts ...Option) (*http.Response, error) {
	return defaultClient().GetResource(ctx, rawURL, opts...)
}

// GetResourceJSON sends a GET request with the default client and decodes
// the JSON body. See [Client.GetResourceJSON].
func GetResourceJSON(ctx context.Context, rawURL string, opts ...Option) (any, error) {
	return defaultClient().GetResourceJSON(ctx, rawURL, opts...)
}
