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

package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Semantic convention field names for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// Context returns logger annotated with the trace and span IDs of the
// OpenTelemetry span in ctx. Without an active span the logger is returned
// as is. A nil logger resolves through [Default].
func Context(ctx context.Context, logger *slog.Logger) *slog.Logger {
	logger = Default(logger)

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		fieldTraceID, sc.TraceID().String(),
		fieldSpanID, sc.SpanID().String(),
	)
}
