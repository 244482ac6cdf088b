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
// Package fetch retrieves HTTP resources with a single GET request.
//
// [GetResource] returns the response whatever its status code; the caller
// closes the body. [GetResourceJSON] decodes the body as JSON and reports
// non-2xx responses as [*StatusError]:
//
//	people, err := fetch.GetResourceJSON(ctx, "https://swapi.py4e.com/api/people/",
//	    fetch.WithParams(map[string]any{"search": "skywalker", "page": 1}),
//	)
//
// Both use a default [Client] built on first use. Create a [Client] to share
// parameters, headers or a transport across requests:
//
//	client, err := fetch.New(
//	    fetch.WithParams(map[string]any{"format": "json"}),
//	    fetch.WithHeader("Accept", "application/json"),
//	    fetch.WithTimeout(30*time.Second),
//	)
//
// Requests go through a pooled transport instrumented with OpenTelemetry, so
// they join the trace carried by ctx. There are no retries.
package fetch
