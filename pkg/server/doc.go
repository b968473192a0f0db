// Copyright (c) 2026, FoodApp Authors.  All rights reserved.
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

// Package server implements the HTTP surface of the menu service.
//
// The server is a stateless HTTP API with the following key components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Prometheus instrumentation on every API route
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Basic server startup:
//
//	srv := server.New(
//	    server.WithName("foodayd"),
//	    server.WithVersion("v1.0.0"),
//	    server.WithHandler("GET /v1/menu", menuHandler),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// System endpoints (/health, /ready, /metrics) are registered automatically
// and bypass rate limiting. API handlers passed via WithHandler run behind
// the full middleware chain.
package server
