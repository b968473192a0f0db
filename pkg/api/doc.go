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

// Package api provides the HTTP API layer for the menu aggregation service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/juhatakanen/FoodApp/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/menu - Run the aggregation pipeline for a day's ranked menu.
//     Query parameters: date (YYYY-MM-DD, default today), language (BCP 47
//     tag, default en).
//   - GET /v1/meals/{provider}/{recipe} - Resolve the full recipe detail
//     behind a composite meal identity. Query parameter: language.
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - RATE_LIMIT: API requests per second (burst is double the limit)
//   - FOODAPP_REGISTRY: Path to a YAML file overriding the built-in
//     provider endpoints and restaurants
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/juhatakanen/FoodApp/pkg/api.version=1.0.0'"
package api
