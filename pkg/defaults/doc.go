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

// Package defaults provides centralized configuration constants for FoodApp.
//
// This package defines timeout values, concurrency limits, and rate limits
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Pipeline limits: fan-out bounds and phase deadlines for the menu
//     aggregation and nutrient enrichment phases
//   - Handler timeouts: for HTTP request processing
//   - Server timeouts: for HTTP server configuration
//   - HTTP client timeouts: for outbound provider requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/juhatakanen/FoodApp/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.PhaseTimeout)
//	defer cancel()
//
// # Guidelines
//
// When choosing timeout values:
//
//   - Provider requests: 10s total per call, no retries
//   - Pipeline phases: 30s, bounded by the slowest in-flight request
//   - Menu handler: must cover both sequential phases plus ranking
//   - Server shutdown: 30s for graceful shutdown
package defaults
