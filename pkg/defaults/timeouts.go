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

package defaults

import "time"

// Pipeline limits for menu aggregation and nutrient enrichment.
const (
	// MaxInFlightRequests bounds concurrent provider requests per phase.
	// Both fan-out phases share this limit via errgroup.SetLimit.
	MaxInFlightRequests = 16

	// PhaseTimeout is the deadline for a single pipeline phase (menu
	// aggregation or nutrient enrichment). A phase that exceeds this is
	// treated as a batch of per-item transport failures.
	PhaseTimeout = 30 * time.Second

	// ProviderRateLimit is the outbound request rate per second allowed
	// against the upstream catalog providers.
	ProviderRateLimit = 50

	// ProviderRateBurst is the outbound request burst size.
	ProviderRateBurst = 100
)

// Handler timeouts for HTTP request processing.
const (
	// MenuHandlerTimeout is the timeout for ranked-menu requests. It must
	// exceed PhaseTimeout since a request spans both pipeline phases.
	MenuHandlerTimeout = 75 * time.Second

	// DetailHandlerTimeout is the timeout for single-meal detail requests.
	DetailHandlerTimeout = 15 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// It must exceed MenuHandlerTimeout so slow upstream fetches surface
	// as handler errors rather than truncated responses.
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound provider requests.
const (
	// HTTPClientTimeout is the default total timeout for a single
	// provider request. Timeouts count as transport failures: the item is
	// omitted for the run, never retried.
	HTTPClientTimeout = 10 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIMenuTimeout is the default timeout for a full menu pipeline run
	// started from the command line.
	CLIMenuTimeout = 2 * time.Minute
)
