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

// Package catalog implements the HTTP client for the upstream catalog
// providers.
//
// # Overview
//
// The Client speaks both provider endpoint families:
//
//   - Day menus: GET {menuURL}?costCenter=...&date=...&language=...
//   - Recipe detail: GET {recipeURL}/{recipeID}?language=...
//
// All requests are bound to the caller's context, carry a total per-request
// timeout, and pass through an outbound rate limiter so a large fan-out
// cannot hammer the providers. No retries are performed: a failed request is
// a permanent omission for the current run.
//
// # Detail resolution
//
// ResolveDetail is the single-item path backing the interactive meal view.
// Unlike the bulk pipeline it surfaces transport and decode failures to the
// caller, and it rejects the sentinel recipe id up front with ErrNoDetail.
//
// # Configuration
//
// The Client is configured with functional options:
//
//	c := catalog.New(registry,
//	    catalog.WithTimeout(5*time.Second),
//	    catalog.WithRateLimit(20, 40),
//	)
package catalog
