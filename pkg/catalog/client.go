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

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/provider"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "foodapp-catalog/1.0"

// Option configures the Client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller owns the
// client's transport and timeout configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRateLimit sets the outbound requests-per-second limit and burst.
func WithRateLimit(rps, burst int) Option {
	return func(c *Client) {
		if rps > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// Client fetches day menus and recipe details from the catalog providers
// registered in a provider.Registry.
type Client struct {
	registry  *provider.Registry
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a Client backed by the given registry with a tuned transport,
// default timeouts, and outbound rate limiting.
func New(registry *provider.Registry, opts ...Option) *Client {
	c := &Client{
		registry: registry,
		client: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
				MaxIdleConns:          defaults.MaxInFlightRequests * 2,
				MaxIdleConnsPerHost:   defaults.MaxInFlightRequests,
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(defaults.ProviderRateLimit), defaults.ProviderRateBurst),
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// getJSON performs a rate-limited GET against the given URL and decodes the
// JSON response body into v.
func (c *Client) getJSON(ctx context.Context, prov provider.ID, endpoint, url string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observeRequest(prov, endpoint, "error", time.Since(start))
		return fmt.Errorf("executing request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	observeRequest(prov, endpoint, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", errStatusNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return nil
}

// Restaurants returns the registered restaurants to fetch menus for.
func (c *Client) Restaurants() []provider.Restaurant {
	return c.registry.Restaurants()
}
