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
	"time"

	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodapp_catalog_requests_total",
			Help: "Total number of upstream catalog requests by provider, endpoint, and status.",
		},
		[]string{"provider", "endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodapp_catalog_request_duration_seconds",
			Help:    "Upstream catalog request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "endpoint"},
	)
)

func observeRequest(prov provider.ID, endpoint, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(string(prov), endpoint, status).Inc()
	requestDuration.WithLabelValues(string(prov), endpoint).Observe(elapsed.Seconds())
}
