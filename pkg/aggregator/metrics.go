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

package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodapp_pipeline_run_duration_seconds",
			Help:    "Time taken by a complete menu pipeline run",
			Buckets: []float64{1, 5, 10, 30, 60, 120},
		},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodapp_pipeline_runs_total",
			Help: "Total number of menu pipeline runs",
		},
		[]string{"status"}, // success or canceled
	)

	phaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodapp_pipeline_phase_duration_seconds",
			Help:    "Time taken by individual pipeline phases",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"phase"}, // aggregate, enrich
	)

	mealCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodapp_pipeline_meals",
			Help: "Number of meals in the last pipeline run",
		},
	)

	restaurantFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodapp_pipeline_restaurant_failures_total",
			Help: "Restaurant menu fetches omitted due to upstream failure",
		},
		[]string{"provider"},
	)

	enrichmentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodapp_pipeline_enrichment_failures_total",
			Help: "Recipe enrichments omitted due to upstream failure",
		},
		[]string{"provider"},
	)
)
