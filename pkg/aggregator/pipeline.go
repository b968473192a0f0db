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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/juhatakanen/FoodApp/pkg/ranking"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithInFlightLimit caps the number of concurrent upstream requests per
// phase.
func WithInFlightLimit(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.limit = n
		}
	}
}

// WithPhaseTimeout bounds the duration of each pipeline phase.
func WithPhaseTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.phaseTimeout = d
		}
	}
}

// Pipeline runs the aggregate, enrich, and rank phases for a single day's
// menu across all registered restaurants.
type Pipeline struct {
	menus        MenuFetcher
	recipes      RecipeFetcher
	restaurants  []provider.Restaurant
	limit        int
	phaseTimeout time.Duration
}

// NewPipeline creates a Pipeline over the given fetchers and restaurants.
// In production both fetchers are the same catalog client.
func NewPipeline(menus MenuFetcher, recipes RecipeFetcher, restaurants []provider.Restaurant, opts ...Option) *Pipeline {
	p := &Pipeline{
		menus:        menus,
		recipes:      recipes,
		restaurants:  restaurants,
		limit:        defaults.MaxInFlightRequests,
		phaseTimeout: defaults.PhaseTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result is the output of a single pipeline run.
type Result struct {
	RunID       string               `json:"runId" yaml:"runId"`
	Date        string               `json:"date" yaml:"date"`
	Language    string               `json:"language" yaml:"language"`
	GeneratedAt time.Time            `json:"generatedAt" yaml:"generatedAt"`
	MealCount   int                  `json:"mealCount" yaml:"mealCount"`
	RankedCount int                  `json:"rankedCount" yaml:"rankedCount"`
	Meals       []ranking.RankedMeal `json:"meals" yaml:"meals"`
}

// Run executes a full pipeline run for the given date and language. Input
// validation failures and context cancellation are the only error paths:
// upstream failures degrade the result instead of failing it.
func (p *Pipeline) Run(ctx context.Context, date, lang string) (*Result, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected %s: %w", date, dateLayout, err)
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	runID := uuid.NewString()
	start := time.Now()
	log := slog.With("runId", runID, "date", date, "language", lang)
	log.Info("starting menu pipeline", "restaurants", len(p.restaurants))

	actx, cancel := context.WithTimeout(ctx, p.phaseTimeout)
	meals := p.aggregate(actx, p.restaurants, date, lang)
	cancel()

	if err := ctx.Err(); err != nil {
		runsTotal.WithLabelValues("canceled").Inc()
		return nil, fmt.Errorf("pipeline canceled after aggregation: %w", err)
	}

	ectx, cancel := context.WithTimeout(ctx, p.phaseTimeout)
	stats := p.enrich(ectx, meals, lang)
	cancel()

	if err := ctx.Err(); err != nil {
		runsTotal.WithLabelValues("canceled").Inc()
		return nil, fmt.Errorf("pipeline canceled after enrichment: %w", err)
	}

	ranked := ranking.Rank(meals, stats)

	rankedCount := 0
	for _, m := range ranked {
		if m.Ratio != nil {
			rankedCount++
		}
	}

	runsTotal.WithLabelValues("success").Inc()
	runDuration.Observe(time.Since(start).Seconds())
	mealCount.Set(float64(len(ranked)))

	log.Info("menu pipeline complete",
		"meals", len(ranked),
		"ranked", rankedCount,
		"elapsed", time.Since(start).String())

	return &Result{
		RunID:       runID,
		Date:        date,
		Language:    lang,
		GeneratedAt: time.Now().UTC(),
		MealCount:   len(ranked),
		RankedCount: rankedCount,
		Meals:       ranked,
	}, nil
}
