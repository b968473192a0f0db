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
	"log/slog"
	"sync"
	"time"

	"github.com/juhatakanen/FoodApp/pkg/menu"

	"golang.org/x/sync/errgroup"
)

// enrich fans out one recipe request per distinct meal identity and returns
// the nutrient stats it could resolve. Sentinel meals are skipped. A stats
// entry exists only when both the energy and protein codes were present in
// the recipe's nutrient list; a failed or incomplete recipe is logged and
// omitted so the meal falls through to the unranked tail.
func (p *Pipeline) enrich(ctx context.Context, meals []menu.AggregatedMeal, language string) menu.StatsLookup {
	start := time.Now()
	defer func() {
		phaseDuration.WithLabelValues("enrich").Observe(time.Since(start).Seconds())
	}()

	// Duplicate identities across restaurants need only one request.
	identities := make([]menu.CompositeIdentity, 0, len(meals))
	seen := make(map[menu.CompositeIdentity]struct{}, len(meals))
	for _, m := range meals {
		if !m.HasRecipe() {
			continue
		}
		id := m.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		identities = append(identities, id)
	}

	var mu sync.Mutex
	stats := make(menu.StatsLookup, len(identities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for _, id := range identities {
		g.Go(func() error {
			detail, err := p.recipes.Recipe(gctx, id.Provider, id.RecipeID, language)
			if err != nil {
				slog.Warn("recipe enrichment failed, omitting",
					"meal", id.String(),
					"error", err)
				enrichmentFailures.WithLabelValues(string(id.Provider)).Inc()
				return nil
			}

			kcal, haveKcal := menu.FirstAmount(detail.Nutrients, menu.CodeEnergyKcal)
			protein, haveProtein := menu.FirstAmount(detail.Nutrients, menu.CodeProtein)
			if !haveKcal || !haveProtein {
				slog.Debug("recipe missing required nutrient codes",
					"meal", id.String(),
					"haveKcal", haveKcal,
					"haveProtein", haveProtein)
				return nil
			}

			mu.Lock()
			stats[id] = menu.NutrientStats{Kcal: kcal, ProteinGrams: protein}
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	slog.Debug("enrichment complete",
		"identities", len(identities),
		"resolved", len(stats))

	return stats
}
