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
	"github.com/juhatakanen/FoodApp/pkg/provider"

	"golang.org/x/sync/errgroup"
)

// MenuFetcher fetches the day menu for a single restaurant.
type MenuFetcher interface {
	DayMenu(ctx context.Context, rest provider.Restaurant, date, language string) (*menu.RawMenuResponse, error)
}

// RecipeFetcher fetches the recipe detail for a single recipe id.
type RecipeFetcher interface {
	Recipe(ctx context.Context, prov provider.ID, recipeID int, language string) (*menu.RecipeDetail, error)
}

// restaurantMenu pairs a restaurant with its fetched menu so results can be
// flattened in restaurant registration order after the fan-out completes.
type restaurantMenu struct {
	restaurant provider.Restaurant
	response   *menu.RawMenuResponse
}

// aggregate fans out one menu request per restaurant and flattens the
// responses into a single meal list. Failed restaurants are logged and
// omitted. The result order is deterministic: restaurants in registration
// order, sections and meals in upstream document order.
func (p *Pipeline) aggregate(ctx context.Context, restaurants []provider.Restaurant, date, language string) []menu.AggregatedMeal {
	start := time.Now()
	defer func() {
		phaseDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())
	}()

	var mu sync.Mutex
	results := make([]*restaurantMenu, len(restaurants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i, rest := range restaurants {
		g.Go(func() error {
			resp, err := p.menus.DayMenu(gctx, rest, date, language)
			if err != nil {
				slog.Warn("restaurant menu fetch failed, omitting",
					"restaurant", rest.Name,
					"provider", string(rest.Provider),
					"error", err)
				restaurantFailures.WithLabelValues(string(rest.Provider)).Inc()
				return nil
			}
			mu.Lock()
			results[i] = &restaurantMenu{restaurant: rest, response: resp}
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors; Wait can only propagate context
	// cancellation, which leaves the partial results in place.
	_ = g.Wait()

	var meals []menu.AggregatedMeal
	for _, rm := range results {
		if rm == nil {
			continue
		}
		for _, section := range rm.response.Sections {
			for _, raw := range section.Meals {
				meals = append(meals, menu.NewAggregatedMeal(raw, rm.restaurant.Name, rm.restaurant.Provider))
			}
		}
	}

	slog.Debug("aggregation complete",
		"restaurants", len(restaurants),
		"meals", len(meals))

	return meals
}
