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

package ranking

import (
	"sort"

	"github.com/juhatakanen/FoodApp/pkg/menu"
)

// RankedMeal pairs an aggregated meal with its computed nutrient ranking.
type RankedMeal struct {
	menu.AggregatedMeal
	Stats *menu.NutrientStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Ratio *float64            `json:"kcalPerProtein,omitempty" yaml:"kcalPerProtein,omitempty"`
}

// Rank orders meals ascending by their kcal to protein ratio. Meals without
// usable nutrient stats are appended after the ranked block in their
// original relative order. The input slice is not modified.
func Rank(meals []menu.AggregatedMeal, stats menu.StatsLookup) []RankedMeal {
	ranked := make([]RankedMeal, 0, len(meals))
	unranked := make([]RankedMeal, 0)

	for _, m := range meals {
		s, ok := stats[m.Identity()]
		if !ok || !s.Rankable() {
			unranked = append(unranked, RankedMeal{AggregatedMeal: m})
			continue
		}
		ratio := s.Ratio()
		ranked = append(ranked, RankedMeal{
			AggregatedMeal: m,
			Stats:          &s,
			Ratio:          &ratio,
		})
	}

	// Stable sort preserves input order for equal ratios.
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Ratio < *ranked[j].Ratio
	})

	return append(ranked, unranked...)
}
