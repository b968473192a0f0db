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

package menu

import (
	"fmt"
	"math"

	"github.com/juhatakanen/FoodApp/pkg/provider"
)

// CompositeIdentity is the (recipe id, provider) pair. It is the only safe
// key for nutrition-stats lookups: recipe ids are unique within one
// provider's catalog, never globally.
type CompositeIdentity struct {
	RecipeID int         `json:"recipeId" yaml:"recipeId"`
	Provider provider.ID `json:"provider" yaml:"provider"`
}

// String renders the identity for logging.
func (id CompositeIdentity) String() string {
	return fmt.Sprintf("%d/%s", id.RecipeID, id.Provider)
}

// AggregatedMeal is one meal instance in the aggregated day menu, stamped
// with its owning restaurant and provider. Read-only after creation.
type AggregatedMeal struct {
	// ID is the synthetic display identity: recipe id, name, and
	// provider. It stays unique even when two providers independently
	// assign the same numeric recipe id.
	ID string `json:"id" yaml:"id"`

	Name     string      `json:"name" yaml:"name"`
	RecipeID int         `json:"recipeId" yaml:"recipeId"`
	Diets    []string    `json:"diets,omitempty" yaml:"diets,omitempty"`
	IconURL  string      `json:"iconUrl,omitempty" yaml:"iconUrl,omitempty"`

	// Restaurant is the display name of the owning restaurant.
	Restaurant string `json:"restaurant" yaml:"restaurant"`

	Provider provider.ID `json:"provider" yaml:"provider"`
}

// NewAggregatedMeal stamps a raw meal with restaurant and provider identity.
func NewAggregatedMeal(raw RawMeal, restaurant string, prov provider.ID) AggregatedMeal {
	return AggregatedMeal{
		ID:         SyntheticID(raw.RecipeID, raw.Name, prov),
		Name:       raw.Name,
		RecipeID:   raw.RecipeID,
		Diets:      raw.Diets,
		IconURL:    raw.IconURL,
		Restaurant: restaurant,
		Provider:   prov,
	}
}

// SyntheticID builds the display identity triple.
func SyntheticID(recipeID int, name string, prov provider.ID) string {
	return fmt.Sprintf("%d|%s|%s", recipeID, name, prov)
}

// Identity returns the meal's composite identity for stats lookups.
func (m AggregatedMeal) Identity() CompositeIdentity {
	return CompositeIdentity{RecipeID: m.RecipeID, Provider: m.Provider}
}

// HasRecipe reports whether the meal links to a real recipe. Meals with the
// sentinel recipe id never trigger a detail request.
func (m AggregatedMeal) HasRecipe() bool {
	return m.RecipeID != SentinelRecipeID
}

// NutrientStats holds the derived nutrition figures for one composite
// identity.
type NutrientStats struct {
	// ProteinGrams is the protein content. Zero is a valid value and is
	// distinct from the code being absent upstream, in which case no
	// NutrientStats exists at all.
	ProteinGrams float64 `json:"proteinGrams" yaml:"proteinGrams"`

	// Kcal is the energy content in kilocalories.
	Kcal float64 `json:"kcal" yaml:"kcal"`
}

// Ratio is the ranking metric: kcal per gram of protein, lower is better.
// When protein is zero or negative there is no meaningful ratio and the
// result is +Inf; that is a data state, not an error.
func (s NutrientStats) Ratio() float64 {
	if s.ProteinGrams <= 0 {
		return math.Inf(1)
	}
	return s.Kcal / s.ProteinGrams
}

// Rankable reports whether the stats produce a finite ranking ratio.
func (s NutrientStats) Rankable() bool {
	return !math.IsInf(s.Ratio(), 1)
}

// StatsLookup maps composite identities to their resolved nutrient stats.
// Identities absent from the map were not resolved this run.
type StatsLookup map[CompositeIdentity]NutrientStats
