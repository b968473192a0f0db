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

// Package menu defines the domain model for menus, meals, and nutrition data.
//
// # Overview
//
// The package holds two layers of types:
//
//   - Raw provider payloads (RawMenuResponse, MenuSection, RawMeal,
//     RecipeDetail, NutritionalValue) decoded directly from the upstream
//     JSON. These mirror the providers' wire format.
//   - Derived run-scoped types (AggregatedMeal, CompositeIdentity,
//     NutrientStats, StatsLookup) produced by the aggregation pipeline.
//     Derived values are created fresh per run and never persisted.
//
// # Identity
//
// Recipe ids are unique only within a single provider's catalog. Any lookup
// or merge across providers must key on CompositeIdentity (recipe id plus
// provider); keying on the bare recipe id silently corrupts results when the
// providers happen to assign the same number. AggregatedMeal additionally
// carries a synthetic display identity built from recipe id, meal name, and
// provider so that two independent catalog entries never collide even in
// user-facing selection.
//
// Recipe id 0 is a reserved sentinel: a generic menu item with no linked
// recipe, for which no detail page exists upstream.
package menu
