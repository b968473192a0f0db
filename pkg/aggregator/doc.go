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

// Package aggregator builds the daily ranked menu across all registered
// restaurants.
//
// # Pipeline
//
// A run has three phases:
//
//  1. Aggregation: one menu request per restaurant, fanned out concurrently
//     with a bounded in-flight limit. A failed restaurant is logged and
//     omitted; it never fails the run.
//  2. Enrichment: one recipe request per distinct meal identity, again
//     bounded. Meals carrying the sentinel recipe id are skipped. Stats are
//     kept only when both the energy and protein codes are present.
//  3. Ranking: stable ordering by kcal to protein ratio, unenriched meals
//     trailing in aggregation order.
//
// Phases run sequentially; requests within a phase run concurrently. The
// run fails only on invalid input or when the context is done.
//
// # Identity
//
// Recipe ids are only unique within a provider, so all bookkeeping is keyed
// by the (recipe id, provider) composite identity. Meals from different
// providers that happen to share a recipe id are enriched independently.
package aggregator
