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

// Package ranking orders aggregated meals by nutritional quality.
//
// The ordering key is the kcal to protein ratio, ascending: fewer calories
// per gram of protein ranks higher. The sort is stable, so meals with equal
// ratios keep their aggregation order, and repeated ranking of the same
// input yields the same output. Meals that could not be enriched with
// nutrient stats are not dropped; they trail the ranked block in their
// original relative order.
package ranking
