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

// NutritionCode names one nutritional value in a recipe. The upstream
// vocabulary is open; codes we rank on are enumerated here and anything
// else decodes as-is but reports Known() == false.
type NutritionCode string

const (
	// CodeEnergyKcal is the energy content in kilocalories.
	CodeEnergyKcal NutritionCode = "energy-kcal"
	// CodeProtein is the protein content in grams.
	CodeProtein NutritionCode = "protein"
	// CodeFat is the fat content in grams.
	CodeFat NutritionCode = "fat"
	// CodeCarbohydrate is the carbohydrate content in grams.
	CodeCarbohydrate NutritionCode = "carbohydrate"
	// CodeSalt is the salt content in grams.
	CodeSalt NutritionCode = "salt"
)

// Known reports whether the code belongs to the enumerated set. Unknown
// codes are preserved on the payload but never used for ranking.
func (c NutritionCode) Known() bool {
	switch c {
	case CodeEnergyKcal, CodeProtein, CodeFat, CodeCarbohydrate, CodeSalt:
		return true
	default:
		return false
	}
}

// NutritionalValue is one nutrient row in a recipe's nutrition list.
type NutritionalValue struct {
	Code   NutritionCode `json:"code" yaml:"code"`
	Amount float64       `json:"amount" yaml:"amount"`
	Unit   string        `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// FirstAmount returns the amount of the first value matching code. Later
// duplicates are ignored. The second result distinguishes a present zero
// amount from an absent code: absence is a valid data state, not a zero.
func FirstAmount(values []NutritionalValue, code NutritionCode) (float64, bool) {
	for _, v := range values {
		if v.Code == code {
			return v.Amount, true
		}
	}
	return 0, false
}
