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

import "time"

// SentinelRecipeID marks a generic menu item with no linked recipe detail.
// Providers have no detail page for it; it must never be fetched.
const SentinelRecipeID = 0

// RawMenuResponse is the day-menu payload returned by a provider's menu
// endpoint for one restaurant.
type RawMenuResponse struct {
	// DayOfWeek is the localized day-of-week label.
	DayOfWeek string `json:"dayOfWeek" yaml:"dayOfWeek"`

	// Date is the menu date as an ISO "YYYY-MM-DD" string.
	Date string `json:"date" yaml:"date"`

	// Sections are the menu sections in document order.
	Sections []MenuSection `json:"menuPackages" yaml:"menuPackages"`

	// HTML is an optional raw HTML fallback some kitchens publish
	// instead of structured sections.
	HTML string `json:"html,omitempty" yaml:"html,omitempty"`

	// ManualMenu indicates a manually curated menu.
	ManualMenu bool `json:"isManualMenu" yaml:"isManualMenu"`
}

// MenuSection groups meals under one heading (e.g. "Lounas", "Kasvislounas").
type MenuSection struct {
	SortOrder int       `json:"sortOrder" yaml:"sortOrder"`
	Name      string    `json:"name" yaml:"name"`
	Price     string    `json:"price,omitempty" yaml:"price,omitempty"`
	Meals     []RawMeal `json:"meals" yaml:"meals"`
}

// RawMeal is a single meal as published by a provider.
type RawMeal struct {
	Name string `json:"name" yaml:"name"`

	// RecipeID links the meal to the provider's recipe catalog.
	// SentinelRecipeID means no linked recipe.
	RecipeID int `json:"recipeId" yaml:"recipeId"`

	// Diets are the provider's diet tags (e.g. "G", "L", "VEG").
	Diets []string `json:"diets,omitempty" yaml:"diets,omitempty"`

	IconURL string `json:"iconUrl,omitempty" yaml:"iconUrl,omitempty"`
}

// RecipeDetail is the full recipe payload returned by a provider's
// recipe-detail endpoint.
type RecipeDetail struct {
	RecipeID int    `json:"recipeId" yaml:"recipeId"`
	Name     string `json:"name" yaml:"name"`

	// Ingredients is the cleaned ingredient text.
	Ingredients string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`

	// LastModified is the provider's last-modified timestamp.
	LastModified time.Time `json:"lastModified" yaml:"lastModified"`

	// Nutrients is the open-vocabulary list of nutritional values.
	Nutrients []NutritionalValue `json:"nutrients" yaml:"nutrients"`

	// CO2PerHundredGrams is the optional carbon footprint per 100 g.
	CO2PerHundredGrams *float64 `json:"co2Per100g,omitempty" yaml:"co2Per100g,omitempty"`

	// DietInfo is an optional free-text diet description.
	DietInfo string `json:"dietInfo,omitempty" yaml:"dietInfo,omitempty"`
}
