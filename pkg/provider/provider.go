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

package provider

import (
	"fmt"
	"strings"
)

// ID identifies an upstream catalog provider.
type ID string

const (
	// Juvenes is the Juvenes catalog provider.
	Juvenes ID = "juvenes"
	// Semma is the Semma catalog provider.
	Semma ID = "semma"
)

// IsValid reports whether the ID is one of the known providers.
func (id ID) IsValid() bool {
	switch id {
	case Juvenes, Semma:
		return true
	default:
		return false
	}
}

// String returns the provider identifier as a string.
func (id ID) String() string {
	return string(id)
}

// SupportedIDs returns the identifiers of all known providers.
func SupportedIDs() []string {
	return []string{string(Juvenes), string(Semma)}
}

// ParseID converts a string into a known provider ID.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.IsValid() {
		return "", fmt.Errorf("unknown provider %q, supported values: %v", s, SupportedIDs())
	}
	return id, nil
}

// Endpoints holds the two base URLs of a provider's endpoint families.
type Endpoints struct {
	// MenuURL is the base URL of the day-menu listing endpoint.
	MenuURL string `json:"menuURL" yaml:"menuURL"`

	// RecipeURL is the base URL of the recipe-detail endpoint.
	// Recipe detail is fetched at RecipeURL/{recipeID}.
	RecipeURL string `json:"recipeURL" yaml:"recipeURL"`
}

// Restaurant describes one restaurant in the static registry.
type Restaurant struct {
	// Name is the display name of the restaurant.
	Name string `json:"name" yaml:"name"`

	// CostCenter is the provider-specific cost-center code. It is an
	// opaque string: leading zeros are significant and the value must
	// never be treated as an integer.
	CostCenter string `json:"costCenter" yaml:"costCenter"`

	// Provider owns this restaurant's menu.
	Provider ID `json:"provider" yaml:"provider"`
}

// Validate checks that the restaurant descriptor is usable.
func (r Restaurant) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if strings.TrimSpace(r.CostCenter) == "" {
		return fmt.Errorf("restaurant %q: cost center is required", r.Name)
	}
	if !r.Provider.IsValid() {
		return fmt.Errorf("restaurant %q: unknown provider %q", r.Name, r.Provider)
	}
	return nil
}
