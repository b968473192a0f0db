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
	"os"

	"gopkg.in/yaml.v3"
)

// Registry maps providers to their endpoints and carries the static
// restaurant set. A Registry is immutable after construction.
type Registry struct {
	endpoints   map[ID]Endpoints
	restaurants []Restaurant
}

// Option configures a Registry.
type Option func(*Registry)

// WithEndpoints overrides the endpoint mapping for a provider.
func WithEndpoints(id ID, ep Endpoints) Option {
	return func(r *Registry) {
		r.endpoints[id] = ep
	}
}

// WithRestaurants replaces the restaurant set.
func WithRestaurants(restaurants []Restaurant) Option {
	return func(r *Registry) {
		r.restaurants = restaurants
	}
}

// NewRegistry creates a registry with the built-in defaults, applying any
// options on top.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		endpoints: map[ID]Endpoints{
			Juvenes: {
				MenuURL:   "https://www.juvenes.fi/menuapi/day-menus",
				RecipeURL: "https://www.juvenes.fi/menuapi/recipes",
			},
			Semma: {
				MenuURL:   "https://www.semma.fi/menuapi/day-menus",
				RecipeURL: "https://www.semma.fi/menuapi/recipes",
			},
		},
		restaurants: []Restaurant{
			{Name: "Newton", CostCenter: "0812", Provider: Juvenes},
			{Name: "Ravintola Konehuone", CostCenter: "0815", Provider: Juvenes},
			{Name: "Hertsi", CostCenter: "0150", Provider: Semma},
			{Name: "Reaktori", CostCenter: "0160", Provider: Semma},
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DefaultRegistry returns the built-in provider and restaurant configuration.
func DefaultRegistry() *Registry {
	return NewRegistry()
}

// Endpoints returns the endpoint pair for the given provider.
func (r *Registry) Endpoints(id ID) (Endpoints, bool) {
	ep, ok := r.endpoints[id]
	return ep, ok
}

// Restaurants returns the static restaurant set. The returned slice is a
// copy; callers may reorder it freely.
func (r *Registry) Restaurants() []Restaurant {
	out := make([]Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out
}

// registryFile is the YAML on-disk form of a Registry.
type registryFile struct {
	Providers   map[ID]Endpoints `yaml:"providers"`
	Restaurants []Restaurant     `yaml:"restaurants"`
}

// LoadRegistry reads a YAML registry file and merges it over the defaults.
// Providers or restaurants absent from the file keep their default values.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", path, err)
	}

	opts := make([]Option, 0, len(file.Providers)+1)
	for id, ep := range file.Providers {
		if !id.IsValid() {
			return nil, fmt.Errorf("registry file %s: unknown provider %q", path, id)
		}
		opts = append(opts, WithEndpoints(id, ep))
	}

	if len(file.Restaurants) > 0 {
		for _, rest := range file.Restaurants {
			if err := rest.Validate(); err != nil {
				return nil, fmt.Errorf("registry file %s: %w", path, err)
			}
		}
		opts = append(opts, WithRestaurants(file.Restaurants))
	}

	return NewRegistry(opts...), nil
}
