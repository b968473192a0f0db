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

// Package provider defines the upstream catalog providers and the static
// restaurant registry.
//
// # Overview
//
// FoodApp aggregates menus from two independent catalog providers, Juvenes
// and Semma. Each provider exposes two endpoint families: a day-menu listing
// endpoint and a recipe-detail endpoint. The mapping from provider to
// endpoints is fixed configuration known at startup; it is never discovered
// at runtime.
//
// The registry also carries the static restaurant set. Each restaurant is
// described by a display name, its provider, and a provider-specific
// cost-center code. Cost-center codes are opaque strings: they often look
// numeric but may carry significant leading zeros, so they must never be
// parsed as integers.
//
// # Usage
//
// Use the built-in defaults:
//
//	reg := provider.DefaultRegistry()
//
// Or load overrides from a YAML file:
//
//	reg, err := provider.LoadRegistry("registry.yaml")
//
// The YAML format mirrors the Registry fields:
//
//	providers:
//	  juvenes:
//	    menuURL: https://www.juvenes.fi/menuapi/day-menus
//	    recipeURL: https://www.juvenes.fi/menuapi/recipes
//	restaurants:
//	  - name: Newton
//	    costCenter: "0812"
//	    provider: juvenes
package provider
