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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	for _, id := range []ID{Juvenes, Semma} {
		ep, ok := reg.Endpoints(id)
		require.True(t, ok, "endpoints missing for %s", id)
		assert.NotEmpty(t, ep.MenuURL)
		assert.NotEmpty(t, ep.RecipeURL)
	}

	_, ok := reg.Endpoints("sodexo")
	assert.False(t, ok, "unknown provider should have no endpoints")

	restaurants := reg.Restaurants()
	require.NotEmpty(t, restaurants)
	for _, r := range restaurants {
		assert.NoError(t, r.Validate())
	}
}

func TestRestaurantsReturnsCopy(t *testing.T) {
	reg := DefaultRegistry()

	first := reg.Restaurants()
	first[0].Name = "mutated"

	second := reg.Restaurants()
	assert.NotEqual(t, "mutated", second[0].Name, "Restaurants() must return a copy")
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides endpoints and restaurants", func(t *testing.T) {
		path := filepath.Join(dir, "registry.yaml")
		content := `
providers:
  juvenes:
    menuURL: http://localhost:9001/day-menus
    recipeURL: http://localhost:9001/recipes
restaurants:
  - name: Testipaikka
    costCenter: "0099"
    provider: juvenes
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		reg, err := LoadRegistry(path)
		require.NoError(t, err)

		ep, ok := reg.Endpoints(Juvenes)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:9001/day-menus", ep.MenuURL)

		// Semma keeps its defaults.
		ep, ok = reg.Endpoints(Semma)
		require.True(t, ok)
		assert.NotEmpty(t, ep.MenuURL)

		restaurants := reg.Restaurants()
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Testipaikka", restaurants[0].Name)
		assert.Equal(t, "0099", restaurants[0].CostCenter)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		path := filepath.Join(dir, "bad-provider.yaml")
		content := `
providers:
  sodexo:
    menuURL: http://localhost:9001/day-menus
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("rejects invalid restaurant", func(t *testing.T) {
		path := filepath.Join(dir, "bad-restaurant.yaml")
		content := `
restaurants:
  - name: Testipaikka
    provider: juvenes
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})
}
