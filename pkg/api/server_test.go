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

package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juhatakanen/FoodApp/pkg/provider"
)

// Serve() is a blocking function tested end to end; these tests cover the
// configuration surface around it.

func TestConstants(t *testing.T) {
	if name != "foodayd" {
		t.Errorf("name = %q, want %q", name, "foodayd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" {
		t.Error("version must not be empty")
	}
}

func TestLoadRegistryDefaults(t *testing.T) {
	t.Setenv(registryPathEnv, "")
	os.Unsetenv(registryPathEnv)

	reg, err := loadRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.Restaurants()) == 0 {
		t.Error("default registry must have restaurants")
	}
}

func TestLoadRegistryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `restaurants:
  - name: Testaurant
    costCenter: "0999"
    provider: juvenes
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(registryPathEnv, path)

	reg, err := loadRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restaurants := reg.Restaurants()
	if len(restaurants) != 1 {
		t.Fatalf("got %d restaurants, want 1", len(restaurants))
	}
	if restaurants[0].Name != "Testaurant" {
		t.Errorf("got restaurant %q, want Testaurant", restaurants[0].Name)
	}
	if restaurants[0].Provider != provider.Juvenes {
		t.Errorf("got provider %q, want juvenes", restaurants[0].Provider)
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	t.Setenv(registryPathEnv, "/nonexistent/registry.yaml")

	if _, err := loadRegistry(); err == nil {
		t.Error("expected error for missing registry file")
	}
}
