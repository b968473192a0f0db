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

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juhatakanen/FoodApp/pkg/aggregator"
	"github.com/juhatakanen/FoodApp/pkg/menu"
)

// newUpstream serves both provider endpoint families for command tests.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/day-menus", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"dayOfWeek":"Monday","date":"2026-08-31","menuPackages":[{"sortOrder":1,"name":"Lounas","meals":[{"name":"Hernekeitto","recipeId":7,"diets":["G","L"]}]}]}`)
	})
	mux.HandleFunc("/recipes/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"recipeId":7,"name":"Hernekeitto","ingredients":"herneet, vesi","nutrients":[{"code":"energy-kcal","amount":250,"unit":"kcal"},{"code":"protein","amount":18,"unit":"g"}]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// writeRegistry points both providers at the test upstream.
func writeRegistry(t *testing.T, baseURL string) string {
	t.Helper()

	content := fmt.Sprintf(`providers:
  juvenes:
    menuURL: %[1]s/day-menus
    recipeURL: %[1]s/recipes
  semma:
    menuURL: %[1]s/day-menus
    recipeURL: %[1]s/recipes
restaurants:
  - name: Newton
    costCenter: "0812"
    provider: juvenes
`, baseURL)

	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMenuCommand(t *testing.T) {
	srv := newUpstream(t)
	registry := writeRegistry(t, srv.URL)
	out := filepath.Join(t.TempDir(), "menu.json")

	err := rootCmd().Run(context.Background(), []string{
		name, "menu",
		"--date", "2026-08-31",
		"--language", "en",
		"--registry", registry,
		"--output", out,
	})
	if err != nil {
		t.Fatalf("menu command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var result aggregator.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result.Date != "2026-08-31" {
		t.Errorf("got date %q, want 2026-08-31", result.Date)
	}
	if len(result.Meals) != 1 {
		t.Fatalf("got %d meals, want 1", len(result.Meals))
	}
	if result.Meals[0].Name != "Hernekeitto" {
		t.Errorf("got meal %q, want Hernekeitto", result.Meals[0].Name)
	}
	if result.Meals[0].Ratio == nil {
		t.Error("meal should be ranked")
	}
}

func TestMenuCommandInvalidDate(t *testing.T) {
	srv := newUpstream(t)
	registry := writeRegistry(t, srv.URL)

	err := rootCmd().Run(context.Background(), []string{
		name, "menu",
		"--date", "not-a-date",
		"--registry", registry,
	})
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestMenuCommandUnknownFormat(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{
		name, "menu", "--format", "xml",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestMealCommand(t *testing.T) {
	srv := newUpstream(t)
	registry := writeRegistry(t, srv.URL)
	out := filepath.Join(t.TempDir(), "meal.json")

	err := rootCmd().Run(context.Background(), []string{
		name, "meal",
		"--provider", "juvenes",
		"--recipe", "7",
		"--registry", registry,
		"--output", out,
	})
	if err != nil {
		t.Fatalf("meal command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var detail menu.RecipeDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if detail.Name != "Hernekeitto" {
		t.Errorf("got recipe %q, want Hernekeitto", detail.Name)
	}
}

func TestMealCommandSentinelRecipe(t *testing.T) {
	srv := newUpstream(t)
	registry := writeRegistry(t, srv.URL)

	err := rootCmd().Run(context.Background(), []string{
		name, "meal",
		"--provider", "juvenes",
		"--recipe", "0",
		"--registry", registry,
	})
	if err == nil {
		t.Fatal("expected error for sentinel recipe id")
	}
}

func TestMealCommandUnknownProvider(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{
		name, "meal",
		"--provider", "fazer",
		"--recipe", "7",
	})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
