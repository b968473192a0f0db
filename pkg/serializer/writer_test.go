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

package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testMeal struct {
	Name     string   `json:"name" yaml:"name"`
	RecipeID int      `json:"recipeId" yaml:"recipeId"`
	Diets    []string `json:"diets" yaml:"diets"`
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	meal := testMeal{Name: "Hernekeitto", RecipeID: 42, Diets: []string{"G", "L"}}
	if err := w.Serialize(meal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got testMeal
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Name != meal.Name || got.RecipeID != meal.RecipeID {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, meal)
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("expected indented JSON output")
	}
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	meal := testMeal{Name: "Kalakeitto", RecipeID: 7}
	if err := w.Serialize(meal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got testMeal
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.Name != meal.Name {
		t.Errorf("got name %q, want %q", got.Name, meal.Name)
	}
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	meal := testMeal{Name: "Hernekeitto", RecipeID: 42, Diets: []string{"G"}}
	if err := w.Serialize(meal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Name", "Hernekeitto", "RecipeID", "42", "Diets.[0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(struct{}{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("expected <empty> marker, got %q", buf.String())
	}
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(map[string]string{"k": "v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON fallback output, got %q", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		w := NewFileWriterOrStdout(FormatJSON, path)

		if err := w.Serialize(testMeal{Name: "Hernekeitto", RecipeID: 42}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output file: %v", err)
		}
		if !json.Valid(data) {
			t.Errorf("file content is not valid JSON: %q", data)
		}
	})

	t.Run("empty path falls back to stdout", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, "")
		if w.closer != nil {
			t.Error("stdout writer should not hold a closer")
		}
		if err := w.Close(); err != nil {
			t.Errorf("close on stdout writer should be a no-op: %v", err)
		}
	})
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %d", len(formats))
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported as unknown", f)
		}
	}
}
