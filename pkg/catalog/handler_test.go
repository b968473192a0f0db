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

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/juhatakanen/FoodApp/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMealDetail(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recipeId":42,"name":"Hernekeitto","ingredients":"herneet, vesi","nutrients":[{"code":"protein","amount":18,"unit":"g"}]}`))
	}))
	defer upstream.Close()

	c := New(testRegistry(t, upstream.URL))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/meals/{provider}/{recipe}", c.HandleMealDetail)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"resolves detail", http.MethodGet, "/v1/meals/juvenes/42?language=fi", http.StatusOK},
		{"sentinel recipe id", http.MethodGet, "/v1/meals/juvenes/0", http.StatusNotFound},
		{"unknown provider", http.MethodGet, "/v1/meals/fazer/42", http.StatusBadRequest},
		{"non-numeric recipe id", http.MethodGet, "/v1/meals/juvenes/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var detail menu.RecipeDetail
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
				assert.Equal(t, "Hernekeitto", detail.Name)
				proteins, ok := menu.FirstAmount(detail.Nutrients, menu.CodeProtein)
				require.True(t, ok)
				assert.InDelta(t, 18.0, proteins, 0.001)
			}
		})
	}

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/meals/juvenes/42", nil)
		rec := httptest.NewRecorder()
		c.HandleMealDetail(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})
}
