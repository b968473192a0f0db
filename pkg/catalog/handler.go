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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/menu"
	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/juhatakanen/FoodApp/pkg/serializer"
)

const defaultLanguage = "en"

// HandleMealDetail serves GET /v1/meals/{provider}/{recipe}, resolving the
// full recipe detail behind a composite meal identity.
func (c *Client) HandleMealDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	prov, err := provider.ParseID(r.PathValue("provider"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	recipeID, err := strconv.Atoi(r.PathValue("recipe"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Bad Request: invalid recipe id %q", r.PathValue("recipe")), http.StatusBadRequest)
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		language = defaultLanguage
	}

	id := menu.CompositeIdentity{RecipeID: recipeID, Provider: prov}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.DetailHandlerTimeout)
	defer cancel()

	detail, err := c.ResolveDetail(ctx, id, language)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoDetail):
			http.Error(w, fmt.Sprintf("Not Found: %v", err), http.StatusNotFound)
		case errors.Is(err, ErrUnknownProvider):
			http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		default:
			slog.Error("resolving meal detail", "meal", id.String(), "error", err)
			http.Error(w, "Bad Gateway: upstream catalog request failed", http.StatusBadGateway)
		}
		return
	}

	serializer.RespondJSON(w, http.StatusOK, detail)
}
