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
	"net/url"

	"github.com/juhatakanen/FoodApp/pkg/menu"
	"github.com/juhatakanen/FoodApp/pkg/provider"
)

var (
	// ErrUnknownProvider indicates the provider id is not registered.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoDetail indicates the meal carries the sentinel recipe id, or
	// the provider does not know the recipe.
	ErrNoDetail = errors.New("no recipe detail available")

	// errStatusNotFound marks an upstream 404 so recipe lookups can
	// surface it as ErrNoDetail.
	errStatusNotFound = errors.New("resource not found upstream")
)

// Recipe fetches the full recipe detail for a single recipe id.
func (c *Client) Recipe(ctx context.Context, prov provider.ID, recipeID int, language string) (*menu.RecipeDetail, error) {
	ep, ok := c.registry.Endpoints(prov)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, prov)
	}

	q := url.Values{}
	q.Set("language", language)

	u := fmt.Sprintf("%s/%d?%s", ep.RecipeURL, recipeID, q.Encode())

	var detail menu.RecipeDetail
	if err := c.getJSON(ctx, prov, "recipe", u, &detail); err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, fmt.Errorf("%w: recipe %d from %s", ErrNoDetail, recipeID, prov)
		}
		return nil, fmt.Errorf("fetching recipe %d from %s: %w", recipeID, prov, err)
	}

	return &detail, nil
}

// ResolveDetail resolves the recipe detail behind a composite meal identity.
// The sentinel recipe id is rejected before any request is made.
func (c *Client) ResolveDetail(ctx context.Context, id menu.CompositeIdentity, language string) (*menu.RecipeDetail, error) {
	if id.RecipeID == menu.SentinelRecipeID {
		return nil, fmt.Errorf("%w: meal %s", ErrNoDetail, id)
	}
	if !id.Provider.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id.Provider)
	}

	return c.Recipe(ctx, id.Provider, id.RecipeID, language)
}
