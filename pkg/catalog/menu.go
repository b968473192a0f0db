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
	"fmt"
	"net/url"

	"github.com/juhatakanen/FoodApp/pkg/menu"
	"github.com/juhatakanen/FoodApp/pkg/provider"
)

// DayMenu fetches the day menu for a single restaurant. The cost center is
// passed through verbatim, it is an opaque provider identifier and may carry
// leading zeros.
func (c *Client) DayMenu(ctx context.Context, rest provider.Restaurant, date, language string) (*menu.RawMenuResponse, error) {
	if err := rest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid restaurant: %w", err)
	}

	ep, ok := c.registry.Endpoints(rest.Provider)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, rest.Provider)
	}

	q := url.Values{}
	q.Set("costCenter", rest.CostCenter)
	q.Set("date", date)
	q.Set("language", language)

	var resp menu.RawMenuResponse
	if err := c.getJSON(ctx, rest.Provider, "menu", ep.MenuURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetching menu for %s (%s): %w", rest.Name, rest.CostCenter, err)
	}

	return &resp, nil
}
