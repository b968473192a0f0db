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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/juhatakanen/FoodApp/pkg/catalog"
	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/menu"
	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/juhatakanen/FoodApp/pkg/serializer"
)

func mealCmd() *cli.Command {
	return &cli.Command{
		Name:                  "meal",
		EnableShellCompletion: true,
		Usage:                 "Resolve the detailed recipe behind a single meal",
		Description: `Resolve the full recipe detail for a meal identified by its provider
and recipe id, including ingredients, the complete nutrient list, and diet
information.

Meals with recipe id 0 are manual entries without recipe data and cannot
be resolved.

# Examples

  fooday meal --provider juvenes --recipe 4242
  fooday meal --provider semma --recipe 4242 --language fi --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "provider",
				Aliases:  []string{"p"},
				Usage:    fmt.Sprintf("Provider id (supported values: %s)", provider.SupportedIDs()),
				Required: true,
			},
			&cli.IntFlag{
				Name:     "recipe",
				Aliases:  []string{"r"},
				Usage:    "Recipe id within the provider's catalog",
				Required: true,
			},
			languageFlag,
			registryFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			prov, err := provider.ParseID(cmd.String("provider"))
			if err != nil {
				return err
			}

			registry, err := loadRegistry(cmd)
			if err != nil {
				return fmt.Errorf("loading provider registry: %w", err)
			}

			client := catalog.New(registry)

			runCtx, cancel := context.WithTimeout(ctx, defaults.DetailHandlerTimeout)
			defer cancel()

			id := menu.CompositeIdentity{RecipeID: int(cmd.Int("recipe")), Provider: prov}
			detail, err := client.ResolveDetail(runCtx, id, cmd.String("language"))
			if err != nil {
				return fmt.Errorf("resolving meal %s: %w", id, err)
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(detail)
		},
	}
}
