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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/juhatakanen/FoodApp/pkg/aggregator"
	"github.com/juhatakanen/FoodApp/pkg/catalog"
	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/serializer"
)

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "menu",
		EnableShellCompletion: true,
		Usage:                 "Fetch, enrich, and rank the full menu for a day",
		Description: `Fetch the day menus of all registered restaurants, enrich each meal
with nutritional information from its provider, and rank the combined list
by kcal to protein ratio (ascending, best first).

Restaurants that fail to respond are omitted from the result. Meals whose
nutrition could not be resolved trail the ranked list unranked.

The result can be output in JSON, YAML, or table format.

# Examples

Today's menu in English:
  fooday menu

A specific day in Finnish, written to a file:
  fooday menu --date 2026-09-01 --language fi --format yaml --output menu.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "Menu date in YYYY-MM-DD format (default: today)",
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

			registry, err := loadRegistry(cmd)
			if err != nil {
				return fmt.Errorf("loading provider registry: %w", err)
			}

			date := cmd.String("date")
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			client := catalog.New(registry)
			pipeline := aggregator.NewPipeline(client, client, client.Restaurants())

			runCtx, cancel := context.WithTimeout(ctx, defaults.CLIMenuTimeout)
			defer cancel()

			result, err := pipeline.Run(runCtx, date, cmd.String("language"))
			if err != nil {
				return fmt.Errorf("running menu pipeline: %w", err)
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(result)
		},
	}
}
