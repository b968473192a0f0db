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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/juhatakanen/FoodApp/pkg/serializer"
)

// Flags shared by all commands that produce output.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
		Value: string(serializer.FormatJSON),
	}

	registryFlag = &cli.StringFlag{
		Name:    "registry",
		Usage:   "Path to a YAML file overriding the built-in provider registry",
		Sources: cli.EnvVars("FOODAPP_REGISTRY"),
	}

	languageFlag = &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"l"},
		Usage:   "Menu language as a BCP 47 tag (e.g. en, fi)",
		Value:   "en",
	}
)

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadRegistry resolves the provider registry from the --registry flag,
// falling back to the built-in defaults.
func loadRegistry(cmd *cli.Command) (*provider.Registry, error) {
	path := cmd.String("registry")
	if path == "" {
		return provider.DefaultRegistry(), nil
	}
	return provider.LoadRegistry(path)
}
