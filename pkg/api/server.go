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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/juhatakanen/FoodApp/pkg/aggregator"
	"github.com/juhatakanen/FoodApp/pkg/catalog"
	"github.com/juhatakanen/FoodApp/pkg/logging"
	"github.com/juhatakanen/FoodApp/pkg/provider"
	"github.com/juhatakanen/FoodApp/pkg/server"
)

const (
	name           = "foodayd"
	versionDefault = "dev"

	// registryPathEnv points at an optional YAML file overriding the
	// built-in provider endpoints and restaurants.
	registryPathEnv = "FOODAPP_REGISTRY"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/juhatakanen/FoodApp/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// loadRegistry returns the provider registry, preferring the YAML file named
// by FOODAPP_REGISTRY over the built-in defaults.
func loadRegistry() (*provider.Registry, error) {
	path := os.Getenv(registryPathEnv)
	if path == "" {
		return provider.DefaultRegistry(), nil
	}

	reg, err := provider.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("loading registry from %s: %w", path, err)
	}

	slog.Info("loaded provider registry", "path", path)
	return reg, nil
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	registry, err := loadRegistry()
	if err != nil {
		slog.Error("registry configuration failed", "error", err)
		return err
	}

	// Setup catalog client and pipeline
	client := catalog.New(registry)
	pipeline := aggregator.NewPipeline(client, client, client.Restaurants())

	r := map[string]http.HandlerFunc{
		"GET /v1/menu":                      pipeline.HandleMenu,
		"GET /v1/meals/{provider}/{recipe}": client.HandleMealDetail,
	}

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
