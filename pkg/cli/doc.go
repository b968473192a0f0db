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

// Package cli implements the fooday command line interface.
//
// Two commands are provided:
//
//   - menu: run the full aggregation pipeline for a day and print the
//     ranked result
//   - meal: resolve the detailed recipe behind a single meal identity
//
// Both commands accept --output and --format for JSON, YAML, or table
// output, and --registry to override the built-in provider registry with a
// YAML file. Version information is injected at build time via ldflags.
package cli
