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

package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/juhatakanen/FoodApp/pkg/defaults"
	"github.com/juhatakanen/FoodApp/pkg/serializer"
)

const defaultLanguage = "en"

// HandleMenu serves GET /v1/menu, running the full pipeline for the
// requested date and language. Missing query parameters default to today's
// date and English.
func (p *Pipeline) HandleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	lang := r.URL.Query().Get("language")
	if lang == "" {
		lang = defaultLanguage
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.MenuHandlerTimeout)
	defer cancel()

	result, err := p.Run(ctx, date, lang)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("menu request canceled", "date", date, "error", err)
			http.Error(w, "Gateway Timeout: menu pipeline canceled", http.StatusGatewayTimeout)
			return
		}
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}
