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

package provider

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{"juvenes", "juvenes", Juvenes, false},
		{"semma", "semma", Semma, false},
		{"mixed case", "Juvenes", Juvenes, false},
		{"padded", " semma ", Semma, false},
		{"unknown", "sodexo", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRestaurantValidate(t *testing.T) {
	tests := []struct {
		name       string
		restaurant Restaurant
		wantErr    bool
	}{
		{
			name:       "valid",
			restaurant: Restaurant{Name: "Newton", CostCenter: "0812", Provider: Juvenes},
		},
		{
			name:       "missing name",
			restaurant: Restaurant{CostCenter: "0812", Provider: Juvenes},
			wantErr:    true,
		},
		{
			name:       "missing cost center",
			restaurant: Restaurant{Name: "Newton", Provider: Juvenes},
			wantErr:    true,
		},
		{
			name:       "unknown provider",
			restaurant: Restaurant{Name: "Newton", CostCenter: "0812", Provider: "amica"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.restaurant.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestCostCenterPreservesLeadingZeros(t *testing.T) {
	// Cost centers are opaque strings; "0812" and "812" name different
	// kitchens upstream.
	r := Restaurant{Name: "Newton", CostCenter: "0812", Provider: Juvenes}
	if r.CostCenter != "0812" {
		t.Errorf("cost center mangled: %q", r.CostCenter)
	}
}
