/*
Copyright 2026 Imetext Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package locale

import "testing"

// TestFindBest verifies the four tiers of decreasing specificity and that
// a tighter match later in the candidate list always beats a looser match
// earlier in it.
func TestFindBest(t *testing.T) {
	tests := []struct {
		name       string
		target     Locale
		candidates []Locale
		expected   Locale
		found      bool
	}{
		{
			name:       "exact match wins over earlier language match",
			target:     FromString("en_US"),
			candidates: []Locale{FromString("en"), FromString("en_US")},
			expected:   FromString("en_US"),
			found:      true,
		},
		{
			name:       "exact match with variant",
			target:     FromString("es_US_trad"),
			candidates: []Locale{FromString("es"), FromString("es_US"), FromString("es_US_trad")},
			expected:   FromString("es_US_trad"),
			found:      true,
		},
		{
			name:       "country match ignores variant",
			target:     FromString("es_US_trad"),
			candidates: []Locale{FromString("es"), FromString("es_US")},
			expected:   FromString("es_US"),
			found:      true,
		},
		{
			name:       "language match as last resort",
			target:     FromString("fr_CA"),
			candidates: []Locale{FromString("en_US"), FromString("fr_FR"), FromString("fr")},
			expected:   FromString("fr_FR"),
			found:      true,
		},
		{
			name:       "candidate order breaks ties within a tier",
			target:     FromString("fr_CH"),
			candidates: []Locale{FromString("fr_FR"), FromString("fr_CA")},
			expected:   FromString("fr_FR"),
			found:      true,
		},
		{
			name:       "no shared language",
			target:     FromString("fr"),
			candidates: []Locale{FromString("en"), FromString("de")},
			found:      false,
		},
		{
			name:       "empty candidate list",
			target:     FromString("en"),
			candidates: nil,
			found:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindBest(tt.target, tt.candidates)
			if ok != tt.found {
				t.Fatalf("FindBest() ok = %v, want %v", ok, tt.found)
			}
			if ok && got != tt.expected {
				t.Errorf("FindBest() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}
