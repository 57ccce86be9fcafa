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
package strutil

import (
	"testing"

	"golang.org/x/text/language"
)

// TestTitleCaseKeyLabel verifies whole-label uppercasing, including the
// Greek carve-out.
func TestTitleCaseKeyLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		tag      language.Tag
		expected string
	}{
		{name: "ascii label", label: "abc", tag: language.English, expected: "ABC"},
		{name: "already upper", label: "ABC", tag: language.English, expected: "ABC"},
		{name: "greek accent preserved", label: "ά", tag: language.Greek, expected: "Ά"},
		{name: "empty", label: "", tag: language.English, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleCaseKeyLabel(tt.label, tt.tag); got != tt.expected {
				t.Errorf("TitleCaseKeyLabel(%q, %v) = %q, want %q", tt.label, tt.tag, got, tt.expected)
			}
		})
	}
}

// TestTitleCaseKeyCode verifies single-code uppercasing: control codes
// pass through, expanding mappings yield CodeUnspecified.
func TestTitleCaseKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		code     rune
		tag      language.Tag
		expected rune
	}{
		{name: "lowercase letter", code: 'a', tag: language.English, expected: 'A'},
		{name: "already upper", code: 'A', tag: language.English, expected: 'A'},
		{name: "space unchanged", code: ' ', tag: language.English, expected: ' '},
		{name: "control code passes through", code: -5, tag: language.English, expected: -5},
		{name: "greek accent preserved", code: 'ά', tag: language.Greek, expected: 'Ά'},
		{name: "expanding mapping", code: 'ß', tag: language.German, expected: CodeUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleCaseKeyCode(tt.code, tt.tag); got != tt.expected {
				t.Errorf("TitleCaseKeyCode(%q, %v) = %q, want %q", tt.code, tt.tag, got, tt.expected)
			}
		})
	}
}
