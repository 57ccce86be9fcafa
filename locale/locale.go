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

// Package locale handles input-method locales in their canonical string
// form "ll", "ll_cc" or "ll_cc_variant", where "ll" is a language code and
// "cc" a country code.
//
// This form is deliberately looser than BCP 47: it is the identifier an
// input-method host hands around in configuration and subtype lists, and a
// malformed identifier degrades to fewer populated components instead of
// failing. The package covers parsing (with a shared memoizing Cache),
// best-candidate matching, localized display names, and display-name
// ordering for settings screens.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is an immutable (language, country, variant) triple. Each
// component is an optional short ASCII code. Locale is comparable; == is
// component-wise equality.
type Locale struct {
	language string
	country  string
	variant  string
}

// New returns the locale with the given components. Empty trailing
// components are the normal way to express a less specific locale.
func New(lang, country, variant string) Locale {
	return Locale{language: lang, country: country, variant: variant}
}

// Language returns the language code, e.g. "en".
func (l Locale) Language() string { return l.language }

// Country returns the country code, e.g. "US", or "" if unset.
func (l Locale) Country() string { return l.country }

// Variant returns the variant code, or "" if unset.
func (l Locale) Variant() string { return l.variant }

// IsEmpty returns true if no component is set.
func (l Locale) IsEmpty() bool {
	return l.language == "" && l.country == "" && l.variant == ""
}

// String returns the canonical form of the locale: the components joined
// by underscores, omitting the variant when it is empty and the country
// when both it and the variant are empty. It implements fmt.Stringer and
// is the left inverse of FromString for canonical inputs.
func (l Locale) String() string {
	if l.country == "" {
		return l.language
	}
	if l.variant == "" {
		return l.language + "_" + l.country
	}
	return l.language + "_" + l.country + "_" + l.variant
}

// Tag converts the locale to a BCP 47 language.Tag on a best-effort basis,
// for use with the golang.org/x/text case, collation and display packages.
// A locale that does not form a well-formed tag falls back to its bare
// language, and finally to language.Und.
func (l Locale) Tag() language.Tag {
	if l.language == "" {
		return language.Und
	}
	if tag, err := language.Parse(strings.ReplaceAll(l.String(), "_", "-")); err == nil {
		return tag
	}
	if tag, err := language.Parse(l.language); err == nil {
		return tag
	}
	return language.Und
}

// FromString parses a canonical locale string. The input is split on "_"
// into at most three parts; surplus parts stay attached to the variant and
// missing parts leave the corresponding components empty. Malformed input
// never fails, it only populates fewer fields.
func FromString(s string) Locale {
	parts := strings.SplitN(s, "_", 3)
	switch len(parts) {
	case 1:
		return Locale{language: parts[0]}
	case 2:
		return Locale{language: parts[0], country: parts[1]}
	default:
		return Locale{language: parts[0], country: parts[1], variant: parts[2]}
	}
}
