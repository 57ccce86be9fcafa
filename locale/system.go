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

package locale

import (
	"os"
	"strings"
)

// Provider supplies the list of locales configured on the host, ordered by
// user preference. The host platform owns locale discovery; tests and
// non-POSIX hosts substitute their own implementation.
type Provider interface {
	Locales() []Locale
}

// envVars are consulted in precedence order, following POSIX locale
// environment semantics.
var envVars = [...]string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvProvider derives locales from the POSIX locale environment variables
// LC_ALL, LC_MESSAGES and LANG, in that order of precedence. Values such as
// "en_US.UTF-8" or "de_DE@euro" have their charset and modifier suffixes
// stripped before parsing; the "C" and "POSIX" pseudo-locales are skipped.
type EnvProvider struct {
	// Getenv substitutes for os.Getenv when non-nil.
	Getenv func(key string) string
}

// Locales returns the configured locales, deduplicated, most preferred
// first. The result is empty when no locale variable is set.
func (p *EnvProvider) Locales() []Locale {
	getenv := p.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var locales []Locale
	seen := make(map[Locale]bool)
	for _, key := range envVars {
		l, ok := parseEnvValue(getenv(key))
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		locales = append(locales, l)
	}
	return locales
}

// parseEnvValue parses a POSIX locale value like "en_US.UTF-8@euro" into a
// Locale, reporting false for empty values and pseudo-locales.
func parseEnvValue(value string) (Locale, bool) {
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return Locale{}, false
	}
	return FromString(value), true
}
