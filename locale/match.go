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

// FindBest returns the candidate closest to target, scanning the candidate
// list once per specificity tier, most specific first:
//
//  1. exact equality
//  2. language, country and variant equal component-wise
//  3. language and country equal, variant ignored
//  4. language equal
//
// The first candidate satisfying the matched tier wins, so callers express
// priority through candidate order. Within a tier an earlier looser
// candidate never shadows a later tighter one; e.g. for target "en_US" and
// candidates ["en", "en_US"], the result is "en_US".
//
// The second tier is redundant with the first for well-formed locales; it
// is kept as an explicit tier for parity with platform locale equality,
// which may compare more than the three components.
//
// ok is false when no candidate shares even a language with the target.
func FindBest(target Locale, candidates []Locale) (best Locale, ok bool) {
	for _, c := range candidates {
		if c == target {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.language == target.language && c.country == target.country && c.variant == target.variant {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.language == target.language && c.country == target.country {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.language == target.language {
			return c, true
		}
	}
	return Locale{}, false
}
