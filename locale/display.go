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
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/jplu/imetext/strutil"
)

// DisplayNameProvider maps a locale to a human-readable display name. The
// host application injects an implementation; DisplayNames is the default
// one backed by CLDR data.
type DisplayNameProvider interface {
	DisplayName(l Locale) string
}

// DisplayNames renders localized locale names, e.g. "en_US" as
// "American English" when displaying in English and "anglais américain"
// when displaying in French. The first code point of every rendered name is
// capitalized in the display locale, so names are presentable in list UIs
// regardless of the language's own capitalization convention.
//
// An optional override table maps canonical locale strings to fixed display
// names, for locales whose CLDR name is unsuitable for the host product.
type DisplayNames struct {
	tag       language.Tag
	names     display.Namer
	languages display.Namer
	overrides map[string]string
}

// NewDisplayNames creates a provider that renders names in the given
// display tag. overrides may be nil.
func NewDisplayNames(displayIn language.Tag, overrides map[string]string) *DisplayNames {
	return &DisplayNames{
		tag:       displayIn,
		names:     display.Tags(displayIn),
		languages: display.Languages(displayIn),
		overrides: overrides,
	}
}

// DisplayName returns the full localized name of the locale, e.g.
// "English (United States)". Locales unknown to the display data fall back
// to their canonical string.
func (d *DisplayNames) DisplayName(l Locale) string {
	if name, ok := d.overrides[l.String()]; ok {
		return name
	}
	return d.render(d.names, l)
}

// LanguageDisplayName returns the localized name of the locale's language
// alone, e.g. "English" for "en_US".
func (d *DisplayNames) LanguageDisplayName(l Locale) string {
	if name, ok := d.overrides[l.Language()]; ok {
		return name
	}
	return d.render(d.languages, l)
}

func (d *DisplayNames) render(namer display.Namer, l Locale) string {
	name := ""
	if namer != nil {
		name = namer.Name(l.Tag())
	}
	if name == "" {
		name = l.String()
	}
	return strutil.CapitalizeFirstCodePoint(name, d.tag)
}
