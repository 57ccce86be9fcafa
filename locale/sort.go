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
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders locales alphabetically by display name for settings
// screens. The primary key is the display name rendered by the injected
// provider, compared case-insensitively under the collation rules of the
// system display tag. Equal locales compare equal; unequal locales with
// colliding display names are tie-broken by canonical string, so the order
// is total, consistent with ==, and reproducible across processes.
type Sorter struct {
	names DisplayNameProvider
	coll  *collate.Collator
}

// NewSorter creates a sorter that collates display names under systemTag.
func NewSorter(names DisplayNameProvider, systemTag language.Tag) *Sorter {
	return &Sorter{
		names: names,
		coll:  collate.New(systemTag, collate.IgnoreCase),
	}
}

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
func (s *Sorter) Compare(a, b Locale) int {
	if a == b {
		return 0
	}
	if r := s.coll.CompareString(s.names.DisplayName(a), s.names.DisplayName(b)); r != 0 {
		return r
	}
	return strings.Compare(a.String(), b.String())
}

// Less reports whether a orders before b.
func (s *Sorter) Less(a, b Locale) bool {
	return s.Compare(a, b) < 0
}

// Sort sorts the slice in place by display name.
func (s *Sorter) Sort(locales []Locale) {
	sort.Slice(locales, func(i, j int) bool {
		return s.Less(locales[i], locales[j])
	})
}
