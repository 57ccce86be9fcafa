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

package strutil

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const greekLanguage = "el"

// titleCaseTag returns the tag whose casing rule is used for title-casing
// paths. Greek uppercasing strips accents, so titles of Greek text use the
// neutral rule to keep them; this is an explicit carve-out for Greek, not a
// general mechanism.
func titleCaseTag(tag language.Tag) language.Tag {
	if base, _ := tag.Base(); base.String() == greekLanguage {
		return language.Und
	}
	return tag
}

// IsIdenticalAfterUpcase reports whether every letter in s is already
// uppercase. Non-letter code points are ignored. Callers use it to skip
// a capitalization pass that would not change the text.
func IsIdenticalAfterUpcase(s string) bool {
	for _, cp := range s {
		if unicode.IsLetter(cp) && !unicode.IsUpper(cp) {
			return false
		}
	}
	return true
}

// IsIdenticalAfterDowncase reports whether every letter in s is already
// lowercase. Non-letter code points are ignored.
func IsIdenticalAfterDowncase(s string) bool {
	for _, cp := range s {
		if unicode.IsLetter(cp) && !unicode.IsLower(cp) {
			return false
		}
	}
	return true
}

// CapitalizeFirstCodePoint uppercases the first code point of s under the
// title-casing rule for tag, leaving the rest of the string unchanged.
// Strings of at most one code point are uppercased entirely.
func CapitalizeFirstCodePoint(s string, tag language.Tag) string {
	upper := cases.Upper(titleCaseTag(tag))
	if utf8.RuneCountInString(s) <= 1 {
		return upper.String(s)
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + s[size:]
}

// SeparatorSet is a sorted set of code points treated as word boundaries
// for capitalization. Build one with NewSeparatorSet or from any ascending
// []rune; Contains assumes the order.
type SeparatorSet []rune

// NewSeparatorSet builds a separator set from the code points of the given
// string, e.g. " -'" for space, hyphen and apostrophe.
func NewSeparatorSet(separators string) SeparatorSet {
	return SeparatorSet(SortedCodePointArray(separators))
}

// Contains reports whether cp is a separator, by binary search.
func (set SeparatorSet) Contains(cp rune) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i] >= cp })
	return i < len(set) && set[i] == cp
}

// IsIdenticalAfterCapitalizeEachWord reports whether s already has every
// word capitalized with the rest lowercase, where words are delimited by
// the separator set. It simulates CapitalizeEachWord without allocating:
// the result is true exactly when CapitalizeEachWord would return s
// unchanged, for text within the simple one-to-one case mappings.
func IsIdenticalAfterCapitalizeEachWord(s string, separators SeparatorSet) bool {
	needsCapsNext := true
	for _, cp := range s {
		if unicode.IsLetter(cp) {
			if (needsCapsNext && !unicode.IsUpper(cp)) || (!needsCapsNext && !unicode.IsLower(cp)) {
				return false
			}
		}
		// A capital letter is needed right after every separator.
		needsCapsNext = separators.Contains(cp)
	}
	return true
}

// CapitalizeEachWord returns s with the first code point of every word
// uppercased and the rest lowercased under tag's casing rules, where words
// are delimited by the separator set.
//
// TODO: like CapitalizeFirstCodePoint, this gets the Dutch IJ digraph
// wrong: both letters should be capitalized together at a word start.
func CapitalizeEachWord(s string, separators SeparatorSet, tag language.Tag) string {
	upper := cases.Upper(tag)
	lower := cases.Lower(tag)

	var builder strings.Builder
	builder.Grow(len(s))
	needsCapsNext := true
	for _, cp := range s {
		if needsCapsNext {
			builder.WriteString(upper.String(string(cp)))
		} else {
			builder.WriteString(lower.String(string(cp)))
		}
		needsCapsNext = separators.Contains(cp)
	}
	return builder.String()
}
