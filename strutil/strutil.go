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

// Package strutil provides code-point-aware string utilities for
// input-method text handling: counting and extracting Unicode code points,
// case-identity checks, and locale-aware capitalization.
//
// Every operation iterates by code point, never by UTF-8 or UTF-16 code
// unit, so text containing supplementary-plane characters is handled
// correctly throughout. Locale-sensitive operations take a
// golang.org/x/text language.Tag and apply that language's casing rules.
//
// All functions are pure and safe for concurrent use.
package strutil

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// CodePointCount returns the number of Unicode code points in s, 0 for the
// empty string. This differs from len(s) whenever s contains multi-byte
// characters.
func CodePointCount(s string) int {
	return utf8.RuneCountInString(s)
}

// SingleCodePointString returns the string containing exactly the given
// code point.
func SingleCodePointString(cp rune) string {
	return string(cp)
}

// CodePointArray returns the code points of s in order. The result always
// has exactly CodePointCount(s) elements.
func CodePointArray(s string) []rune {
	return codePointRange(s, 0, len(s), false)
}

// CodePointArrayRange returns the code points of the half-open byte range
// s[start:end]. Out-of-range offsets are a programming error and panic.
func CodePointArrayRange(s string, start, end int) []rune {
	return codePointRange(s, start, end, false)
}

// LowerCodePointArrayRange is CodePointArrayRange with each code point
// lowercased in the same pass. The fold is the locale-insensitive simple
// case mapping; use the case functions in this package where locale rules
// matter.
func LowerCodePointArrayRange(s string, start, end int) []rune {
	return codePointRange(s, start, end, true)
}

// SortedCodePointArray returns the code points of s sorted ascending, the
// form expected by NewSeparatorSet and other binary-searched lookups.
func SortedCodePointArray(s string) []rune {
	cps := CodePointArray(s)
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	return cps
}

func codePointRange(s string, start, end int, downcase bool) []rune {
	if start < 0 || end < start || end > len(s) {
		panic(fmt.Sprintf("strutil: code point range [%d:%d) out of bounds for length %d", start, end, len(s)))
	}
	cps := make([]rune, 0, end-start)
	for i := start; i < end; {
		cp, size := utf8.DecodeRuneInString(s[i:end])
		if downcase {
			cp = unicode.ToLower(cp)
		}
		cps = append(cps, cp)
		i += size
	}
	return cps
}
