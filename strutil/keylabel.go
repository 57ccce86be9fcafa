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
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CodeUnspecified is the key code returned when a shifted key has no
// single-code-point representation; the keyboard then falls back to the
// label form.
const CodeUnspecified rune = -13

const codeSpace rune = ' '

// isLetterKeyCode reports whether code is a text-producing key code rather
// than a negative control code. Every code point from space upward counts.
func isLetterKeyCode(code rune) bool {
	return code >= codeSpace
}

// TitleCaseKeyLabel uppercases a key label under the title-casing rule for
// tag, for rendering the shifted state of a key.
func TitleCaseKeyLabel(label string, tag language.Tag) string {
	return cases.Upper(titleCaseTag(tag)).String(label)
}

// TitleCaseKeyCode uppercases a single key code under the title-casing
// rule for tag. Control codes pass through unchanged; when uppercasing
// expands the code point to more than one (e.g. ß to SS), CodeUnspecified
// is returned.
func TitleCaseKeyCode(code rune, tag language.Tag) rune {
	if !isLetterKeyCode(code) {
		return code
	}
	label := TitleCaseKeyLabel(SingleCodePointString(code), tag)
	if CodePointCount(label) != 1 {
		return CodeUnspecified
	}
	cp, _ := utf8.DecodeRuneInString(label)
	return cp
}
