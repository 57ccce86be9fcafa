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

import "strings"

// Comma-splittable text is similar to comma-separated values but has no
// escaping mechanism, so the individual values cannot contain a comma.
// Input-method subtype definitions use it for extra-value lists.
const commaSplitSeparator = ","

// ContainsInCommaSplittableText reports whether text appears as one of the
// comma-separated values in extraValues.
func ContainsInCommaSplittableText(text, extraValues string) bool {
	if extraValues == "" {
		return false
	}
	for _, value := range strings.Split(extraValues, commaSplitSeparator) {
		if value == text {
			return true
		}
	}
	return false
}

// RemoveFromCommaSplittableText removes every occurrence of text from the
// comma-separated values in extraValues. The input is returned unchanged
// when text does not occur.
func RemoveFromCommaSplittableText(text, extraValues string) string {
	if extraValues == "" {
		return ""
	}
	values := strings.Split(extraValues, commaSplitSeparator)
	kept := values[:0:0]
	for _, value := range values {
		if value != text {
			kept = append(kept, value)
		}
	}
	if len(kept) == len(values) {
		return extraValues
	}
	return strings.Join(kept, commaSplitSeparator)
}
