// Package sanitize normalizes free-text form input.
package sanitize

import "strings"

// Clean collapses every whitespace run to a single space and trims the
// ends. Total: never fails, empty in means empty out.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Section cleans a section label and strips leading zeros, so "01" and
// " 007" normalize to "1" and "7". A label that is all zeros stays "0".
func Section(s string) string {
	s = Clean(s)
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" && s != "" {
		return "0"
	}
	return trimmed
}
