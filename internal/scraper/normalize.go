package scraper

import "strings"

// Normalize collapses any run of whitespace (including newlines and tabs)
// to a single space and trims the ends. Empty input yields "".
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
