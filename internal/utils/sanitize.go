package utils

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText trims surrounding whitespace, strips HTML tags and escapes the
// remainder. Applied to every user-supplied text field before storage.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeTextPtr sanitizes an optional field, mapping empty results to nil.
func SanitizeTextPtr(s string) *string {
	clean := SanitizeText(s)
	if clean == "" {
		return nil
	}
	return &clean
}
