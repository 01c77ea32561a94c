package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean strips all HTML from user input and trims surrounding whitespace.
// Entities are unescaped afterwards so plain text like "Logo & Poster Design"
// survives the round trip.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// CleanPtr cleans an optional field, dropping it entirely when nothing is left.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Clean(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
