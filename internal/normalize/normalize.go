// Package normalize provides canonical forms for user-supplied text.
package normalize

import (
	"regexp"
	"strings"
)

// Runs of whitespace inside a tag collapse to a single hyphen.
var whitespaceRe = regexp.MustCompile(`\s+`)

// TagName converts raw tag input to its canonical name.
// The canonical name is the source of truth for tag identity.
//
// Rules:
//  1. Trim leading/trailing whitespace
//  2. Replace internal whitespace runs with a single hyphen
//
// Case is preserved: "Sci-Fi" and "sci-fi" are distinct tags.
//
// Examples:
//
//	" Sci Fi "   → "Sci-Fi"
//	"slow  burn" → "slow-burn"
//	"Fantasy"    → "Fantasy"
func TagName(input string) string {
	s := strings.TrimSpace(input)
	return whitespaceRe.ReplaceAllString(s, "-")
}
