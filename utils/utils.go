package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify turns a title into a URL-safe slug: lowercase, alphanumerics
// kept, everything else collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// SlugWithSuffix appends a numeric suffix for slug collisions
func SlugWithSuffix(slug string, n int64) string {
	return fmt.Sprintf("%s-%d", slug, n+1)
}
