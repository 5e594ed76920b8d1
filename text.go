package readaloud

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText canonicalizes text for comparison: case-folded, whitespace
// collapsed to single spaces, trimmed. Duplicate detection compares
// normalized forms.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// CollapseWhitespace collapses runs of whitespace to single spaces and trims,
// preserving case. Extracted unit text is stored in this form.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
