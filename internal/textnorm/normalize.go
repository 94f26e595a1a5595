// Package textnorm reduces raw paper text to its content-bearing tokens.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
)

var (
	// Bracketed citation-number groups: [12], [3, 7], [1-4].
	citationRe = regexp.MustCompile(`\[\d+(?:\s*[,\x{2013}-]\s*\d+)*\]`)
	// Anything that is not a letter, digit or whitespace.
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips citation markers, punctuation and English stopwords and
// collapses whitespace. Empty or whitespace-only input yields "".
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := citationRe.ReplaceAllString(raw, " ")
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	s = stopwords.CleanString(s, "en", false)

	return strings.TrimSpace(s)
}
