package domain

import "regexp"

var (
	// linkURLPattern is the shape accepted on creation: http(s)://, then
	// non-whitespace containing at least one dot.
	linkURLPattern = regexp.MustCompile(`^https?://\S+\.\S+`)

	// shortURLPattern is the looser shape accepted from a shortening provider.
	shortURLPattern = regexp.MustCompile(`^https?://\S+`)
)

// ValidLinkURL reports whether raw can be shortened.
func ValidLinkURL(raw string) bool {
	return raw != "" && linkURLPattern.MatchString(raw)
}

// ValidShortURL reports whether raw looks like an absolute http(s) short URL.
func ValidShortURL(raw string) bool {
	return raw != "" && shortURLPattern.MatchString(raw)
}
