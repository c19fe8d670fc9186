package service

import "strings"

// Grade reports whether actual matches expected after trimming whitespace and folding case.
// Only exact matches count.
func Grade(expected, actual string) bool {
	return normalize(expected) == normalize(actual)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
