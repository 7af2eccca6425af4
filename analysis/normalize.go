package analysis

import (
	"regexp"
	"strings"
)

var (
	sourceMarker = regexp.MustCompile(`--- From .*? ---`)
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	anyWS        = regexp.MustCompile(`\s+`)
)

// Normalize strips source markers, unifies line endings to LF, collapses
// runs of spaces and tabs, and trims the result. The passes repeat until the
// text is stable, so removing one marker can never leave another behind and
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := raw
	for {
		next := normalizePass(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizePass(s string) string {
	s = sourceMarker.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(anyWS.ReplaceAllString(s, " "))
}
