package services

import "strings"

// safeName prepares a user-supplied value for use inside a download
// filename: accents folded, whitespace runs collapsed to underscores, and
// characters the common filesystems reject stripped. Empty input falls back
// to the given placeholder.
func safeName(s, fallback string) string {
	s = StripDiacritics(NormalizeDisplay(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return fallback
	}
	return out
}
