package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, and recomposes.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics returns s with accents removed ("fábrica" → "fabrica").
func StripDiacritics(s string) string {
	out, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeDisplay converts any JSON scalar to a display string: nil becomes
// empty, surrounding whitespace is trimmed, and internal runs of whitespace
// collapse to single spaces. Case and accents are preserved. Idempotent.
func NormalizeDisplay(v any) string {
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeKey produces the canonical matching form of a value: display
// normalization plus diacritic folding and lowercasing. Used for grouping
// keys (unique line counts) and filename parts, never for cell display.
func NormalizeKey(v any) string {
	return strings.ToLower(StripDiacritics(NormalizeDisplay(v)))
}

// ParseAmount converts any JSON scalar to a float64, defaulting to 0 on
// nil, malformed strings, or non-numeric types. It never fails: malformed
// numeric input in a line item must not abort report generation.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ParseCount is ParseAmount truncated to an integer (quantities sent as
// "3.0" or 3.7 both count as 3).
func ParseCount(v any) int {
	return int(ParseAmount(v))
}

// Accepted date layouts, tried in order. The frontend sends ISO strings
// (with or without a zone marker); older clients send dd-mm-yy.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-06",
}

// ParseDate parses a form date, falling back to now when the value is
// missing or malformed. Malformed dates must never abort report generation.
func ParseDate(v any, now time.Time) time.Time {
	raw := NormalizeDisplay(v)
	if raw == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}

// FormatDateDDMMYY renders a date the way every sheet and filename does.
func FormatDateDDMMYY(t time.Time) string {
	return t.Format("02-01-06")
}
