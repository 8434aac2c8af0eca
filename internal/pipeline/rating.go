package pipeline

import (
	"strconv"
	"strings"
)

// ParseRating converts a rating cell onto the 0-100 scale. Values in (0,1]
// are read as fractions and scaled by 100, anything else parseable passes
// through unchanged. A trailing percent sign is ignored. Returns ok=false for
// missing or non-numeric input; the function never fails.
func ParseRating(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	if v > 0 && v <= 1 {
		return v * 100, true
	}
	return v, true
}

// FormatRating renders a parsed rating for the output table.
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
