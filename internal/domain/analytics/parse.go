package analytics

import (
	"strconv"
	"strings"
)

// ParseNumber converts user-entered cell text to a number. It strips every
// character that is not a digit, comma, period, or minus sign, normalizes a
// decimal comma to a period, and parses the remainder as a decimal.
//
// Returns 0 for empty or unparseable input. Grid cells are free text, so a
// malformed entry must degrade to a zero contribution rather than abort the
// whole aggregation; this is the single place that fallback policy lives.
//
// Every comma is treated as a decimal separator, so thousands-grouped input
// like "1,000.5" ends up with two separators and parses as 0. Weights and
// reps in a training grid never reach four digits, so grouped input falls
// under the malformed-entry rule rather than getting locale handling.
func ParseNumber(text string) float64 {
	if text == "" {
		return 0
	}

	var cleaned strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			cleaned.WriteRune(r)
		}
	}

	normalized := strings.ReplaceAll(cleaned.String(), ",", ".")
	num, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return num
}

// ParseRPE converts an RPE cell to a number, accepting hyphen-delimited
// ranges like "6-7.5". When two or more non-empty hyphen-separated parts are
// present the last (upper bound) part is used; otherwise the text falls
// through to ParseNumber semantics, including the zero-on-failure rule.
func ParseRPE(text string) float64 {
	if strings.Contains(text, "-") {
		var parts []string
		for _, p := range strings.Split(text, "-") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			return ParseNumber(parts[len(parts)-1])
		}
	}
	return ParseNumber(text)
}
