package search

import (
	"strconv"
	"strings"
)

// ParsePrice converts a string-encoded price into a comparable number in
// units of 억 (hundred million won). Two shapes occur upstream:
//
//	"8억 5,000"  -> 8.5   (lump sum: whole part plus 만-unit fraction)
//	"5,000/250"  -> 0.5   (deposit/monthly rent: deposit only is priced)
//
// Malformed input parses to 0; the function never fails.
func ParsePrice(s string) float64 {
	// Lease-with-rent prices only the deposit (left of the slash).
	main := strings.SplitN(s, "/", 2)[0]

	if strings.Contains(main, "억") {
		parts := strings.SplitN(main, "억", 2)
		eok := parseNumber(parts[0])
		var man float64
		if len(parts) > 1 {
			man = parseNumber(parts[1])
		}
		return eok + man/10000
	}

	return parseNumber(main) / 10000
}

// ParseSize converts a string-encoded floor-area class ("41평", "25") to
// a number, ignoring every non-digit/non-dot rune. Unparseable input
// yields 0.
func ParseSize(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// parseNumber parses a comma-grouped numeric fragment, returning 0 for
// anything unparseable.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
