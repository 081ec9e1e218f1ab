package search

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/models"
)

// Unit glyphs stripped from a term for one retry when direct matching
// fails, so "41평" can match a size column that stores bare "41".
var unitSuffixes = []string{"평", "동", "층", "호"}

// Search filters listings by a free-text query. A blank query returns
// the input unchanged. Every tokenized term must match at least one of
// the six searchable fields (complex, type, size, features, unit, price),
// directly or after a trailing unit glyph is stripped. If superlative
// keywords occurred and more than one listing survives field filtering,
// the result is narrowed to the price minimum and/or maximum, minimum
// first, then maximum over the already-narrowed set.
func Search(listings []models.Listing, query string) []models.Listing {
	if strings.TrimSpace(query) == "" {
		return listings
	}

	q := Tokenize(query)

	filtered := listings
	if len(q.Terms) > 0 {
		filtered = make([]models.Listing, 0, len(listings))
		for _, l := range listings {
			if matchesAllTerms(l, q.Terms) {
				filtered = append(filtered, l)
			}
		}
	}

	// A single or empty result needs no narrowing.
	if len(filtered) <= 1 {
		return filtered
	}
	if q.WantCheapest {
		filtered = narrowToExtremum(filtered, false)
	}
	if q.WantPriciest {
		filtered = narrowToExtremum(filtered, true)
	}
	return filtered
}

func matchesAllTerms(l models.Listing, terms []string) bool {
	fields := [6]string{l.Complex, l.Type, l.Size, l.Features, l.Unit, l.Price}

	for _, term := range terms {
		if matchesAnyField(fields, term) {
			continue
		}
		// Retry once with a trailing unit glyph stripped.
		stripped, ok := stripUnitSuffix(term)
		if !ok || !matchesAnyField(fields, stripped) {
			return false
		}
	}
	return true
}

func matchesAnyField(fields [6]string, term string) bool {
	for _, f := range fields {
		if Matches(f, term) {
			return true
		}
	}
	return false
}

func stripUnitSuffix(term string) (string, bool) {
	for _, suffix := range unitSuffixes {
		if rest, found := strings.CutSuffix(term, suffix); found && rest != "" {
			return rest, true
		}
	}
	return term, false
}

// narrowToExtremum keeps the listings whose parsed price equals the
// minimum (or maximum) parsed price of the set.
func narrowToExtremum(listings []models.Listing, max bool) []models.Listing {
	extreme := ParsePrice(listings[0].Price)
	for _, l := range listings[1:] {
		p := ParsePrice(l.Price)
		if (max && p > extreme) || (!max && p < extreme) {
			extreme = p
		}
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if ParsePrice(l.Price) == extreme {
			out = append(out, l)
		}
	}
	return out
}
