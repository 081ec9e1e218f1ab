package search

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/models"
)

// DefaultSuggestionLimit caps autocomplete suggestions when the caller
// does not specify a limit.
const DefaultSuggestionLimit = 5

// Suggest collects distinct complex names and type labels matching the
// unmodified query, in listing iteration order, capped at limit. A blank
// query yields nothing.
func Suggest(listings []models.Listing, query string, limit int) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)

	add := func(value string) {
		if _, dup := seen[value]; dup {
			return
		}
		seen[value] = struct{}{}
		suggestions = append(suggestions, value)
	}

	for _, l := range listings {
		if Matches(l.Complex, query) {
			add(l.Complex)
		}
		if Matches(l.Type, query) {
			add(l.Type)
		}
		if len(suggestions) >= limit {
			break
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
