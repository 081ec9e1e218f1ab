// Package search implements the listing search pipeline: free-text
// tokenization, field matching with 초성 shorthand support, tolerant
// price/size parsing, AND filtering with superlative narrowing, stable
// sorting, and autocomplete suggestions. Every function is pure and
// returns new values; input slices are never mutated.
package search

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/hangul"
)

// Matches reports whether a single search term matches a single text
// field. An empty term matches everything. Matching is case-insensitive
// substring containment, tried first on the literal text and then on the
// chosung skeletons of both sides, so "ㅇㄴㅅㅌ" finds "유니시티".
func Matches(target, term string) bool {
	if term == "" {
		return true
	}

	if strings.Contains(strings.ToLower(target), strings.ToLower(term)) {
		return true
	}

	return strings.Contains(hangul.Chosung(target), hangul.Chosung(term))
}
