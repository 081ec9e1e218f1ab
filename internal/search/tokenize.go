package search

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/hangul"
)

// Superlative keyword vocabularies. Longer keywords come first so that
// removing "최저" cannot leave a dangling "가" behind when the user typed
// "최저가".
var (
	minKeywords = []string{"최저가", "가장싼", "제일싼", "최저"}
	maxKeywords = []string{"최고가", "가장비싼", "제일비싼", "최고"}
)

// Query is the tokenized form of a raw search string.
type Query struct {
	// Terms are the non-empty search terms, AND-combined by the filter.
	Terms []string
	// WantCheapest / WantPriciest record that a superlative keyword from
	// the respective family occurred anywhere in the raw text. Both may
	// be set at once; narrowing resolves that downstream.
	WantCheapest bool
	WantPriciest bool
}

// Tokenize splits a raw free-text query into search terms. Superlative
// keywords are extracted and removed first. If the remaining text carries
// whitespace it is split on whitespace runs; otherwise spaces are
// inserted at script-boundary transitions so compact queries like
// "매매1단지41평" still break into usable terms.
func Tokenize(raw string) Query {
	var q Query

	text := raw
	for _, kw := range minKeywords {
		if strings.Contains(text, kw) {
			q.WantCheapest = true
			text = strings.ReplaceAll(text, kw, " ")
		}
	}
	for _, kw := range maxKeywords {
		if strings.Contains(text, kw) {
			q.WantPriciest = true
			text = strings.ReplaceAll(text, kw, " ")
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return q
	}

	if !strings.ContainsAny(text, " \t\n") {
		text = splitScriptRuns(text)
	}
	q.Terms = strings.Fields(text)

	return q
}

// splitScriptRuns inserts a space where one script run ends and another
// begins: after a Hangul syllable followed by a digit, and at
// Hangul/Latin transitions in both directions. A digit followed by a
// Hangul syllable is not a boundary: "1단지" and "41평" must survive as
// single terms.
func splitScriptRuns(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && isScriptBoundary(prev, r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isScriptBoundary(prev, cur rune) bool {
	switch {
	case hangul.IsSyllable(prev) && isDigit(cur):
		return true
	case hangul.IsSyllable(prev) && isLatin(cur):
		return true
	case isLatin(prev) && hangul.IsSyllable(cur):
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLatin(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
