// Package listings turns the proxy's CSV document into typed Listing
// records and keeps the current in-memory snapshot the search endpoints
// serve from. Resolution runs its own fallback chain so a broken
// upstream never empties the board.
package listings

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/models"
)

// Fixed column positions in the upstream sheet. Column 0 is a blank
// spacer column.
const (
	colComplex  = 1
	colUnit     = 2
	colType     = 3
	colPrice    = 4
	colSize     = 5
	colSizeAlt  = 6
	colFeatures = 9

	minColumns = 11
)

// defaultCategory groups every sheet-sourced listing; the board is a
// single-complex board.
const defaultCategory = "unicity"

// ParseCSV converts CSV text into Listings. Row 0 is the header and is
// skipped; blank rows, rows with fewer than 11 columns, and rows missing
// a complex name or type are dropped. Field-level problems never abort
// the batch.
func ParseCSV(csvText string) []models.Listing {
	lines := strings.Split(csvText, "\n")
	listings := make([]models.Listing, 0, len(lines))

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		values := splitCSVLine(line)
		if len(values) < minColumns {
			continue
		}

		l := models.Listing{
			Complex:  values[colComplex],
			Unit:     values[colUnit],
			Type:     values[colType],
			Price:    values[colPrice],
			Size:     sizeFromRow(values),
			Features: values[colFeatures],
			Category: defaultCategory,
		}
		if l.Complex == "" || l.Type == "" {
			continue
		}

		listings = append(listings, l)
	}

	return listings
}

// sizeFromRow prefers the 평형 column, falling back to the 타입 column
// when blank, and strips the 평 glyph either way.
func sizeFromRow(values []string) string {
	size := values[colSize]
	if size == "" && len(values) > colSizeAlt {
		size = values[colSizeAlt]
	}
	return strings.TrimSuffix(size, "평")
}

// splitCSVLine splits one CSV line on commas, honoring double-quoted
// fields: quotes toggle an in-quotes mode and commas inside quotes are
// not delimiters. Fields are trimmed. The upstream sheet emits bare
// quotes mid-field, which stricter CSV readers reject, so the tolerant
// toggle is deliberate.
func splitCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	result = append(result, strings.TrimSpace(current.String()))

	return result
}
