package search

import (
	"sort"

	"github.com/yeoyeo/realty-api/internal/models"
)

// SortOption selects a listing ordering.
type SortOption string

const (
	SortRecent    SortOption = "recent"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortSizeAsc   SortOption = "size-asc"
	SortSizeDesc  SortOption = "size-desc"
)

// ValidSortOption reports whether s names a known sort key.
func ValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortRecent, SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc:
		return true
	}
	return false
}

// Sort returns a new slice ordered by the given key. "recent" preserves
// the input order, which already encodes recency upstream. Sorting is
// stable: equal keys retain their relative input order.
func Sort(listings []models.Listing, by SortOption) []models.Listing {
	sorted := make([]models.Listing, len(listings))
	copy(sorted, listings)

	switch by {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) < ParsePrice(sorted[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].Price) > ParsePrice(sorted[j].Price)
		})
	case SortSizeAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParseSize(sorted[i].Size) < ParseSize(sorted[j].Size)
		})
	case SortSizeDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParseSize(sorted[i].Size) > ParseSize(sorted[j].Size)
		})
	}

	return sorted
}
