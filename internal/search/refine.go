package search

import (
	"strings"

	"github.com/yeoyeo/realty-api/internal/models"
)

// TypeAll is the type-filter wildcard that keeps every listing.
const TypeAll = "전체"

// FilterByType keeps listings whose type label equals propertyType
// exactly. Blank or the 전체 wildcard returns the input unchanged.
func FilterByType(listings []models.Listing, propertyType string) []models.Listing {
	if propertyType == "" || propertyType == TypeAll {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Type == propertyType {
			out = append(out, l)
		}
	}
	return out
}

// FilterByComplex keeps listings whose complex name contains the given
// fragment. Blank returns the input unchanged.
func FilterByComplex(listings []models.Listing, complex string) []models.Listing {
	if complex == "" {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(l.Complex, complex) {
			out = append(out, l)
		}
	}
	return out
}

// FilterBySize keeps listings matching a size class. Matching is exact
// except for the board's known aliases: 35 and 56 carry A/B sub-types
// stored as a prefix, and 47(48) / 48(47) name the same dual-listed
// class in either order, bare numbers included.
func FilterBySize(listings []models.Listing, size string) []models.Listing {
	if size == "" {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if sizeClassMatches(l.Size, size) {
			out = append(out, l)
		}
	}
	return out
}

func sizeClassMatches(listingSize, size string) bool {
	switch size {
	case "35", "56":
		return strings.HasPrefix(listingSize, size)
	case "47(48)", "48(47)":
		switch listingSize {
		case "47(48)", "48(47)", "47", "48":
			return true
		}
		return false
	}
	return listingSize == size
}

// FilterByPriceRange keeps listings whose parsed price (in 억) falls
// inside the given bounds. A nil bound is open.
func FilterByPriceRange(listings []models.Listing, minPrice, maxPrice *float64) []models.Listing {
	if minPrice == nil && maxPrice == nil {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		price := ParsePrice(l.Price)
		if minPrice != nil && price < *minPrice {
			continue
		}
		if maxPrice != nil && price > *maxPrice {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterBySizeRange keeps listings whose parsed size (in 평) falls
// inside the given bounds. A nil bound is open.
func FilterBySizeRange(listings []models.Listing, minSize, maxSize *float64) []models.Listing {
	if minSize == nil && maxSize == nil {
		return listings
	}

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		size := ParseSize(l.Size)
		if minSize != nil && size < *minSize {
			continue
		}
		if maxSize != nil && size > *maxSize {
			continue
		}
		out = append(out, l)
	}
	return out
}
