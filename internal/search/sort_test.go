package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeoyeo/realty-api/internal/models"
)

func TestSort_PriceAscending(t *testing.T) {
	got := Sort(testListings(), SortPriceAsc)

	require.Len(t, got, 5)
	assert.Equal(t, "유니시티 어반브릭스", got[0].Complex) // 0.5억
	assert.Equal(t, "힐스테이트 에비뉴", got[1].Complex)  // 3.2억
	assert.Equal(t, "유니시티 3단지", got[4].Complex)   // 10.2억
}

func TestSort_PriceDescending(t *testing.T) {
	got := Sort(testListings(), SortPriceDesc)

	require.Len(t, got, 5)
	assert.Equal(t, "유니시티 3단지", got[0].Complex)
	assert.Equal(t, "유니시티 어반브릭스", got[4].Complex)
}

func TestSort_SizeAscending(t *testing.T) {
	got := Sort(testListings(), SortSizeAsc)

	assert.Equal(t, "15", got[0].Size)
	assert.Equal(t, "41", got[4].Size)
}

func TestSort_RecentPreservesOrder(t *testing.T) {
	listings := testListings()

	got := Sort(listings, SortRecent)

	assert.Equal(t, listings, got)
}

func TestSort_StableOnEqualPrices(t *testing.T) {
	listings := []models.Listing{
		{Complex: "B단지", Price: "5억"},
		{Complex: "A단지", Price: "3억"},
		{Complex: "C단지", Price: "3억"},
	}

	got := Sort(listings, SortPriceAsc)

	require.Len(t, got, 3)
	// A and C tie; A entered first and must stay first.
	assert.Equal(t, "A단지", got[0].Complex)
	assert.Equal(t, "C단지", got[1].Complex)
	assert.Equal(t, "B단지", got[2].Complex)
}

func TestSort_ReturnsNewSlice(t *testing.T) {
	listings := testListings()
	original := testListings()

	Sort(listings, SortPriceAsc)

	assert.Equal(t, original, listings)
}

func TestValidSortOption(t *testing.T) {
	for _, valid := range []string{"recent", "price-asc", "price-desc", "size-asc", "size-desc"} {
		assert.True(t, ValidSortOption(valid), valid)
	}
	assert.False(t, ValidSortOption("price"))
	assert.False(t, ValidSortOption(""))
}
