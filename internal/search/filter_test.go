package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeoyeo/realty-api/internal/models"
)

func testListings() []models.Listing {
	return []models.Listing{
		{Type: "매매", Complex: "유니시티 4단지", Size: "35", Unit: "405동 고층", Price: "8억 5,000", Features: "남향, 공원뷰", Category: "unicity"},
		{Type: "매매", Complex: "유니시티 3단지", Size: "41", Unit: "301동 중층", Price: "10억 2,000", Features: "코너, 조망 우수", Category: "unicity"},
		{Type: "전세", Complex: "유니시티 1단지", Size: "30", Unit: "110동 로얄층", Price: "7억 8,000", Features: "역세권", Category: "unicity"},
		{Type: "월세", Complex: "유니시티 어반브릭스", Size: "15", Unit: "1층 코너", Price: "5,000/250", Features: "유동인구 많음", Category: "all"},
		{Type: "매매", Complex: "힐스테이트 에비뉴", Size: "25", Unit: "A동 15층", Price: "3억 2,000", Features: "풀퍼니시드", Category: "all"},
	}
}

func TestSearch_BlankQueryIsIdentity(t *testing.T) {
	listings := testListings()

	assert.Equal(t, listings, Search(listings, ""))
	assert.Equal(t, listings, Search(listings, "   "))
}

func TestSearch_AllTermsMustMatch(t *testing.T) {
	listings := testListings()

	got := Search(listings, "매매 유니시티")

	require.Len(t, got, 2)
	assert.Equal(t, "유니시티 4단지", got[0].Complex)
	assert.Equal(t, "유니시티 3단지", got[1].Complex)
}

func TestSearch_CompactQueryMatchesSpacedEquivalent(t *testing.T) {
	listings := testListings()

	spaced := Search(listings, "매매 4단지 35평")
	compact := Search(listings, "매매4단지35평")

	require.Len(t, spaced, 1)
	assert.Equal(t, spaced, compact)
}

func TestSearch_UnitSuffixStrippedOnRetry(t *testing.T) {
	listings := testListings()

	// Size column stores bare "41"; the 평 glyph must be stripped for
	// the retry to land.
	got := Search(listings, "41평")

	require.Len(t, got, 1)
	assert.Equal(t, "유니시티 3단지", got[0].Complex)
}

func TestSearch_ChosungTermMatches(t *testing.T) {
	listings := testListings()

	got := Search(listings, "ㅎㅅㅌㅇㅌ")

	require.Len(t, got, 1)
	assert.Equal(t, "힐스테이트 에비뉴", got[0].Complex)
}

func TestSearch_NoMatchReturnsEmpty(t *testing.T) {
	got := Search(testListings(), "존재하지않는단지")
	assert.Empty(t, got)
}

func TestSearch_CheapestNarrowsToMinimumPrice(t *testing.T) {
	listings := testListings()

	got := Search(listings, "최저가")

	// "5,000/250" parses to 0.5억, the cheapest on the board.
	require.Len(t, got, 1)
	assert.Equal(t, "유니시티 어반브릭스", got[0].Complex)
}

func TestSearch_PriciestNarrowsToMaximumPrice(t *testing.T) {
	got := Search(testListings(), "최고가")

	require.Len(t, got, 1)
	assert.Equal(t, "유니시티 3단지", got[0].Complex)
}

func TestSearch_CheapestKeepsAllTiedListings(t *testing.T) {
	listings := []models.Listing{
		{Complex: "A단지", Price: "3억"},
		{Complex: "B단지", Price: "5억"},
		{Complex: "C단지", Price: "3억"},
	}

	got := Search(listings, "최저가")

	require.Len(t, got, 2)
	assert.Equal(t, "A단지", got[0].Complex)
	assert.Equal(t, "C단지", got[1].Complex)
}

func TestSearch_ExtremumSkippedForSingleOrEmptyResult(t *testing.T) {
	single := []models.Listing{{Complex: "A단지", Price: "3억"}}
	assert.Equal(t, single, Search(single, "최저가"))

	assert.Empty(t, Search(nil, "최저가"))
}

func TestSearch_BothSuperlativesNarrowSequentially(t *testing.T) {
	listings := []models.Listing{
		{Complex: "A단지", Price: "3억"},
		{Complex: "B단지", Price: "5억"},
		{Complex: "C단지", Price: "3억"},
	}

	// Min narrows to the two 3억 listings; max over that narrowed set
	// keeps both (they tie). This pins the sequential behavior.
	got := Search(listings, "최저가 최고가")

	require.Len(t, got, 2)
	assert.Equal(t, "A단지", got[0].Complex)
	assert.Equal(t, "C단지", got[1].Complex)
}

func TestSearch_SuperlativeWithTermsFiltersFirst(t *testing.T) {
	got := Search(testListings(), "매매 최저가")

	// Among 매매 listings the cheapest is 힐스테이트 에비뉴 (3.2억).
	require.Len(t, got, 1)
	assert.Equal(t, "힐스테이트 에비뉴", got[0].Complex)
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	listings := testListings()
	original := testListings()

	Search(listings, "매매")
	Search(listings, "최저가")

	assert.Equal(t, original, listings)
}
