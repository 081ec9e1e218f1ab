package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchRequest(t *testing.T, handler *ListingsHandler, query string) (*httptest.ResponseRecorder, SearchResponse) {
	t.Helper()

	router := setupTestRouter()
	router.GET("/api/v1/listings", handler.Search)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response SearchResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	}
	return w, response
}

func TestListingsHandler_Search_NoQueryReturnsFullSnapshot(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	w, response := searchRequest(t, handler, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, response.Count)
	assert.Len(t, response.Listings, 3)
	assert.Equal(t, "proxy", response.Source)
	assert.False(t, response.UpdatedAt.IsZero())
}

func TestListingsHandler_Search_FiltersByQuery(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	w, response := searchRequest(t, handler, "q="+url.QueryEscape("매매"))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, response.Count)
	assert.Equal(t, "유니시티1단지", response.Listings[0].Complex)
}

func TestListingsHandler_Search_ChosungQuery(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	w, response := searchRequest(t, handler, "q="+url.QueryEscape("ㅇㄴㅅㅌ"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, response.Count)
}

func TestListingsHandler_Search_SortsByPrice(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	w, response := searchRequest(t, handler, "sort=price-asc")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 3, response.Count)
	// 5,000/250 parses to 0.5억, then 5억, then 8.5억.
	assert.Equal(t, "유니시티3단지", response.Listings[0].Complex)
	assert.Equal(t, "유니시티2단지", response.Listings[1].Complex)
	assert.Equal(t, "유니시티1단지", response.Listings[2].Complex)
}

func TestListingsHandler_Search_StructuredFilters(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	t.Run("type filter is exact", func(t *testing.T) {
		w, response := searchRequest(t, handler, "type="+url.QueryEscape("전세"))

		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, response.Count)
		assert.Equal(t, "유니시티2단지", response.Listings[0].Complex)
	})

	t.Run("type wildcard keeps everything", func(t *testing.T) {
		_, response := searchRequest(t, handler, "type="+url.QueryEscape("전체"))
		assert.Equal(t, 3, response.Count)
	})

	t.Run("complex filter is substring", func(t *testing.T) {
		_, response := searchRequest(t, handler, "complex="+url.QueryEscape("3단지"))
		require.Equal(t, 1, response.Count)
		assert.Equal(t, "유니시티3단지", response.Listings[0].Complex)
	})

	t.Run("price range narrows before free text", func(t *testing.T) {
		// 8.5억 and 5억 pass the floor; the 5,000/250 lease (0.5억) does
		// not, even though it matches the query text.
		_, response := searchRequest(t, handler, "q="+url.QueryEscape("유니시티")+"&min_price=1")
		assert.Equal(t, 2, response.Count)
	})

	t.Run("size range", func(t *testing.T) {
		_, response := searchRequest(t, handler, "min_size=30&max_size=35")
		require.Equal(t, 1, response.Count)
		assert.Equal(t, "유니시티2단지", response.Listings[0].Complex)
	})

	t.Run("size class filter", func(t *testing.T) {
		_, response := searchRequest(t, handler, "size=25")
		require.Equal(t, 1, response.Count)
		assert.Equal(t, "유니시티3단지", response.Listings[0].Complex)
	})

	t.Run("rejects negative price bound", func(t *testing.T) {
		w, _ := searchRequest(t, handler, "min_price=-1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListingsHandler_Search_RejectsUnknownSort(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	w, _ := searchRequest(t, handler, "sort=alphabetical")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestListingsHandler_Suggest(t *testing.T) {
	handler := NewListingsHandler(setupListingStore(t))

	router := setupTestRouter()
	router.GET("/api/v1/listings/suggest", handler.Suggest)

	tests := []struct {
		name     string
		query    string
		status   int
		expected []string
	}{
		{
			name:     "suggests matching complex names",
			query:    "q=" + url.QueryEscape("유니시티1"),
			status:   http.StatusOK,
			expected: []string{"유니시티1단지"},
		},
		{
			name:     "blank query suggests nothing",
			query:    "q=",
			status:   http.StatusOK,
			expected: []string{},
		},
		{
			name:   "rejects out-of-range limit",
			query:  "q=a&limit=100",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/suggest?"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}

			var response SuggestResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expected, response.Suggestions)
		})
	}
}
