package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yeoyeo/realty-api/internal/apierrors"
	"github.com/yeoyeo/realty-api/internal/listings"
	"github.com/yeoyeo/realty-api/internal/middleware"
	"github.com/yeoyeo/realty-api/internal/models"
	"github.com/yeoyeo/realty-api/internal/search"
)

// ListingsHandler handles listing search and suggestion requests.
type ListingsHandler struct {
	store *listings.Store
}

// NewListingsHandler creates a new ListingsHandler instance.
func NewListingsHandler(store *listings.Store) *ListingsHandler {
	return &ListingsHandler{
		store: store,
	}
}

// SearchRequest represents the query parameters for the search endpoint.
// The structured filters narrow the snapshot before the free-text query
// runs, in the board's fixed order: type, complex, size class, ranges.
type SearchRequest struct {
	Q        string   `form:"q"`
	Type     string   `form:"type"`
	Complex  string   `form:"complex"`
	Size     string   `form:"size"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,min=0"`
	MinSize  *float64 `form:"min_size" binding:"omitempty,min=0"`
	MaxSize  *float64 `form:"max_size" binding:"omitempty,min=0"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=recent price-asc price-desc size-asc size-desc"`
}

// SuggestRequest represents the query parameters for the suggest endpoint.
type SuggestRequest struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=20"`
}

// SearchResponse represents the response for the search endpoint.
type SearchResponse struct {
	Listings  []models.Listing `json:"listings"`
	Count     int              `json:"count"`
	Source    string           `json:"source"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SuggestResponse represents the response for the suggest endpoint.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Search handles GET /api/v1/listings endpoint.
// It filters the current listing snapshot by the query and orders the
// result by the requested sort key.
func (h *ListingsHandler) Search(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	snapshot, source, updatedAt := h.store.Snapshot()

	results := search.FilterByType(snapshot, req.Type)
	results = search.FilterByComplex(results, req.Complex)
	results = search.FilterBySize(results, req.Size)
	results = search.FilterByPriceRange(results, req.MinPrice, req.MaxPrice)
	results = search.FilterBySizeRange(results, req.MinSize, req.MaxSize)
	results = search.Search(results, req.Q)
	if req.Sort != "" {
		results = search.Sort(results, search.SortOption(req.Sort))
	}

	if log != nil {
		log.Info("Processing listing search", map[string]interface{}{
			"query":   req.Q,
			"sort":    req.Sort,
			"matches": len(results),
		})
	}

	c.JSON(http.StatusOK, SearchResponse{
		Listings:  results,
		Count:     len(results),
		Source:    source,
		UpdatedAt: updatedAt,
	})
}

// Suggest handles GET /api/v1/listings/suggest endpoint.
// It returns up to limit autocomplete candidates for the query.
func (h *ListingsHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	if req.Limit == 0 {
		req.Limit = search.DefaultSuggestionLimit
	}

	snapshot, _, _ := h.store.Snapshot()

	c.JSON(http.StatusOK, SuggestResponse{
		Suggestions: search.Suggest(snapshot, req.Q, req.Limit),
	})
}
