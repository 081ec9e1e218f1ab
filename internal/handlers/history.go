package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yeoyeo/realty-api/internal/apierrors"
	"github.com/yeoyeo/realty-api/internal/history"
)

// HistoryHandler handles search history requests.
type HistoryHandler struct {
	store *history.Store
}

// NewHistoryHandler creates a new HistoryHandler instance.
func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{
		store: store,
	}
}

// SaveHistoryRequest represents the body of the history save endpoint.
type SaveHistoryRequest struct {
	Query string `json:"query" binding:"required"`
}

// HistoryResponse represents the response for history read endpoints.
type HistoryResponse struct {
	Queries []string `json:"queries"`
}

// Get handles GET /api/v1/history endpoint.
// Returns the saved queries, most recent first. Storage trouble yields
// an empty list rather than an error.
func (h *HistoryHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{
		Queries: h.store.GetAll(),
	})
}

// Save handles POST /api/v1/history endpoint.
// Records the query at the front of the history and returns the updated
// list.
func (h *HistoryHandler) Save(c *gin.Context) {
	var req SaveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	h.store.Save(req.Query)

	c.JSON(http.StatusOK, HistoryResponse{
		Queries: h.store.GetAll(),
	})
}

// Clear handles DELETE /api/v1/history endpoint.
func (h *HistoryHandler) Clear(c *gin.Context) {
	h.store.Clear()
	c.Status(http.StatusNoContent)
}
