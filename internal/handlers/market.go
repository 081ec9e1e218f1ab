package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeoyeo/realty-api/internal/market"
)

// MarketHandler serves the aggregated market indicators.
type MarketHandler struct {
	service *market.Service
}

// NewMarketHandler creates a new MarketHandler instance.
func NewMarketHandler(service *market.Service) *MarketHandler {
	return &MarketHandler{
		service: service,
	}
}

// Get handles GET /api/v1/market endpoint.
// Serves the latest refreshed snapshot; before the first refresh this is
// the hardcoded fallback set, so the endpoint never fails.
func (h *MarketHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Current())
}
