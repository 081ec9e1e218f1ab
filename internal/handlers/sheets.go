package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeoyeo/realty-api/internal/middleware"
	"github.com/yeoyeo/realty-api/internal/sheets"
)

const (
	// SheetSourceHeader names the response header carrying the tier that
	// produced the CSV body.
	SheetSourceHeader = "X-Sheets-Source"

	// SheetCacheHeader names the response header telling whether the body
	// was served from the in-memory cache.
	SheetCacheHeader = "X-Sheets-Cache"
)

// SheetsHandler serves the Google Sheets CSV proxy endpoint.
type SheetsHandler struct {
	service *sheets.Service
}

// NewSheetsHandler creates a new SheetsHandler instance.
func NewSheetsHandler(service *sheets.Service) *SheetsHandler {
	return &SheetsHandler{
		service: service,
	}
}

// GetSheet handles GET /api/sheets endpoint.
// Resolution never fails; the worst case serves the hardcoded CSV, so
// this endpoint always answers 200 with a CSV body.
func (h *SheetsHandler) GetSheet(c *gin.Context) {
	csv, source, cached := h.service.Resolve(c.Request.Context())

	cacheState := "miss"
	if cached {
		cacheState = "hit"
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Serving sheet CSV", map[string]interface{}{
			"source": source,
			"cache":  cacheState,
			"bytes":  len(csv),
		})
	}

	c.Header(SheetSourceHeader, source)
	c.Header(SheetCacheHeader, cacheState)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
