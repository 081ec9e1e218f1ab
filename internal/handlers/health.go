package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bolt "go.etcd.io/bbolt"

	"github.com/yeoyeo/realty-api/internal/listings"
	"github.com/yeoyeo/realty-api/internal/middleware"
)

// APIVersion is the current version of the API
const APIVersion = "0.1.0"

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	db        *bolt.DB
	store     *listings.Store
	startTime time.Time
	env       string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(db *bolt.DB, store *listings.Store, env string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		store:     store,
		startTime: time.Now(),
		env:       env,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Listings string `json:"listings"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// Health handles GET /health endpoint.
// This is a basic health check that always returns 200 OK.
// It does not check any dependencies and is used for basic liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// Readiness requires the bbolt store to answer a read transaction and
// the listing snapshot to have completed its first resolution.
// Returns 200 OK when both hold, 503 Service Unavailable otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	storeStatus := "connected"
	if err := h.db.View(func(tx *bolt.Tx) error { return nil }); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Store health check failed", err, nil)
		}
		storeStatus = "disconnected"
	}

	listingsStatus := "resolved"
	if !h.store.Ready() {
		listingsStatus = "pending"
	}

	if storeStatus != "connected" || listingsStatus != "resolved" {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "not_ready",
			Store:    storeStatus,
			Listings: listingsStatus,
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:   "ready",
		Store:    storeStatus,
		Listings: listingsStatus,
	})
}

// Info handles GET /api/v1/info endpoint.
// Returns API metadata including version, environment, and uptime.
func (h *HealthHandler) Info(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(uptime),
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
