package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeoyeo/realty-api/internal/admin"
	"github.com/yeoyeo/realty-api/internal/apierrors"
	"github.com/yeoyeo/realty-api/internal/middleware"
)

// AdminPasswordHeader names the request header carrying the shared
// admin password.
const AdminPasswordHeader = "X-Admin-Password"

// maxConfigBytes caps the accepted config blob size.
const maxConfigBytes = 64 * 1024

// AdminHandler handles the password-gated admin config endpoints.
type AdminHandler struct {
	store    *admin.Store
	password string
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(store *admin.Store, password string) *AdminHandler {
	return &AdminHandler{
		store:    store,
		password: password,
	}
}

// authorized checks the shared-password header and responds with 401
// when it does not match.
func (h *AdminHandler) authorized(c *gin.Context) bool {
	provided := c.GetHeader(AdminPasswordHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.password)) != 1 {
		apierrors.Unauthorized(c, "Invalid admin password")
		return false
	}
	return true
}

// GetConfig handles GET /api/v1/admin/config endpoint.
func (h *AdminHandler) GetConfig(c *gin.Context) {
	if !h.authorized(c) {
		return
	}

	blob, err := h.store.Get()
	if err != nil {
		apierrors.InternalServerError(c, "Failed to read admin config", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", blob)
}

// PutConfig handles PUT /api/v1/admin/config endpoint.
// The body is stored verbatim as the new config blob; it only has to be
// valid JSON.
func (h *AdminHandler) PutConfig(c *gin.Context) {
	if !h.authorized(c) {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Failed to read request body", nil)
		return
	}
	if len(body) == 0 || len(body) > maxConfigBytes {
		apierrors.BadRequest(c, "Config body must be non-empty JSON under 64KiB", nil)
		return
	}

	if err := h.store.Put(body); err != nil {
		if errors.Is(err, admin.ErrInvalidJSON) {
			apierrors.BadRequest(c, "Config body must be valid JSON", nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to save admin config", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Admin config saved", map[string]interface{}{"bytes": len(body)})
	}

	c.Status(http.StatusNoContent)
}
