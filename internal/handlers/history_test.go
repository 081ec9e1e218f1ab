package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeoyeo/realty-api/internal/history"
	"github.com/yeoyeo/realty-api/internal/logger"
)

func setupHistoryRouter(t *testing.T) (*HistoryHandler, http.Handler) {
	t.Helper()

	store := history.NewStore(setupBoltDB(t), logger.New("test"))
	handler := NewHistoryHandler(store)

	router := setupTestRouter()
	router.GET("/api/v1/history", handler.Get)
	router.POST("/api/v1/history", handler.Save)
	router.DELETE("/api/v1/history", handler.Clear)
	return handler, router
}

func postQuery(t *testing.T, router http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()

	body := strings.NewReader(`{"query":` + jsonString(query) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/history", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonString(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}

func TestHistoryHandler_EmptyHistory(t *testing.T) {
	_, router := setupHistoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"queries":[]}`, w.Body.String())
}

func TestHistoryHandler_SaveReturnsUpdatedList(t *testing.T) {
	_, router := setupHistoryRouter(t)

	require.Equal(t, http.StatusOK, postQuery(t, router, "유니시티").Code)
	w := postQuery(t, router, "매매")

	assert.Equal(t, http.StatusOK, w.Code)

	var response HistoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []string{"매매", "유니시티"}, response.Queries)
}

func TestHistoryHandler_SaveDeduplicates(t *testing.T) {
	_, router := setupHistoryRouter(t)

	postQuery(t, router, "유니시티")
	postQuery(t, router, "매매")
	w := postQuery(t, router, "유니시티")

	var response HistoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []string{"유니시티", "매매"}, response.Queries)
}

func TestHistoryHandler_SaveRejectsMissingQuery(t *testing.T) {
	_, router := setupHistoryRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/history", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryHandler_Clear(t *testing.T) {
	_, router := setupHistoryRouter(t)

	postQuery(t, router, "유니시티")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `{"queries":[]}`, w.Body.String())
}
