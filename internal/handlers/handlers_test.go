package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/yeoyeo/realty-api/internal/listings"
	"github.com/yeoyeo/realty-api/internal/logger"
	"github.com/yeoyeo/realty-api/internal/middleware"
)

const testCSV = ",단지명,동,종류,가격,평형,타입,입주일,담당자,매물특징,비고,노출\n" +
	`,유니시티1단지,101동,매매,"8억 5,000",41평,,,,남향 로얄층,,TRUE` + "\n" +
	",유니시티2단지,202동,전세,5억,33평,,,,역세권,,TRUE\n" +
	",유니시티3단지,303동,월세,\"5,000/250\",25평,,,,신축,,TRUE\n"

// stubCSVSource serves a canned CSV body.
type stubCSVSource struct {
	body string
}

func (s *stubCSVSource) FetchCSV(ctx context.Context) (string, error) {
	return s.body, nil
}

// setupTestRouter creates a test Gin router with the standard request
// middleware installed.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	log := logger.New("test")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	return router
}

// setupListingStore builds a refreshed listing store over testCSV.
func setupListingStore(t *testing.T) *listings.Store {
	t.Helper()
	log := logger.New("test")
	resolver := listings.NewResolver(&stubCSVSource{body: testCSV}, "missing.json", log)
	store := listings.NewStore(resolver, log)
	store.Refresh(context.Background())
	return store
}

// setupBoltDB opens a throwaway bbolt database.
func setupBoltDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
