package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	bolt "go.etcd.io/bbolt"

	"github.com/yeoyeo/realty-api/internal/admin"
	"github.com/yeoyeo/realty-api/internal/config"
	"github.com/yeoyeo/realty-api/internal/handlers"
	"github.com/yeoyeo/realty-api/internal/history"
	"github.com/yeoyeo/realty-api/internal/listings"
	"github.com/yeoyeo/realty-api/internal/logger"
	"github.com/yeoyeo/realty-api/internal/market"
	"github.com/yeoyeo/realty-api/internal/middleware"
	"github.com/yeoyeo/realty-api/internal/sheets"
)

const (
	shutdownTimeout = 30 * time.Second
	refreshTimeout  = 2 * time.Minute

	// sheetsPath is the CSV proxy endpoint; it carries a wildcard CORS
	// policy unlike the rest of the API.
	sheetsPath = "/api/sheets"
)

// proxyCSVSource feeds the listing resolver from the in-process sheet
// proxy, so both consumers share one cache and one tier chain.
type proxyCSVSource struct {
	service *sheets.Service
}

func (p *proxyCSVSource) FetchCSV(ctx context.Context) (string, error) {
	csv, _, _ := p.service.Resolve(ctx)
	return csv, nil
}

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Yeoyeo Realty API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Open the embedded key-value store
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		log.Fatal("Failed to create store directory", err, map[string]interface{}{
			"path": cfg.Store.Path,
		})
	}
	db, err := bolt.Open(cfg.Store.Path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		log.Fatal("Failed to open store", err, map[string]interface{}{
			"path": cfg.Store.Path,
		})
	}
	defer db.Close()

	log.Info("Store opened", map[string]interface{}{
		"path": cfg.Store.Path,
	})

	historyStore := history.NewStore(db, log)
	adminStore, err := admin.NewStore(db, log)
	if err != nil {
		log.Fatal("Failed to initialize admin store", err, nil)
	}

	// Wire the sheet proxy. The structured API tier is enabled only when
	// a key is configured.
	httpClient := &http.Client{Timeout: cfg.Sheets.FetchTimeout}
	var sheetAPI sheets.SheetAPI
	if cfg.Sheets.APIKey != "" {
		sheetAPI = sheets.NewGoogleSheetAPI(cfg.Sheets.SheetID, cfg.Sheets.APIKey, httpClient)
		log.Info("Sheet API tier enabled", nil)
	}
	sheetService := sheets.NewService(
		sheets.NewCache(cfg.Sheets.CacheTTL),
		sheetAPI,
		sheets.NewExportFetcher(cfg.Sheets.ResolvedExportURL(), httpClient, log),
		cfg.Sheets.BackupPath,
		log,
	)

	// Listing snapshot over the proxy, plus the market indicators.
	resolver := listings.NewResolver(&proxyCSVSource{service: sheetService}, cfg.Sheets.BackupPath, log)
	listingStore := listings.NewStore(resolver, log)
	marketService := market.NewService(cfg.Market, log)

	// First resolution before accepting traffic, then hourly refreshes.
	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		listingStore.Refresh(ctx)
		marketService.Refresh(ctx)
	}
	refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Listings.RefreshSchedule, refresh); err != nil {
		log.Fatal("Failed to schedule refresh", err, map[string]interface{}{
			"schedule": cfg.Listings.RefreshSchedule,
		})
	}
	scheduler.Start()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS.
	// CORS is global so OPTIONS preflights are answered even though no
	// OPTIONS routes are registered; the sheet proxy path gets the
	// wildcard policy, everything else the configured origins.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORSRouted(sheetsPath, cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, listingStore, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	// The CSV proxy is world-readable; external consumers fetch it
	// cross-origin.
	sheetsHandler := handlers.NewSheetsHandler(sheetService)
	router.GET(sheetsPath, sheetsHandler.GetSheet)

	// Initialize handlers
	listingsHandler := handlers.NewListingsHandler(listingStore)
	historyHandler := handlers.NewHistoryHandler(historyStore)
	marketHandler := handlers.NewMarketHandler(marketService)
	adminHandler := handlers.NewAdminHandler(adminStore, cfg.Admin.Password)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/info", healthHandler.Info)

		v1.GET("/listings", listingsHandler.Search)
		v1.GET("/listings/suggest", listingsHandler.Suggest)

		v1.GET("/history", historyHandler.Get)
		v1.POST("/history", historyHandler.Save)
		v1.DELETE("/history", historyHandler.Clear)

		v1.GET("/market", marketHandler.Get)

		adminGroup := v1.Group("/admin")
		{
			adminGroup.GET("/config", adminHandler.GetConfig)
			adminGroup.PUT("/config", adminHandler.PutConfig)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
