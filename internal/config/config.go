package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Sheets   SheetsConfig
	Listings ListingsConfig
	Store    StoreConfig
	Admin    AdminConfig
	Market   MarketConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// CORSConfig holds CORS configuration for the browser-facing API.
// The /api/sheets proxy always allows every origin regardless of this
// list, because external consumers (the chatbot, the gallery app) read
// it cross-origin.
type CORSConfig struct {
	Origins []string
}

// SheetsConfig holds the spreadsheet proxy configuration.
type SheetsConfig struct {
	// SheetID identifies the upstream spreadsheet.
	SheetID string
	// APIKey enables the structured API tier when present. Leaving it
	// empty skips that tier entirely.
	APIKey string
	// ExportURL overrides the anonymous CSV export URL, mainly for
	// tests. When empty it is derived from SheetID.
	ExportURL string
	// CacheTTL bounds how long a resolved CSV document is served from
	// memory before the tiers run again.
	CacheTTL time.Duration
	// BackupPath is the static backup JSON document used when both
	// remote tiers fail.
	BackupPath string
	// FetchTimeout bounds each individual upstream request.
	FetchTimeout time.Duration
}

// ListingsConfig holds the listing snapshot refresh configuration.
type ListingsConfig struct {
	// RefreshSchedule is a cron spec; the default re-resolves hourly.
	RefreshSchedule string
}

// StoreConfig holds the embedded key-value store configuration.
type StoreConfig struct {
	// Path is the bbolt database file holding search history and the
	// admin config blob.
	Path string
}

// AdminConfig gates the admin configuration endpoints.
type AdminConfig struct {
	Password string
}

// MarketConfig holds API keys for the market indicator sources. All are
// optional; a missing key degrades that source to its fallback value.
type MarketConfig struct {
	AlphaVantageKey string
	FredKey         string
	BokKey          string
	KoreaeximKey    string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("SHEET_ID", "1Ajn0VVRqQfpjEimzmW7yorf7ecL9RKpXWpsCNj2QhsE")
	v.SetDefault("SHEETS_CACHE_TTL", "30m")
	v.SetDefault("SHEETS_BACKUP_PATH", "static/listings-backup.json")
	v.SetDefault("SHEETS_FETCH_TIMEOUT", "10s")
	v.SetDefault("LISTINGS_REFRESH_SCHEDULE", "@every 1h")
	v.SetDefault("STORE_PATH", "data/yeoyeo.db")
	v.SetDefault("ADMIN_PASSWORD", "yeoyeo")

	// Bind environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		Sheets: SheetsConfig{
			SheetID:      v.GetString("SHEET_ID"),
			APIKey:       v.GetString("SHEETS_API_KEY"),
			ExportURL:    v.GetString("SHEETS_EXPORT_URL"),
			CacheTTL:     v.GetDuration("SHEETS_CACHE_TTL"),
			BackupPath:   v.GetString("SHEETS_BACKUP_PATH"),
			FetchTimeout: v.GetDuration("SHEETS_FETCH_TIMEOUT"),
		},
		Listings: ListingsConfig{
			RefreshSchedule: v.GetString("LISTINGS_REFRESH_SCHEDULE"),
		},
		Store: StoreConfig{
			Path: v.GetString("STORE_PATH"),
		},
		Admin: AdminConfig{
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Market: MarketConfig{
			AlphaVantageKey: v.GetString("ALPHA_VANTAGE_KEY"),
			FredKey:         v.GetString("FRED_KEY"),
			BokKey:          v.GetString("BOK_KEY"),
			KoreaeximKey:    v.GetString("KOREAEXIM_KEY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Sheets.SheetID == "" {
		return fmt.Errorf("SHEET_ID is required")
	}
	if c.Sheets.CacheTTL <= 0 {
		return fmt.Errorf("SHEETS_CACHE_TTL must be positive")
	}
	if c.Sheets.FetchTimeout <= 0 {
		return fmt.Errorf("SHEETS_FETCH_TIMEOUT must be positive")
	}
	if c.Listings.RefreshSchedule == "" {
		return fmt.Errorf("LISTINGS_REFRESH_SCHEDULE is required")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}
	return nil
}

// ResolvedExportURL returns the anonymous CSV export URL for the
// configured sheet, honoring the test override.
func (s SheetsConfig) ResolvedExportURL() string {
	if s.ExportURL != "" {
		return s.ExportURL
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=0", s.SheetID)
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
