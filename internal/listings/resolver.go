package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/yeoyeo/realty-api/internal/logger"
	"github.com/yeoyeo/realty-api/internal/models"
)

// Source tags identifying which tier produced a snapshot.
const (
	SourceProxy    = "proxy"
	SourceBackup   = "backup"
	SourceDefaults = "defaults"
)

// CSVSource provides the raw listing CSV. The production source is the
// in-process sheet proxy; tests and split deployments use HTTPSource.
type CSVSource interface {
	FetchCSV(ctx context.Context) (string, error)
}

// HTTPSource fetches CSV over HTTP, treating a non-2xx status or an
// HTML-looking body (a login or consent page served where data should
// be) as failure.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// FetchCSV fetches and sniffs the body.
func (s *HTTPSource) FetchCSV(ctx context.Context) (string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build CSV request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("CSV request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("CSV endpoint responded with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read CSV body: %w", err)
	}

	body := string(raw)
	lowered := strings.ToLower(body)
	if strings.Contains(lowered, "<!doctype") || strings.Contains(lowered, "<html") {
		return "", fmt.Errorf("CSV endpoint served an HTML document")
	}

	return body, nil
}

// Resolver fetches and parses listings through a tiered fallback chain:
// the CSV source, then a static backup JSON document, then hardcoded
// defaults. It never fails and never returns an empty board.
type Resolver struct {
	source     CSVSource
	backupPath string
	log        *logger.Logger
}

// NewResolver creates a Resolver over the given CSV source.
func NewResolver(source CSVSource, backupPath string, log *logger.Logger) *Resolver {
	return &Resolver{
		source:     source,
		backupPath: backupPath,
		log:        log.WithComponent("listings_resolver"),
	}
}

// FetchListings resolves the current listing set, tagging it with the
// tier that produced it.
func (r *Resolver) FetchListings(ctx context.Context) ([]models.Listing, string) {
	csvText, err := r.source.FetchCSV(ctx)
	if err == nil {
		if parsed := ParseCSV(csvText); len(parsed) > 0 {
			return parsed, SourceProxy
		}
		err = fmt.Errorf("CSV parsed to zero rows")
	}
	r.log.Warn("CSV tier failed, trying backup", map[string]interface{}{
		"reason": err.Error(),
	})

	backup, backupErr := r.loadBackup()
	if backupErr == nil {
		return backup, SourceBackup
	}
	r.log.Warn("Backup tier failed, using defaults", map[string]interface{}{
		"reason": backupErr.Error(),
		"path":   r.backupPath,
	})

	return DefaultListings(), SourceDefaults
}

// loadBackup reads the pre-shaped backup JSON document and returns it
// verbatim.
func (r *Resolver) loadBackup() ([]models.Listing, error) {
	raw, err := os.ReadFile(r.backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup document: %w", err)
	}

	var backup []models.Listing
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("failed to parse backup document: %w", err)
	}
	if len(backup) == 0 {
		return nil, fmt.Errorf("backup document has no listings")
	}

	return backup, nil
}
