package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yeoyeo/realty-api/internal/logger"
)

const (
	exportMaxAttempts = 3
	exportBaseDelay   = 1 * time.Second
)

// ExportFetcher pulls the anonymous CSV export with bounded
// exponential-backoff retries. Every attempt's body is validated as
// plausible CSV before it is accepted, because the endpoint sometimes
// answers 200 with a consent page.
type ExportFetcher struct {
	url       string
	client    *http.Client
	log       *logger.Logger
	baseDelay time.Duration
}

// NewExportFetcher creates a fetcher for the given export URL.
func NewExportFetcher(url string, client *http.Client, log *logger.Logger) *ExportFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExportFetcher{
		url:       url,
		client:    client,
		log:       log.WithComponent("sheets_export"),
		baseDelay: exportBaseDelay,
	}
}

// Fetch attempts the export up to 3 times with 1s/2s/4s backoff,
// returning the first body that validates as CSV.
func (f *ExportFetcher) Fetch(ctx context.Context) (string, error) {
	var lastErr error
	delay := f.baseDelay

	for attempt := 1; attempt <= exportMaxAttempts; attempt++ {
		body, err := f.fetchOnce(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt < exportMaxAttempts {
			f.log.Warn("Export fetch failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"delay":   delay.String(),
				"reason":  err.Error(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}
	}

	return "", fmt.Errorf("export fetch failed after %d attempts: %w", exportMaxAttempts, lastErr)
}

func (f *ExportFetcher) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build export request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; YeoyeoBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("export request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("export responded with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read export body: %w", err)
	}

	body := string(raw)
	if err := ValidateCSV(body); err != nil {
		return "", fmt.Errorf("export body rejected: %w", err)
	}

	return body, nil
}
