package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SheetAPI is the optional structured-read collaborator. It is wired in
// only when credentials are configured; a nil SheetAPI skips the tier.
type SheetAPI interface {
	// TryFetch reads the sheet as a structured 2D value range.
	TryFetch(ctx context.Context) ([][]string, error)
}

const googleAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"

// GoogleSheetAPI reads the spreadsheet through the authenticated values
// endpoint instead of the anonymous CSV export, which is considerably
// more reliable when a key is available.
type GoogleSheetAPI struct {
	sheetID string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGoogleSheetAPI creates a structured API reader for the given sheet.
func NewGoogleSheetAPI(sheetID, apiKey string, client *http.Client) *GoogleSheetAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleSheetAPI{
		sheetID: sheetID,
		apiKey:  apiKey,
		baseURL: googleAPIBase,
		client:  client,
	}
}

// TryFetch reads the whole first sheet as a 2D value range.
func (g *GoogleSheetAPI) TryFetch(ctx context.Context) ([][]string, error) {
	url := fmt.Sprintf("%s/%s/values/A:Z?key=%s", g.baseURL, g.sheetID, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet API request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet API responded with status %d", resp.StatusCode)
	}

	var payload struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode sheet API response: %w", err)
	}
	if len(payload.Values) == 0 {
		return nil, fmt.Errorf("sheet API returned no rows")
	}

	return payload.Values, nil
}
