package sheets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yeoyeo/realty-api/internal/models"
)

// LoadBackupCSV reads the static backup JSON document and transforms it
// into the same fixed-column CSV shape the remote tiers produce.
func LoadBackupCSV(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read backup document: %w", err)
	}

	var listings []models.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return "", fmt.Errorf("failed to parse backup document: %w", err)
	}
	if len(listings) == 0 {
		return "", fmt.Errorf("backup document has no listings")
	}

	return ListingsToCSV(listings), nil
}

// ListingsToCSV renders listings into the proxy's fixed-column CSV
// shape, header included.
func ListingsToCSV(listings []models.Listing) string {
	rows := make([][]string, 0, len(listings)+1)
	rows = append(rows, headerRow())
	for _, l := range listings {
		rows = append(rows, []string{
			"", l.Complex, l.Unit, l.Type, l.Price, l.Size, "", "", "", l.Features, "", "TRUE",
		})
	}
	return RowsToCSV(rows)
}

func headerRow() []string {
	return []string{"", "단지명", "동", "종류", "가격", "평형", "타입", "입주일", "담당자", "매물특징", "비고", "노출"}
}
