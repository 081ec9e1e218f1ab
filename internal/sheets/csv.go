package sheets

import (
	"fmt"
	"strings"
)

// Header is the fixed-column header the proxy always serves. The leading
// blank column mirrors the upstream sheet layout; consumers address
// columns by position.
const Header = ",단지명,동,종류,가격,평형,타입,입주일,담당자,매물특징,비고,노출"

// Column names a plausible export must carry in its header row.
// Reordered or renamed upstream columns fail validation here and push
// resolution down to the next tier instead of silently mis-mapping
// fields.
var requiredColumns = []string{"단지명", "동", "종류", "가격", "평형", "매물특징"}

// RowsToCSV converts a structured 2D value range into CSV text. Short
// rows are padded to the first row's length; fields containing commas,
// quotes, or newlines are quoted with doubled inner quotes.
func RowsToCSV(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := len(rows[0])
	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, width)
		for i := 0; i < width; i++ {
			if i < len(row) {
				cells[i] = quoteField(row[i])
			}
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// ValidateCSV checks that a fetched body is plausibly the listing CSV
// rather than an interposed HTML page or a truncated response.
func ValidateCSV(body string) error {
	lowered := strings.ToLower(body)
	if strings.Contains(lowered, "<!doctype") || strings.Contains(lowered, "<html") {
		return fmt.Errorf("body looks like an HTML document, not CSV")
	}

	commaLines := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.Contains(line, ",") {
			commaLines++
		}
	}
	if commaLines < 2 {
		return fmt.Errorf("body has %d comma-delimited lines, need at least 2", commaLines)
	}

	header := strings.SplitN(body, "\n", 2)[0]
	for _, col := range requiredColumns {
		if !strings.Contains(header, col) {
			return fmt.Errorf("header is missing expected column %q", col)
		}
	}

	return nil
}
