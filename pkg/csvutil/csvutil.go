package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Marshal renders a header row plus data rows as CSV with CRLF line
// endings, matching what spreadsheet tools expect from the admin
// export downloads.
func Marshal(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csvutil: failed to write header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csvutil: failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csvutil: flush failed: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatAmount renders a paise amount as a plain decimal string for
// export cells, e.g. 18050 -> "180.50".
func FormatAmount(paise int64) string {
	return fmt.Sprintf("%.2f", float64(paise)/100)
}
