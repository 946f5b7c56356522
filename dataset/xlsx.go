package dataset

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX parses a supplier workbook and prepares the canonical table. The
// first row of the selected sheet is the header; use WithSheet to pick a
// sheet other than the first.
func LoadXLSX(data []byte, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := rows[0]
	if _, err := mapHeader(headers); err != nil {
		return nil, err
	}

	return prepare(rowsFromGrid(headers, rows[1:], 2), cfg)
}
