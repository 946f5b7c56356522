package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// LoadCSV parses delimited supplier data and prepares the canonical table.
// Rows with fewer fields than the header are padded with empty values; fully
// empty rows are skipped.
func LoadCSV(data []byte, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	reader := csv.NewReader(bytes.NewReader(data))
	// Real-world exports carry ragged rows and loose quoting.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	if _, err := mapHeader(headers); err != nil {
		return nil, err
	}

	var grid [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		grid = append(grid, row)
	}

	return prepare(rowsFromGrid(headers, grid, 2), cfg)
}
