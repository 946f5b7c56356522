package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Table is the canonical in-memory supplier table. It is produced once by
// Load and read-only thereafter, so it is safe for any number of concurrent
// readers.
type Table struct {
	records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records exposes the canonical records. Callers must not modify them.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	return t.records
}

// Categories returns the sorted distinct non-empty Item_Category values.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Records() {
		if r.ItemCategory != "" && !seen[r.ItemCategory] {
			seen[r.ItemCategory] = true
			out = append(out, r.ItemCategory)
		}
	}
	sort.Strings(out)
	return out
}

// Load reads a supplier file and prepares the canonical table. The format is
// chosen by extension: .xlsx/.xlsm use the XLSX loader, everything else is
// parsed as CSV.
func Load(path string, opts ...Option) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(data, opts...)
	default:
		return LoadCSV(data, opts...)
	}
}

// prepare turns raw rows into the canonical table:
//
//  1. parse fields and convert prices by the exchange rate
//  2. parse dates (any unparseable date is fatal)
//  3. compute per-supplier mean lead time from rows that already have a
//     delivery date
//  4. impute missing delivery dates as Order_Date + round(mean) days
//  5. fill missing Defective_Units with 0 (done during parsing)
//  6. recompute the derived columns for all rows
//
// Re-running prepare on the same raw input yields the same table.
func prepare(rows []rawRow, cfg *config) (*Table, error) {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := parseRecord(row, cfg)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	means := meanLeadTimes(records)
	for i := range records {
		r := &records[i]
		if r.DeliveryDate != nil {
			continue
		}
		mean, ok := means[r.Supplier]
		if !ok {
			continue // no reference rows for this supplier; lead time stays undefined
		}
		d := r.OrderDate.AddDate(0, 0, int(math.Round(mean)))
		r.DeliveryDate = &d
	}

	for i := range records {
		records[i].derive()
	}

	return &Table{records: records}, nil
}

// meanLeadTimes computes the mean lead time per supplier over rows that have
// a delivery date. The mapping is built before any imputation so imputed
// rows never feed back into it.
func meanLeadTimes(records []Record) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if r.DeliveryDate == nil {
			continue
		}
		days := r.DeliveryDate.Sub(r.OrderDate).Hours() / 24
		sums[r.Supplier] += days
		counts[r.Supplier]++
	}

	means := make(map[string]float64, len(sums))
	for supplier, sum := range sums {
		means[supplier] = sum / float64(counts[supplier])
	}
	return means
}

func parseRecord(row rawRow, cfg *config) (Record, error) {
	rec := Record{
		POID:         row.get(ColPOID),
		Supplier:     row.get(ColSupplier),
		ItemCategory: row.get(ColItemCategory),
		Compliance:   row.get(ColCompliance),
		OrderStatus:  row.get(ColOrderStatus),
	}

	var err error
	if rec.Quantity, err = parseIntField(row, ColQuantity); err != nil {
		return Record{}, err
	}

	// Missing defective-unit counts are imputed to 0.
	if raw := row.get(ColDefectiveUnits); raw != "" {
		if rec.DefectiveUnits, err = parseIntField(row, ColDefectiveUnits); err != nil {
			return Record{}, err
		}
	}

	unitPrice, err := parseFloatField(row, ColUnitPrice)
	if err != nil {
		return Record{}, err
	}
	negotiated, err := parseFloatField(row, ColNegotiatedPrice)
	if err != nil {
		return Record{}, err
	}
	rec.UnitPrice = unitPrice * cfg.ExchangeRate
	rec.NegotiatedPrice = negotiated * cfg.ExchangeRate

	rec.OrderDate, err = parseDate(row.get(ColOrderDate), cfg.DateLayouts)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: %s: %w", row.line, ColOrderDate, err)
	}

	if raw := row.get(ColDeliveryDate); raw != "" {
		d, err := parseDate(raw, cfg.DateLayouts)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %s: %w", row.line, ColDeliveryDate, err)
		}
		rec.DeliveryDate = &d
	}

	return rec, nil
}

func parseIntField(row rawRow, col string) (int, error) {
	raw := row.get(col)
	if raw == "" {
		return 0, fmt.Errorf("line %d: %s: empty value", row.line, col)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s: invalid integer %q", row.line, col, raw)
	}
	return v, nil
}

func parseFloatField(row rawRow, col string) (float64, error) {
	raw := row.get(col)
	if raw == "" {
		return 0, fmt.Errorf("line %d: %s: empty value", row.line, col)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s: invalid number %q", row.line, col, raw)
	}
	return v, nil
}

func parseDate(raw string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
