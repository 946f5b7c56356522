package dataset

import (
	"fmt"
	"strings"
)

// Source column names. The loader matches headers case-sensitively after
// trimming whitespace; unknown columns are silently skipped.
const (
	ColPOID            = "PO_ID"
	ColSupplier        = "Supplier"
	ColItemCategory    = "Item_Category"
	ColCompliance      = "Compliance"
	ColOrderStatus     = "Order_Status"
	ColQuantity        = "Quantity"
	ColDefectiveUnits  = "Defective_Units"
	ColUnitPrice       = "Unit_Price"
	ColNegotiatedPrice = "Negotiated_Price"
	ColOrderDate       = "Order_Date"
	ColDeliveryDate    = "Delivery_Date"
)

var requiredColumns = []string{
	ColPOID,
	ColSupplier,
	ColItemCategory,
	ColCompliance,
	ColOrderStatus,
	ColQuantity,
	ColDefectiveUnits,
	ColUnitPrice,
	ColNegotiatedPrice,
	ColOrderDate,
	ColDeliveryDate,
}

// rawRow is one unparsed data row keyed by column name, with its 1-based
// source line for error reporting.
type rawRow struct {
	values map[string]string
	line   int
}

func (r rawRow) get(col string) string {
	return strings.TrimSpace(r.values[col])
}

// mapHeader resolves column name to index and verifies every required
// column is present.
func mapHeader(headers []string) (map[string]int, error) {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		byName[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := byName[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return byName, nil
}

// rowsFromGrid converts a header-plus-data grid into raw rows. Rows shorter
// than the header are padded, fully empty rows are dropped.
func rowsFromGrid(headers []string, grid [][]string, firstLine int) []rawRow {
	rows := make([]rawRow, 0, len(grid))
	for i, cells := range grid {
		values := make(map[string]string, len(headers))
		empty := true
		for j, h := range headers {
			var v string
			if j < len(cells) {
				v = strings.TrimSpace(cells[j])
			}
			if v != "" {
				empty = false
			}
			values[strings.TrimSpace(h)] = v
		}
		if empty {
			continue
		}
		rows = append(rows, rawRow{values: values, line: firstLine + i})
	}
	return rows
}
