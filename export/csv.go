// Package export renders result tables as delimited text or SQLite.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sourcelens-org/sourcelens/engine"
)

// Renamed aggregate column headers of the exported table.
const (
	HeaderSupplier        = "Supplier"
	HeaderItemCategory    = "Item_Category"
	HeaderCompliance      = "Compliance"
	HeaderAvgPrice        = "Avg_Negotiated_Price"
	HeaderLeadTime        = "Lead_Time"
	HeaderDefectRate      = "Defect_Rate (%)"
	HeaderPriceEfficiency = "Price_Efficiency (%)"
	HeaderTotalQuantity   = "Total_Quantity"
	HeaderTotalOrders     = "Total_Orders"
	HeaderNote            = "Catatan"
)

// Headers returns the column headers for a result: the group key columns,
// the renamed aggregates, one column per Order_Status value, and Catatan for
// annotated (fallback) results.
func Headers(res *engine.Result) []string {
	headers := []string{HeaderSupplier}
	if res.Mode.IncludesCategory() {
		headers = append(headers, HeaderItemCategory)
	}
	if res.Mode.IncludesCompliance() {
		headers = append(headers, HeaderCompliance)
	}
	headers = append(headers,
		HeaderAvgPrice,
		HeaderLeadTime,
		HeaderDefectRate,
		HeaderPriceEfficiency,
		HeaderTotalQuantity,
		HeaderTotalOrders,
	)
	headers = append(headers, res.StatusColumns...)
	if res.Annotated {
		headers = append(headers, HeaderNote)
	}
	return headers
}

// WriteCSV writes the result as delimited text with no index column.
func WriteCSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers(res)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range res.Rows {
		if err := cw.Write(rowValues(res, row)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// TableRows returns the formatted cell values for every row, in the same
// column order as Headers.
func TableRows(res *engine.Result) [][]string {
	rows := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		rows = append(rows, rowValues(res, row))
	}
	return rows
}

func rowValues(res *engine.Result, row engine.Row) []string {
	values := []string{row.Supplier}
	if res.Mode.IncludesCategory() {
		values = append(values, row.ItemCategory)
	}
	if res.Mode.IncludesCompliance() {
		values = append(values, row.Compliance)
	}
	values = append(values,
		fmtNum(row.AvgNegotiatedPrice),
		fmtNum(row.LeadTime),
		fmtNum(row.DefectRate),
		fmtNum(row.PriceEfficiency),
		strconv.Itoa(row.TotalQuantity),
		strconv.Itoa(row.TotalOrders),
	)
	for _, status := range res.StatusColumns {
		values = append(values, strconv.Itoa(row.StatusCounts[status]))
	}
	if res.Annotated {
		values = append(values, row.Note)
	}
	return values
}

// fmtNum keeps whole numbers free of decimals and rounds the rest to 2
// places.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
