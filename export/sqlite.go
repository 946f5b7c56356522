package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/sourcelens-org/sourcelens/engine"
)

// WriteSQLite persists a result table into an SQLite database, replacing any
// existing table of the same name. Group key columns and Catatan are TEXT,
// the means are REAL, totals and status counts are INTEGER.
func WriteSQLite(path, table string, res *engine.Result) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	headers := Headers(res)
	defs := make([]string, len(headers))
	for i, h := range headers {
		defs[i] = quoteIdent(h) + " " + columnType(res, h)
	}

	if _, err := db.Exec(`DROP TABLE IF EXISTS ` + quoteIdent(table)); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE ` + quoteIdent(table) + ` (` + strings.Join(defs, ", ") + `)`); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(headers)), ", ")
	stmt, err := tx.Prepare(`INSERT INTO ` + quoteIdent(table) + ` VALUES (` + placeholders + `)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range res.Rows {
		args := make([]any, 0, len(headers))
		args = append(args, row.Supplier)
		if res.Mode.IncludesCategory() {
			args = append(args, row.ItemCategory)
		}
		if res.Mode.IncludesCompliance() {
			args = append(args, row.Compliance)
		}
		args = append(args,
			row.AvgNegotiatedPrice,
			row.LeadTime,
			row.DefectRate,
			row.PriceEfficiency,
			row.TotalQuantity,
			row.TotalOrders,
		)
		for _, status := range res.StatusColumns {
			args = append(args, row.StatusCounts[status])
		}
		if res.Annotated {
			args = append(args, row.Note)
		}

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

func columnType(res *engine.Result, header string) string {
	switch header {
	case HeaderSupplier, HeaderItemCategory, HeaderCompliance, HeaderNote:
		return "TEXT"
	case HeaderAvgPrice, HeaderLeadTime, HeaderDefectRate, HeaderPriceEfficiency:
		return "REAL"
	default:
		// Total_Quantity, Total_Orders and the per-status count columns.
		return "INTEGER"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
