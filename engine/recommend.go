package engine

import "github.com/sourcelens-org/sourcelens/dataset"

// Recommend filters the canonical table against the criteria and returns the
// ranked, aggregated result.
//
// Pipeline:
//
//  1. filter records (AND-combined predicates, inclusive thresholds)
//  2. group by the criteria's grouping mode
//  3. aggregate per group and cross-tabulate Order_Status
//  4. stable sort by Defect_Rate, Lead_Time, Avg_Negotiated_Price
//
// Degenerate inputs (nil or empty table, nothing matching) yield an empty
// result, never an error.
func Recommend(t *dataset.Table, c Criteria) *Result {
	res := &Result{Mode: c.Mode()}

	records := t.Records()
	if len(records) == 0 {
		return res
	}

	indices := filterIndices(records, c)
	if len(indices) == 0 {
		return res
	}

	res.Rows, res.StatusColumns = aggregate(records, indices, res.Mode)
	sortRows(res.Rows)
	return res
}
