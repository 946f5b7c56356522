// Package sourcelens is a decision-support filtering tool over a static
// supplier dataset.
//
// Usage:
//
//	table, err := dataset.Load("data_supplier.csv")
//	result := engine.Recommend(table, engine.Criteria{
//	    ItemCategory:  "All",
//	    MaxPrice:      200000,
//	    MaxLeadTime:   10,
//	    MaxDefectRate: 5,
//	    Compliance:    engine.ComplianceAll,
//	})
//	if result.Empty() {
//	    advice, ok := fallback.Advise(table, criteria)
//	    ...
//	}
//
// The dataset package loads and prepares the canonical table (currency
// conversion, date parsing, imputation, derived columns). The engine package
// filters and aggregates it into ranked recommendations. The fallback package
// retries with relaxed thresholds and annotates each alternative with the
// reason it missed the original criteria.
//
// The canonical table is read-only after load; every query allocates its own
// result. All computation is local and synchronous.
package sourcelens
