package engine

import (
	"strings"

	"github.com/sourcelens-org/sourcelens/dataset"
)

// filterIndices returns the indices of records matching all criteria, in
// table order. Single pass, AND-combined predicates; no record data is
// copied.
func filterIndices(records []dataset.Record, c Criteria) []int {
	indices := make([]int, 0, len(records))
	for i := range records {
		if matches(&records[i], c) {
			indices = append(indices, i)
		}
	}
	return indices
}

func matches(r *dataset.Record, c Criteria) bool {
	if c.ItemCategory != CategoryAll && !strings.EqualFold(r.ItemCategory, c.ItemCategory) {
		return false
	}

	switch c.Compliance {
	case ComplianceYes:
		if r.Compliance != "Yes" {
			return false
		}
	case ComplianceNo:
		if r.Compliance != "No" {
			return false
		}
	}

	if r.NegotiatedPrice > c.MaxPrice {
		return false
	}
	// Undefined lead time never satisfies a lead-time ceiling.
	if !r.HasLeadTime || r.LeadTime > c.MaxLeadTime {
		return false
	}
	if r.DefectRate > c.MaxDefectRate {
		return false
	}
	return true
}
