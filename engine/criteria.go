package engine

import "fmt"

// CategoryAll is the sentinel value that disables category filtering.
const CategoryAll = "All"

// CompliancePreference filters on the supplier compliance flag.
type CompliancePreference string

const (
	ComplianceAll CompliancePreference = "All"
	ComplianceYes CompliancePreference = "Yes"
	ComplianceNo  CompliancePreference = "No"
)

// Criteria is one buyer query. All thresholds are inclusive.
type Criteria struct {
	ItemCategory  string               `json:"item_category"`   // CategoryAll or a category name (case-insensitive)
	MaxPrice      float64              `json:"max_price"`       // ceiling on Negotiated_Price, target currency
	MaxLeadTime   int                  `json:"max_lead_time"`   // days
	MaxDefectRate float64              `json:"max_defect_rate"` // percent, 0..100
	Compliance    CompliancePreference `json:"compliance_preference"`
}

// Validate checks field ranges. Zero-value ItemCategory and Compliance are
// normalized to "All".
func (c *Criteria) Validate() error {
	if c.ItemCategory == "" {
		c.ItemCategory = CategoryAll
	}
	if c.Compliance == "" {
		c.Compliance = ComplianceAll
	}
	switch c.Compliance {
	case ComplianceAll, ComplianceYes, ComplianceNo:
	default:
		return fmt.Errorf("invalid compliance_preference %q", c.Compliance)
	}
	if c.MaxPrice < 0 {
		return fmt.Errorf("max_price must be >= 0")
	}
	if c.MaxLeadTime < 1 {
		return fmt.Errorf("max_lead_time must be >= 1")
	}
	if c.MaxDefectRate < 0 || c.MaxDefectRate > 100 {
		return fmt.Errorf("max_defect_rate must be in [0,100]")
	}
	return nil
}

// GroupingMode enumerates the grouping key of a result. The key always
// includes Supplier; Item_Category and Compliance are added exactly when the
// corresponding criteria field is "All", so broad queries keep per-category
// and per-compliance granularity while narrowed queries collapse to one row
// per supplier.
type GroupingMode int

const (
	GroupBySupplier GroupingMode = iota
	GroupBySupplierCategory
	GroupBySupplierCompliance
	GroupBySupplierCategoryCompliance
)

// Mode derives the grouping mode from the criteria.
func (c Criteria) Mode() GroupingMode {
	byCategory := c.ItemCategory == CategoryAll
	byCompliance := c.Compliance == ComplianceAll
	switch {
	case byCategory && byCompliance:
		return GroupBySupplierCategoryCompliance
	case byCategory:
		return GroupBySupplierCategory
	case byCompliance:
		return GroupBySupplierCompliance
	default:
		return GroupBySupplier
	}
}

// IncludesCategory reports whether Item_Category is part of the group key.
func (m GroupingMode) IncludesCategory() bool {
	return m == GroupBySupplierCategory || m == GroupBySupplierCategoryCompliance
}

// IncludesCompliance reports whether Compliance is part of the group key.
func (m GroupingMode) IncludesCompliance() bool {
	return m == GroupBySupplierCompliance || m == GroupBySupplierCategoryCompliance
}
