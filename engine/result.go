package engine

// Row is one aggregated result group. ItemCategory and Compliance are set
// only when the grouping mode includes them.
type Row struct {
	Supplier     string `json:"supplier"`
	ItemCategory string `json:"item_category,omitempty"`
	Compliance   string `json:"compliance,omitempty"`

	AvgNegotiatedPrice float64 `json:"avg_negotiated_price"`
	LeadTime           float64 `json:"lead_time"`
	DefectRate         float64 `json:"defect_rate"`
	PriceEfficiency    float64 `json:"price_efficiency"`
	TotalQuantity      int     `json:"total_quantity"`
	TotalOrders        int     `json:"total_orders"`

	// StatusCounts holds one entry per Order_Status value present in the
	// filtered set; groups with no rows in a status carry 0.
	StatusCounts map[string]int `json:"status_counts"`

	// Note is the fallback advisor's reason annotation ("Catatan").
	Note string `json:"catatan,omitempty"`
}

// Result is a ranked, aggregated result table. A freshly allocated Result is
// returned per query; the canonical table is never touched.
type Result struct {
	Mode          GroupingMode `json:"-"`
	StatusColumns []string     `json:"status_columns,omitempty"` // ascending Order_Status values
	Rows          []Row        `json:"rows"`
	Annotated     bool         `json:"annotated,omitempty"` // rows carry fallback notes
}

// Empty reports whether no group survived filtering. Callers branch on this
// to decide whether to consult the fallback advisor.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}
