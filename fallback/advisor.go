// Package fallback produces relaxed-criteria alternatives when the
// recommendation engine finds no exact match.
package fallback

import (
	"github.com/sourcelens-org/sourcelens/dataset"
	"github.com/sourcelens-org/sourcelens/engine"
)

// Relaxation applied to the original thresholds. Category and compliance
// preference are never relaxed.
const (
	DefectRateTolerance = 2.0 // added to max_defect_rate, percent
	LeadTimeTolerance   = 2   // added to max_lead_time, days
	PriceFactor         = 1.5 // multiplies max_price
)

// Advice is an annotated alternative result.
type Advice struct {
	Result  *engine.Result  `json:"result"`
	Relaxed engine.Criteria `json:"relaxed_criteria"`
}

// Relax widens the three numeric thresholds of a criteria set.
func Relax(c engine.Criteria) engine.Criteria {
	c.MaxDefectRate += DefectRateTolerance
	c.MaxLeadTime += LeadTimeTolerance
	c.MaxPrice *= PriceFactor
	return c
}

// Advise re-runs the engine with relaxed thresholds and annotates every
// returned row with the reasons it misses the original criteria. Call it
// only after Recommend(original) came back empty. The second return is false
// when even the relaxed criteria match nothing.
func Advise(t *dataset.Table, original engine.Criteria) (*Advice, bool) {
	relaxed := Relax(original)

	res := engine.Recommend(t, relaxed)
	if res.Empty() {
		return nil, false
	}

	for i := range res.Rows {
		res.Rows[i].Note = reasonFor(res.Rows[i], original)
	}
	res.Annotated = true

	return &Advice{Result: res, Relaxed: relaxed}, true
}
