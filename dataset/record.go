package dataset

import "time"

// Record is one purchase order line of the canonical supplier table.
// Monetary fields are already converted to the target currency and the
// derived fields are computed; records are never modified after Load.
type Record struct {
	POID         string
	Supplier     string
	ItemCategory string
	Compliance   string // "Yes" or "No"
	OrderStatus  string // e.g. "Open", "Closed"

	Quantity       int
	DefectiveUnits int

	UnitPrice       float64
	NegotiatedPrice float64

	OrderDate    time.Time
	DeliveryDate *time.Time // nil when missing and no supplier reference existed

	// Derived columns. LeadTime is only meaningful when HasLeadTime is set;
	// rows without a delivery date keep an undefined lead time and never
	// match lead-time thresholds.
	LeadTime        int
	HasLeadTime     bool
	DefectRate      float64 // percent; 0 when Quantity is 0
	PriceEfficiency float64 // percent; 0 when UnitPrice is 0
}

// derive recomputes the derived columns from the current field values.
func (r *Record) derive() {
	if r.DeliveryDate != nil {
		r.LeadTime = int(r.DeliveryDate.Sub(r.OrderDate).Hours() / 24)
		r.HasLeadTime = true
	} else {
		r.LeadTime = 0
		r.HasLeadTime = false
	}

	if r.Quantity != 0 {
		r.DefectRate = float64(r.DefectiveUnits) / float64(r.Quantity) * 100
	} else {
		r.DefectRate = 0
	}

	if r.UnitPrice != 0 {
		r.PriceEfficiency = (1 - r.NegotiatedPrice/r.UnitPrice) * 100
	} else {
		r.PriceEfficiency = 0
	}
}
