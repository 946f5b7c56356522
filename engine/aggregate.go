package engine

import (
	"sort"

	"github.com/sourcelens-org/sourcelens/dataset"
)

type groupKey struct {
	supplier   string
	category   string
	compliance string
}

type accumulator struct {
	key groupKey

	sumPrice      float64
	sumLeadTime   float64
	sumDefectRate float64
	sumEfficiency float64
	quantity      int
	orders        int

	statusCounts map[string]int
}

// aggregate groups the filtered records by the mode's key and computes the
// per-group aggregates plus the Order_Status cross-tabulation. Groups keep
// their first-seen order.
func aggregate(records []dataset.Record, indices []int, mode GroupingMode) ([]Row, []string) {
	byKey := make(map[groupKey]*accumulator)
	order := make([]groupKey, 0)
	statusSet := make(map[string]bool)

	for _, i := range indices {
		r := &records[i]

		key := groupKey{supplier: r.Supplier}
		if mode.IncludesCategory() {
			key.category = r.ItemCategory
		}
		if mode.IncludesCompliance() {
			key.compliance = r.Compliance
		}

		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{key: key, statusCounts: make(map[string]int)}
			byKey[key] = acc
			order = append(order, key)
		}

		acc.sumPrice += r.NegotiatedPrice
		acc.sumLeadTime += float64(r.LeadTime)
		acc.sumDefectRate += r.DefectRate
		acc.sumEfficiency += r.PriceEfficiency
		acc.quantity += r.Quantity
		acc.orders++
		acc.statusCounts[r.OrderStatus]++
		statusSet[r.OrderStatus] = true
	}

	statuses := make([]string, 0, len(statusSet))
	for s := range statusSet {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		n := float64(acc.orders)

		counts := make(map[string]int, len(statuses))
		for _, s := range statuses {
			counts[s] = acc.statusCounts[s]
		}

		rows = append(rows, Row{
			Supplier:           key.supplier,
			ItemCategory:       key.category,
			Compliance:         key.compliance,
			AvgNegotiatedPrice: acc.sumPrice / n,
			LeadTime:           acc.sumLeadTime / n,
			DefectRate:         acc.sumDefectRate / n,
			PriceEfficiency:    acc.sumEfficiency / n,
			TotalQuantity:      acc.quantity,
			TotalOrders:        acc.orders,
			StatusCounts:       counts,
		})
	}

	return rows, statuses
}

// sortRows orders rows ascending by defect rate, then lead time, then
// average price. The sort is stable, so ties keep first-seen group order.
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DefectRate != rows[j].DefectRate {
			return rows[i].DefectRate < rows[j].DefectRate
		}
		if rows[i].LeadTime != rows[j].LeadTime {
			return rows[i].LeadTime < rows[j].LeadTime
		}
		return rows[i].AvgNegotiatedPrice < rows[j].AvgNegotiatedPrice
	})
}
