package engine

import (
	"testing"

	"github.com/sourcelens-org/sourcelens/dataset"
)

// Prices are in source currency and multiplied by 16000 at load; criteria in
// these tests use target-currency ceilings. Delta's single row has no
// delivery date and no reference, so its lead time is undefined.
var engineCSV = []byte(`PO_ID,Supplier,Item_Category,Compliance,Order_Status,Quantity,Defective_Units,Unit_Price,Negotiated_Price,Order_Date,Delivery_Date
PO-001,Alpha,Electronics,Yes,Open,100,5,10,8,2024-01-01,2024-01-04
PO-002,Alpha,Electronics,Yes,Closed,100,5,10,8,2024-01-01,2024-01-04
PO-003,Beta,Electronics,Yes,Open,100,2,10,7,2024-01-01,2024-01-02
PO-004,Gamma,Furniture,No,Open,100,2,10,6,2024-01-01,2024-01-05
PO-005,Delta,Electronics,Yes,Open,100,0,10,5,2024-01-01,
`)

func loadEngineFixture(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.LoadCSV(engineCSV)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	return table
}

func wideCriteria() Criteria {
	return Criteria{
		ItemCategory:  CategoryAll,
		MaxPrice:      1e9,
		MaxLeadTime:   30,
		MaxDefectRate: 100,
		Compliance:    ComplianceAll,
	}
}

func totalOrders(res *Result) int {
	n := 0
	for _, row := range res.Rows {
		n += row.TotalOrders
	}
	return n
}

func TestRecommendEmptyTable(t *testing.T) {
	empty, err := dataset.LoadCSV([]byte("PO_ID,Supplier,Item_Category,Compliance,Order_Status,Quantity,Defective_Units,Unit_Price,Negotiated_Price,Order_Date,Delivery_Date\n"))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if res := Recommend(empty, wideCriteria()); !res.Empty() {
		t.Errorf("expected empty result, got %d rows", len(res.Rows))
	}
	if res := Recommend(nil, wideCriteria()); !res.Empty() {
		t.Error("nil table should yield an empty result")
	}
}

func TestRecommendAllFilteredOut(t *testing.T) {
	table := loadEngineFixture(t)

	c := wideCriteria()
	c.MaxDefectRate = 0.5

	res := Recommend(table, c)
	if !res.Empty() {
		t.Errorf("expected empty result, got %d rows", len(res.Rows))
	}
}

func TestFilterCategoryCaseInsensitive(t *testing.T) {
	table := loadEngineFixture(t)

	c := wideCriteria()
	c.ItemCategory = "fUrNiTuRe"

	res := Recommend(table, c)
	if len(res.Rows) != 1 || res.Rows[0].Supplier != "Gamma" {
		t.Fatalf("rows = %+v, want single Gamma group", res.Rows)
	}
}

func TestFilterCompliance(t *testing.T) {
	table := loadEngineFixture(t)

	c := wideCriteria()
	c.Compliance = ComplianceNo

	res := Recommend(table, c)
	for _, row := range res.Rows {
		if row.Supplier != "Gamma" {
			t.Errorf("unexpected supplier %s with compliance preference No", row.Supplier)
		}
	}
	if totalOrders(res) != 1 {
		t.Errorf("total orders = %d, want 1", totalOrders(res))
	}
}

func TestFilterThresholdsInclusive(t *testing.T) {
	table := loadEngineFixture(t)

	// Alpha: defect 5%, lead 3, price 8*16000. Exact boundary values match.
	c := Criteria{
		ItemCategory:  "Electronics",
		MaxPrice:      8 * 16000,
		MaxLeadTime:   3,
		MaxDefectRate: 5,
		Compliance:    ComplianceYes,
	}

	res := Recommend(table, c)
	found := false
	for _, row := range res.Rows {
		if row.Supplier == "Alpha" {
			found = true
		}
	}
	if !found {
		t.Error("boundary-value rows must pass inclusive thresholds")
	}
}

func TestFilterExcludesUndefinedLeadTime(t *testing.T) {
	table := loadEngineFixture(t)

	res := Recommend(table, wideCriteria())
	for _, row := range res.Rows {
		if row.Supplier == "Delta" {
			t.Error("rows with undefined lead time must not match")
		}
	}
}

func TestFilterMonotonicity(t *testing.T) {
	table := loadEngineFixture(t)

	base := Criteria{
		ItemCategory:  CategoryAll,
		MaxPrice:      7 * 16000,
		MaxLeadTime:   3,
		MaxDefectRate: 2,
		Compliance:    ComplianceAll,
	}
	baseCount := totalOrders(Recommend(table, base))

	relaxations := []Criteria{base, base, base}
	relaxations[0].MaxPrice *= 2
	relaxations[1].MaxLeadTime += 10
	relaxations[2].MaxDefectRate += 10

	for i, c := range relaxations {
		if got := totalOrders(Recommend(table, c)); got < baseCount {
			t.Errorf("relaxation %d shrank the filtered set: %d < %d", i, got, baseCount)
		}
	}
}

func TestGroupingModeFromCriteria(t *testing.T) {
	cases := []struct {
		category   string
		compliance CompliancePreference
		want       GroupingMode
	}{
		{"Electronics", ComplianceYes, GroupBySupplier},
		{CategoryAll, ComplianceYes, GroupBySupplierCategory},
		{"Electronics", ComplianceAll, GroupBySupplierCompliance},
		{CategoryAll, ComplianceAll, GroupBySupplierCategoryCompliance},
	}

	for _, tc := range cases {
		c := wideCriteria()
		c.ItemCategory = tc.category
		c.Compliance = tc.compliance
		if got := c.Mode(); got != tc.want {
			t.Errorf("Mode(%q, %q) = %v, want %v", tc.category, tc.compliance, got, tc.want)
		}
	}
}

func TestGroupingColumnPresence(t *testing.T) {
	table := loadEngineFixture(t)

	c := wideCriteria()
	c.Compliance = ComplianceYes

	res := Recommend(table, c)
	if res.Mode != GroupBySupplierCategory {
		t.Fatalf("Mode = %v, want GroupBySupplierCategory", res.Mode)
	}
	for _, row := range res.Rows {
		if row.ItemCategory == "" {
			t.Errorf("group %s missing Item_Category", row.Supplier)
		}
		if row.Compliance != "" {
			t.Errorf("group %s should not carry Compliance", row.Supplier)
		}
	}

	res = Recommend(table, wideCriteria())
	if res.Mode != GroupBySupplierCategoryCompliance {
		t.Fatalf("Mode = %v, want GroupBySupplierCategoryCompliance", res.Mode)
	}
	for _, row := range res.Rows {
		if row.ItemCategory == "" || row.Compliance == "" {
			t.Errorf("group %s missing a grouping column", row.Supplier)
		}
	}
}

func TestAggregatesPerGroup(t *testing.T) {
	table := loadEngineFixture(t)

	res := Recommend(table, wideCriteria())

	var alpha *Row
	for i := range res.Rows {
		if res.Rows[i].Supplier == "Alpha" {
			alpha = &res.Rows[i]
		}
	}
	if alpha == nil {
		t.Fatal("Alpha group missing")
	}

	if alpha.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", alpha.TotalOrders)
	}
	if alpha.TotalQuantity != 200 {
		t.Errorf("TotalQuantity = %d, want 200", alpha.TotalQuantity)
	}
	if alpha.AvgNegotiatedPrice != 8*16000 {
		t.Errorf("AvgNegotiatedPrice = %v, want %v", alpha.AvgNegotiatedPrice, 8*16000)
	}
	if alpha.DefectRate != 5 {
		t.Errorf("DefectRate = %v, want 5", alpha.DefectRate)
	}
	if alpha.LeadTime != 3 {
		t.Errorf("LeadTime = %v, want 3", alpha.LeadTime)
	}
}

func TestStatusCrosstabKeepsAllGroups(t *testing.T) {
	table := loadEngineFixture(t)

	res := Recommend(table, wideCriteria())

	if len(res.StatusColumns) != 2 || res.StatusColumns[0] != "Closed" || res.StatusColumns[1] != "Open" {
		t.Fatalf("StatusColumns = %v, want [Closed Open]", res.StatusColumns)
	}

	for _, row := range res.Rows {
		for _, status := range res.StatusColumns {
			if _, ok := row.StatusCounts[status]; !ok {
				t.Errorf("group %s missing status column %s", row.Supplier, status)
			}
		}
		if row.Supplier == "Beta" && row.StatusCounts["Closed"] != 0 {
			t.Errorf("Beta Closed count = %d, want 0", row.StatusCounts["Closed"])
		}
		if row.Supplier == "Alpha" {
			if row.StatusCounts["Open"] != 1 || row.StatusCounts["Closed"] != 1 {
				t.Errorf("Alpha status counts = %v, want Open 1 Closed 1", row.StatusCounts)
			}
		}
	}
}

func TestSortOrder(t *testing.T) {
	table := loadEngineFixture(t)

	// Defect rates: Beta 2 (lead 1), Gamma 2 (lead 4), Alpha 5 (lead 3).
	res := Recommend(table, wideCriteria())

	var got []string
	for _, row := range res.Rows {
		got = append(got, row.Supplier)
	}
	want := []string{"Beta", "Gamma", "Alpha"}
	if len(got) != len(want) {
		t.Fatalf("suppliers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suppliers = %v, want %v", got, want)
		}
	}
}

func TestCriteriaValidate(t *testing.T) {
	good := Criteria{MaxPrice: 10, MaxLeadTime: 1, MaxDefectRate: 5}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if good.ItemCategory != CategoryAll || good.Compliance != ComplianceAll {
		t.Error("empty category and compliance should normalize to All")
	}

	bad := []Criteria{
		{MaxPrice: -1, MaxLeadTime: 1, MaxDefectRate: 5},
		{MaxPrice: 10, MaxLeadTime: 0, MaxDefectRate: 5},
		{MaxPrice: 10, MaxLeadTime: 1, MaxDefectRate: 101},
		{MaxPrice: 10, MaxLeadTime: 1, MaxDefectRate: 5, Compliance: "Maybe"},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
