package engine

import (
	"math"
	"sort"
)

// ChartConfig is a render-ready chart description for the presentation
// layer. The shape matches what chart frontends already consume.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "line"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is a single data series.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is one data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildQuantityChart returns a bar chart of total quantity per group,
// largest first. Returns nil for an empty result.
func BuildQuantityChart(res *Result) *ChartConfig {
	if res.Empty() {
		return nil
	}

	sorted := make([]Row, len(res.Rows))
	copy(sorted, res.Rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalQuantity > sorted[j].TotalQuantity
	})

	points := make([]ChartPoint, 0, len(sorted))
	for _, row := range sorted {
		points = append(points, ChartPoint{Label: row.Supplier, Value: float64(row.TotalQuantity)})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Total Quantity per Supplier",
		XAxis:      "Supplier",
		YAxis:      "Total Quantity",
		Series:     []ChartSeries{{Name: "Total Quantity", Data: points, Color: defaultColors[0]}},
		Colors:     defaultColors[:1],
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildDefectChart returns a line chart of mean defect rate per group in
// result order. Returns nil for an empty result.
func BuildDefectChart(res *Result) *ChartConfig {
	if res.Empty() {
		return nil
	}

	points := make([]ChartPoint, 0, len(res.Rows))
	for _, row := range res.Rows {
		points = append(points, ChartPoint{Label: row.Supplier, Value: roundTo2(row.DefectRate)})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      "Rata-rata Defect Rate Tiap Supplier",
		XAxis:      "Supplier",
		YAxis:      "Defect Rate (%)",
		Series:     []ChartSeries{{Name: "Defect Rate (%)", Data: points, Color: "#E91E63"}},
		Colors:     []string{"#E91E63"},
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
