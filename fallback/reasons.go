package fallback

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sourcelens-org/sourcelens/engine"
)

// Reason strings keep the dataset's original Indonesian wording; prices use
// Indonesian digit grouping.
var printer = message.NewPrinter(language.Indonesian)

// reasonRule checks one original threshold against an aggregated row and
// returns a message when it is violated (or, for defect rate, nearly so).
type reasonRule func(row engine.Row, original engine.Criteria) (string, bool)

// Rules run in a fixed order against a snapshot of the row, so messages
// never depend on each other.
var reasonRules = []reasonRule{
	defectReason,
	priceReason,
	leadTimeReason,
}

// reasonFor concatenates the matching rule messages with ", ". A row that
// already satisfied the original criteria yields an empty string.
func reasonFor(row engine.Row, original engine.Criteria) string {
	var parts []string
	for _, rule := range reasonRules {
		if msg, ok := rule(row, original); ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ", ")
}

// defectReason has a "near threshold" branch that the price and lead-time
// rules intentionally lack.
func defectReason(row engine.Row, original engine.Criteria) (string, bool) {
	switch {
	case math.Abs(row.DefectRate-original.MaxDefectRate) <= DefectRateTolerance:
		return fmt.Sprintf("Defect Rate mendekati batas (%.1f%%)", row.DefectRate), true
	case row.DefectRate > original.MaxDefectRate:
		return fmt.Sprintf("Defect Rate %.1f%%", row.DefectRate), true
	default:
		return "", false
	}
}

func priceReason(row engine.Row, original engine.Criteria) (string, bool) {
	if row.AvgNegotiatedPrice <= original.MaxPrice {
		return "", false
	}
	return printer.Sprintf("Harga %d > %d", int64(row.AvgNegotiatedPrice), int64(original.MaxPrice)), true
}

func leadTimeReason(row engine.Row, original engine.Criteria) (string, bool) {
	if row.LeadTime <= float64(original.MaxLeadTime) {
		return "", false
	}
	return fmt.Sprintf("Lead Time %s hari", formatDays(row.LeadTime)), true
}

// formatDays renders a mean lead time without trailing zeros (7, 7.5, 7.25).
func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
