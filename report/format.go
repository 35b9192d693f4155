package report

import (
	"math"
	"strconv"
	"strings"
)

// NotAvailable is the rendering of an undefined value.
const NotAvailable = "N/A"

// FormatValue renders v with the given number of decimals, or NotAvailable
// when ok is false or v is NaN. Infinite values render as "+Inf"/"-Inf".
func FormatValue(v float64, ok bool, digits int) string {
	if !ok || math.IsNaN(v) {
		return NotAvailable
	}

	return strconv.FormatFloat(v, 'f', digits, 64)
}

// FormatPValue renders a p-value with the given number of decimals.
//
// A positive p-value that would round below the last displayed decimal is
// shown as a bound instead, e.g. "< 0.0001" for four digits. Zero is shown
// as zero.
func FormatPValue(p float64, ok bool, digits int) string {
	if !ok || math.IsNaN(p) {
		return NotAvailable
	}

	floor := math.Pow10(-digits)
	if p > 0 && p < floor {
		return "< " + strconv.FormatFloat(floor, 'f', digits, 64)
	}

	return strconv.FormatFloat(p, 'f', digits, 64)
}

// formatPtr renders an optional value.
func formatPtr(v *float64, digits int) string {
	if v == nil {
		return NotAvailable
	}

	return FormatValue(*v, true, digits)
}

func joinLines(lines []Line) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Label)
		sb.WriteString(": ")
		sb.WriteString(l.Value)
	}

	return sb.String()
}
