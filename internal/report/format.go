// Package report renders analysis results as the plain-text console report.
package report

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ColumnWidth is the left-justified width of every table column.
const ColumnWidth = 22

// FormatCurrency renders v as dollars with thousands separators and two
// decimals, e.g. "$26,333.33".
func FormatCurrency(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatPercent renders a fraction as a whole percentage, e.g. 0.94 -> "94%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// FormatHours renders a duration in hours with one decimal.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatFlag renders a boolean as "True" or "False".
func FormatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// pad left-justifies s to ColumnWidth. Longer values are kept whole.
func pad(s string) string {
	return fmt.Sprintf("%-*s", ColumnWidth, s)
}
