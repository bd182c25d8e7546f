package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/j-veylop/freshbox-analyzer/internal/analysis"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// Heading is the first line of the report.
const Heading = "FreshBox Logistics - Cost Optimization Analysis"

// ChartSkippedMessage takes the place of the "Trend chart saved to" line
// when a run produced no chart, either because no plotting backend is
// compiled in or because CHART_ENABLED is false.
const ChartSkippedMessage = "plotting backend is not available; skipping trend chart generation."

// Headers are the metrics table column titles, in order.
var Headers = []string{
	"Month",
	"Fuel Cost ($)",
	"Truck Maintenance ($)",
	"Labor Cost ($)",
	"Warehouse Cost ($)",
	"Total Operating Cost ($)",
	"Deliveries Made",
	"Cost per Delivery ($)",
	"Avg. Delivery Time (hrs)",
	"% On-Time Deliveries",
	"Fuel Flag",
	"On-Time Flag",
}

// Row returns the formatted (unpadded) table cells for one record.
func Row(r models.MonthRecord) []string {
	return []string{
		r.Month,
		FormatCurrency(r.FuelCost),
		FormatCurrency(r.MaintenanceCost),
		FormatCurrency(r.LaborCost),
		FormatCurrency(r.WarehouseCost),
		FormatCurrency(r.TotalOperatingCost),
		strconv.Itoa(r.DeliveriesMade),
		FormatCurrency(r.CostPerDelivery),
		FormatHours(r.AvgDeliveryTime),
		FormatPercent(r.OnTimeRate),
		FormatFlag(r.FuelFlag),
		FormatFlag(r.OnTimeFlag),
	}
}

// Write prints the full report for results to w.
func Write(w io.Writer, results *models.AnalysisResults) error {
	_, err := io.WriteString(w, Render(results))
	return err
}

// Render returns the full report text, ending in a newline.
func Render(results *models.AnalysisResults) string {
	var b strings.Builder

	b.WriteString(Heading + "\n\n")
	b.WriteString("Monthly Metrics:\n")
	writeTable(&b, results.Records)

	if highest, ok := analysis.HighestCostPerDelivery(results.Records); ok {
		top, topCost := analysis.TopCostComponent(highest)
		b.WriteString("\nHighest Cost per Delivery:\n")
		fmt.Fprintf(&b, "Month: %s\n", highest.Month)
		fmt.Fprintf(&b, "Cost per Delivery: %s\n", FormatCurrency(highest.CostPerDelivery))
		fmt.Fprintf(&b, "Top Cost Component: %s (%s)\n", top, FormatCurrency(topCost))
	}

	b.WriteString("\nAverage Monthly Cost by Category:\n")
	for _, a := range results.Averages {
		fmt.Fprintf(&b, "%s: %s\n", a.Category, FormatCurrency(a.Average))
	}

	b.WriteString("\nOptimization Focus:\n")
	b.WriteString(string(results.OptimizationTarget) + "\n")
	b.WriteString(results.Recommendation + "\n")

	if results.HasChart() {
		fmt.Fprintf(&b, "\nTrend chart saved to: %s\n", results.ChartPath)
	} else {
		b.WriteString("\n" + ChartSkippedMessage + "\n")
	}

	if results.WorkbookPath != "" {
		fmt.Fprintf(&b, "Workbook saved to: %s\n", results.WorkbookPath)
	}

	return b.String()
}

func writeTable(b *strings.Builder, records []models.MonthRecord) {
	writeRow(b, Headers)
	for _, r := range records {
		writeRow(b, Row(r))
	}
}

func writeRow(b *strings.Builder, cells []string) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c)
	}
	b.WriteString(strings.Join(padded, " "))
	b.WriteString("\n")
}
