// Package export writes analysis results to an Excel workbook.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
)

// Workbook layout
const (
	FileName     = "freshbox_cost_analysis.xlsx"
	MetricsSheet = "Metrics"
	SummarySheet = "Summary"

	currencyFormat = "$#,##0.00"
	percentFormat  = "0%"
	ratioFormat    = "0.0000"
)

// ErrNoResults is returned when there is nothing to export.
var ErrNoResults = errors.New("no analysis results to export")

type styles struct {
	header   int
	currency int
	percent  int
	ratio    int
}

// WriteWorkbook saves the metrics table and the summary of res into
// dir/freshbox_cost_analysis.xlsx and returns the written path.
func WriteWorkbook(res *models.AnalysisResults, dir string) (string, error) {
	if res == nil || len(res.Records) == 0 {
		return "", ErrNoResults
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	st, err := newStyles(f)
	if err != nil {
		return "", err
	}

	if err := f.SetSheetName("Sheet1", MetricsSheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeMetrics(f, st, res.Records); err != nil {
		return "", fmt.Errorf("failed to write metrics sheet: %w", err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummary(f, st, res); err != nil {
		return "", fmt.Errorf("failed to write summary sheet: %w", err)
	}

	f.SetActiveSheet(0)

	path := filepath.Join(dir, FileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	currency := currencyFormat
	percent := percentFormat
	ratio := ratioFormat

	if st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	}); err != nil {
		return st, fmt.Errorf("failed to create header style: %w", err)
	}
	if st.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currency}); err != nil {
		return st, fmt.Errorf("failed to create currency style: %w", err)
	}
	if st.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percent}); err != nil {
		return st, fmt.Errorf("failed to create percent style: %w", err)
	}
	if st.ratio, err = f.NewStyle(&excelize.Style{CustomNumFmt: &ratio}); err != nil {
		return st, fmt.Errorf("failed to create ratio style: %w", err)
	}
	return st, nil
}

// metricsRow lays out one record in the column order of report.Headers.
func metricsRow(r models.MonthRecord) []any {
	return []any{
		r.Month,
		r.FuelCost,
		r.MaintenanceCost,
		r.LaborCost,
		r.WarehouseCost,
		r.TotalOperatingCost,
		r.DeliveriesMade,
		r.CostPerDelivery,
		r.AvgDeliveryTime,
		r.OnTimeRate,
		report.FormatFlag(r.FuelFlag),
		report.FormatFlag(r.OnTimeFlag),
	}
}

func writeMetrics(f *excelize.File, st styles, records []models.MonthRecord) error {
	headers := make([]any, len(report.Headers))
	for i, h := range report.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(MetricsSheet, "A1", &headers); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(report.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(MetricsSheet, "A1", last+"1", st.header); err != nil {
		return err
	}
	if err := f.SetColWidth(MetricsSheet, "A", last, 22); err != nil {
		return err
	}

	for i, r := range records {
		row := metricsRow(r)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(MetricsSheet, cell, &row); err != nil {
			return err
		}
	}

	end := len(records) + 1
	ranges := []struct {
		from, to string
		style    int
	}{
		{"B", "F", st.currency},
		{"H", "H", st.currency},
		{"J", "J", st.percent},
	}
	for _, rg := range ranges {
		if err := f.SetCellStyle(MetricsSheet, fmt.Sprintf("%s2", rg.from), fmt.Sprintf("%s%d", rg.to, end), rg.style); err != nil {
			return err
		}
	}

	return f.SetPanes(MetricsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

type summaryLine struct {
	label string
	value any
	style int
}

func writeSummary(f *excelize.File, st styles, res *models.AnalysisResults) error {
	header := []any{"Category", "Average", "Std Dev", "Coefficient of Variation"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "D1", st.header); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "D", 24); err != nil {
		return err
	}

	row := 2
	for _, stat := range res.Volatility {
		values := []any{string(stat.Category), stat.Mean, stat.StdDev, stat.CoeffVar}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}
	if row > 2 {
		if err := f.SetCellStyle(SummarySheet, "B2", fmt.Sprintf("C%d", row-1), st.currency); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, "D2", fmt.Sprintf("D%d", row-1), st.ratio); err != nil {
			return err
		}
	}

	row++
	summary := []summaryLine{
		{"Optimization Target", string(res.OptimizationTarget), 0},
		{"Recommendation", res.Recommendation, 0},
		{"Highest Cost per Delivery", res.Highest.Month, 0},
		{"Cost per Delivery", res.Highest.CostPerDelivery, st.currency},
		{"Top Cost Component", string(res.TopComponent), 0},
		{"Top Component Cost", res.TopComponentCost, st.currency},
		{"Total Operating Cost", res.TotalOperatingCost(), st.currency},
		{"Run ID", res.RunID, 0},
	}
	if !res.GeneratedAt.IsZero() {
		summary = append(summary, summaryLine{"Generated At", res.GeneratedAt.Format("2006-01-02 15:04:05"), 0})
	}

	for _, s := range summary {
		label := fmt.Sprintf("A%d", row)
		value := fmt.Sprintf("B%d", row)
		if err := f.SetCellValue(SummarySheet, label, s.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, label, label, st.header); err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, value, s.value); err != nil {
			return err
		}
		if s.style != 0 {
			if err := f.SetCellStyle(SummarySheet, value, value, s.style); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}
