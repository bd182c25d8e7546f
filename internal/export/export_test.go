package export

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/j-veylop/freshbox-analyzer/internal/analysis"
	"github.com/j-veylop/freshbox-analyzer/internal/dataset"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
	"github.com/j-veylop/freshbox-analyzer/internal/report"
)

func newTestResults(t *testing.T) *models.AnalysisResults {
	t.Helper()
	records, err := dataset.BuildRecords(dataset.Default())
	if err != nil {
		t.Fatalf("BuildRecords() failed: %v", err)
	}
	res, err := analysis.Analyze(records)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	res.RunID = "test-run"
	res.GeneratedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return res
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rawFloat(t *testing.T, f *excelize.File, sheet, cell string) float64 {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s) failed: %v", sheet, cell, err)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		t.Fatalf("%s!%s = %q is not a number", sheet, cell, v)
	}
	return n
}

func TestWriteWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	res := newTestResults(t)

	path, err := WriteWorkbook(res, dir)
	if err != nil {
		t.Fatalf("WriteWorkbook() failed: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, FileName))
	}

	f := openWorkbook(t, path)

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != MetricsSheet || sheets[1] != SummarySheet {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, MetricsSheet, SummarySheet)
	}

	rows, err := f.GetRows(MetricsSheet)
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}
	if len(rows) != len(res.Records)+1 {
		t.Fatalf("metrics rows = %d, want %d", len(rows), len(res.Records)+1)
	}
	for i, h := range report.Headers {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	// Row 2 is April; every value must sit under its own header.
	april := []struct {
		header string
		cell   string
		want   float64
	}{
		{"Fuel Cost ($)", "B2", 88500},
		{"Truck Maintenance ($)", "C2", 24000},
		{"Labor Cost ($)", "D2", 132000},
		{"Warehouse Cost ($)", "E2", 76000},
		{"Total Operating Cost ($)", "F2", 320500},
		{"Deliveries Made", "G2", 12300},
		{"Cost per Delivery ($)", "H2", 320500.0 / 12300.0},
		{"Avg. Delivery Time (hrs)", "I2", 2.5},
		{"% On-Time Deliveries", "J2", 0.94},
	}
	if got, _ := f.GetCellValue(MetricsSheet, "A2"); got != "April" {
		t.Errorf("A2 = %q, want April", got)
	}
	for _, c := range april {
		col, _, err := excelize.SplitCellName(c.cell)
		if err != nil {
			t.Fatalf("SplitCellName(%s) failed: %v", c.cell, err)
		}
		if got, _ := f.GetCellValue(MetricsSheet, col+"1"); got != c.header {
			t.Errorf("%s1 = %q, want %q", col, got, c.header)
		}
		if got := rawFloat(t, f, MetricsSheet, c.cell); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("April %s (%s) = %v, want %v", c.header, c.cell, got, c.want)
		}
	}

	flags := []struct {
		cell string
		want string
	}{
		{"K2", "False"}, // April fuel
		{"L2", "False"}, // April on-time
		{"K5", "True"},  // July fuel
		{"L4", "False"}, // June on-time, 0.93 is not below the threshold
		{"L5", "True"},  // July on-time
	}
	for _, fl := range flags {
		if got, _ := f.GetCellValue(MetricsSheet, fl.cell); got != fl.want {
			t.Errorf("%s = %q, want %q", fl.cell, got, fl.want)
		}
	}

	// Display formats follow the columns.
	if got, _ := f.GetCellValue(MetricsSheet, "F2"); got != "$320,500.00" {
		t.Errorf("F2 displays %q, want $320,500.00", got)
	}
	if got, _ := f.GetCellValue(MetricsSheet, "J2"); got != "94%" {
		t.Errorf("J2 displays %q, want 94%%", got)
	}
}

func TestWriteWorkbook_Summary(t *testing.T) {
	res := newTestResults(t)
	path, err := WriteWorkbook(res, t.TempDir())
	if err != nil {
		t.Fatalf("WriteWorkbook() failed: %v", err)
	}

	f := openWorkbook(t, path)

	if got, _ := f.GetCellValue(SummarySheet, "A3"); got != string(models.CategoryMaintenance) {
		t.Errorf("A3 = %q, want %q", got, models.CategoryMaintenance)
	}
	if got := rawFloat(t, f, SummarySheet, "B2"); math.Abs(got-93000) > 1e-6 {
		t.Errorf("fuel mean = %v, want 93000", got)
	}

	rows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}
	labels := make(map[string]string)
	for _, r := range rows {
		if len(r) >= 2 {
			labels[r[0]] = r[1]
		}
	}

	want := map[string]string{
		"Optimization Target":       string(models.CategoryMaintenance),
		"Recommendation":            res.Recommendation,
		"Highest Cost per Delivery": "April",
		"Top Cost Component":        string(models.CategoryLabor),
		"Run ID":                    "test-run",
		"Generated At":              "2026-03-01 12:00:00",
	}
	for label, v := range want {
		if labels[label] != v {
			t.Errorf("%s = %q, want %q", label, labels[label], v)
		}
	}
}

func TestWriteWorkbook_NoResults(t *testing.T) {
	if _, err := WriteWorkbook(nil, t.TempDir()); !errors.Is(err, ErrNoResults) {
		t.Errorf("WriteWorkbook(nil) error = %v, want ErrNoResults", err)
	}
	if _, err := WriteWorkbook(&models.AnalysisResults{}, t.TempDir()); !errors.Is(err, ErrNoResults) {
		t.Errorf("WriteWorkbook(empty) error = %v, want ErrNoResults", err)
	}
}
