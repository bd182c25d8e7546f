package models

import "time"

// AnalysisResults is everything one analysis run produces.
type AnalysisResults struct {
	RunID       string
	GeneratedAt time.Time

	Records    []MonthRecord
	Averages   []CategoryAverage
	Volatility []CategoryStat

	OptimizationTarget Category
	Recommendation     string

	// Highest is the month with the greatest cost per delivery.
	Highest          MonthRecord
	TopComponent     Category
	TopComponentCost float64

	ChartPath    string // empty when no chart was generated
	WorkbookPath string // empty when the workbook was not exported
}

// HasChart reports whether a trend chart was written for this run.
func (r *AnalysisResults) HasChart() bool {
	return r != nil && r.ChartPath != ""
}

// Average returns the mean cost recorded for c.
func (r *AnalysisResults) Average(c Category) (float64, bool) {
	if r == nil {
		return 0, false
	}
	for _, a := range r.Averages {
		if a.Category == c {
			return a.Average, true
		}
	}
	return 0, false
}

// TotalOperatingCost sums the operating cost over every month.
func (r *AnalysisResults) TotalOperatingCost() float64 {
	if r == nil {
		return 0
	}
	var total float64
	for _, rec := range r.Records {
		total += rec.TotalOperatingCost
	}
	return total
}

// FlaggedMonths returns the months with the fuel flag and the on-time flag set.
func (r *AnalysisResults) FlaggedMonths() (fuel, onTime []string) {
	if r == nil {
		return nil, nil
	}
	for _, rec := range r.Records {
		if rec.FuelFlag {
			fuel = append(fuel, rec.Month)
		}
		if rec.OnTimeFlag {
			onTime = append(onTime, rec.Month)
		}
	}
	return fuel, onTime
}
