package models

import "time"

// TimeRange represents the selected history time range.
type TimeRange int

const (
	// TimeRange24Hours shows runs from the last 24 hours.
	TimeRange24Hours TimeRange = iota
	// TimeRange7Days shows runs from the last 7 days.
	TimeRange7Days
	// TimeRange30Days shows runs from the last 30 days.
	TimeRange30Days
	// TimeRangeAllTime shows every recorded run.
	TimeRangeAllTime
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRange24Hours:
		return "24 Hours"
	case TimeRange7Days:
		return "7 Days"
	case TimeRange30Days:
		return "30 Days"
	case TimeRangeAllTime:
		return "All Time"
	default:
		return "Unknown"
	}
}

// Days returns the number of days for the time range (0 = unlimited).
func (t TimeRange) Days() int {
	switch t {
	case TimeRange24Hours:
		return 1
	case TimeRange7Days:
		return 7
	case TimeRange30Days:
		return 30
	case TimeRangeAllTime:
		return 0
	default:
		return 30
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 4
}

// RunSummary is the persisted digest of one analysis run.
type RunSummary struct {
	ID                     int64
	RunID                  string
	CreatedAt              time.Time
	OptimizationTarget     Category
	Recommendation         string
	HighestMonth           string
	HighestCostPerDelivery float64
	TotalOperatingCost     float64
	ChartPath              string
	Averages               []CategoryAverage
}

// NewRunSummary digests results into a RunSummary ready to be stored.
func NewRunSummary(res *AnalysisResults) RunSummary {
	averages := make([]CategoryAverage, len(res.Averages))
	copy(averages, res.Averages)

	return RunSummary{
		RunID:                  res.RunID,
		CreatedAt:              res.GeneratedAt,
		OptimizationTarget:     res.OptimizationTarget,
		Recommendation:         res.Recommendation,
		HighestMonth:           res.Highest.Month,
		HighestCostPerDelivery: res.Highest.CostPerDelivery,
		TotalOperatingCost:     res.TotalOperatingCost(),
		ChartPath:              res.ChartPath,
		Averages:               averages,
	}
}

// RunHistory is a newest-first list of recorded runs.
type RunHistory struct {
	Range TimeRange
	Runs  []RunSummary
}

// HasData returns true if any runs were recorded in the range.
func (h *RunHistory) HasData() bool {
	return h != nil && len(h.Runs) > 0
}

// TargetShifts counts how often the optimization target changed between
// consecutive runs.
func (h *RunHistory) TargetShifts() int {
	if h == nil {
		return 0
	}
	shifts := 0
	for i := 1; i < len(h.Runs); i++ {
		if h.Runs[i].OptimizationTarget != h.Runs[i-1].OptimizationTarget {
			shifts++
		}
	}
	return shifts
}

// TargetCounts tallies how many runs selected each category, in the fixed
// category order.
func (h *RunHistory) TargetCounts() []int {
	cats := Categories()
	counts := make([]int, len(cats))
	if h == nil {
		return counts
	}
	for _, run := range h.Runs {
		for i, c := range cats {
			if run.OptimizationTarget == c {
				counts[i]++
			}
		}
	}
	return counts
}
