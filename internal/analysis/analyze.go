package analysis

import (
	"errors"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// ErrNoRecords is returned when there is nothing to analyze.
var ErrNoRecords = errors.New("no month records to analyze")

// Analyze computes every statistic of a run from the records. It leaves the
// run identity and artifact paths for the caller to fill in.
func Analyze(records []models.MonthRecord) (*models.AnalysisResults, error) {
	highest, ok := HighestCostPerDelivery(records)
	if !ok {
		return nil, ErrNoRecords
	}

	owned := make([]models.MonthRecord, len(records))
	copy(owned, records)

	volatility := CoefficientsOfVariation(owned)
	target := mostVolatile(volatility)
	top, topCost := TopCostComponent(highest)

	return &models.AnalysisResults{
		Records:            owned,
		Averages:           SummarizeCosts(owned),
		Volatility:         volatility,
		OptimizationTarget: target,
		Recommendation:     Recommendation(target),
		Highest:            highest,
		TopComponent:       top,
		TopComponentCost:   topCost,
	}, nil
}
