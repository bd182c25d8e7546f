// Package analysis computes the cost statistics and the optimization
// recommendation for a set of month records.
package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// SummarizeCosts returns the mean monthly cost of each category, in the fixed
// category order.
func SummarizeCosts(records []models.MonthRecord) []models.CategoryAverage {
	cats := models.Categories()
	averages := make([]models.CategoryAverage, len(cats))
	for i, c := range cats {
		averages[i] = models.CategoryAverage{Category: c}
		if len(records) > 0 {
			averages[i].Average = stat.Mean(models.CategorySeries(records, c), nil)
		}
	}
	return averages
}

// CoefficientsOfVariation returns mean, population standard deviation and
// their ratio for each category. The ratio is 0 when the mean is 0.
func CoefficientsOfVariation(records []models.MonthRecord) []models.CategoryStat {
	cats := models.Categories()
	stats := make([]models.CategoryStat, len(cats))
	for i, c := range cats {
		stats[i] = categoryStat(c, models.CategorySeries(records, c))
	}
	return stats
}

func categoryStat(c models.Category, values []float64) models.CategoryStat {
	cs := models.CategoryStat{Category: c}
	if len(values) == 0 {
		return cs
	}

	cs.Mean, cs.StdDev = stat.PopMeanStdDev(values, nil)
	if cs.Mean != 0 {
		cs.CoeffVar = cs.StdDev / cs.Mean
	}
	return cs
}

// IdentifyOptimizationTarget picks the category with the highest coefficient
// of variation. Ties go to the earliest category in iteration order.
func IdentifyOptimizationTarget(records []models.MonthRecord) models.Category {
	return mostVolatile(CoefficientsOfVariation(records))
}

func mostVolatile(stats []models.CategoryStat) models.Category {
	if len(stats) == 0 {
		return ""
	}
	best := stats[0]
	for _, s := range stats[1:] {
		if s.CoeffVar > best.CoeffVar {
			best = s
		}
	}
	return best.Category
}

// HighestCostPerDelivery returns the record with the greatest cost per
// delivery. The first such record wins ties; ok is false for no records.
func HighestCostPerDelivery(records []models.MonthRecord) (rec models.MonthRecord, ok bool) {
	if len(records) == 0 {
		return models.MonthRecord{}, false
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.CostPerDelivery > best.CostPerDelivery {
			best = r
		}
	}
	return best, true
}

// TopCostComponent returns the largest of the record's four costs.
func TopCostComponent(rec models.MonthRecord) (models.Category, float64) {
	cats := models.Categories()
	top := cats[0]
	topCost := rec.Cost(top)
	for _, c := range cats[1:] {
		if cost := rec.Cost(c); cost > topCost {
			top, topCost = c, cost
		}
	}
	return top, topCost
}
