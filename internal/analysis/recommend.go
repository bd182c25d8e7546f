package analysis

import "github.com/j-veylop/freshbox-analyzer/internal/models"

// FallbackRecommendation is returned for categories without a dedicated playbook.
const FallbackRecommendation = "Focus on the identified category to develop targeted efficiency initiatives."

var recommendations = map[models.Category]string{
	models.CategoryFuel: "Fuel costs show the highest volatility. Negotiate bulk fuel contracts, " +
		"optimize routing, and increase driver coaching on fuel-efficient practices " +
		"to stabilize spending.",
	models.CategoryMaintenance: "Maintenance expenses fluctuate notably. Implement predictive maintenance " +
		"using telematics data and schedule off-peak service windows to reduce " +
		"emergency repairs.",
	models.CategoryLabor: "Labor costs vary the most. Review staffing models, expand cross-training, " +
		"and explore incentives tied to delivery efficiency to curb overtime.",
	models.CategoryWarehouse: "Warehouse spending has the highest variation. Optimize space utilization, " +
		"negotiate energy rates, and pilot automation for repetitive handling tasks.",
}

// Recommendation returns the improvement playbook for the target category.
func Recommendation(target models.Category) string {
	if text, ok := recommendations[target]; ok {
		return text
	}
	return FallbackRecommendation
}
