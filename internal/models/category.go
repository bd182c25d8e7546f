// Package models defines data structures and domain types.
package models

// Category identifies one of the four operating cost categories.
// The string value is the column header used in reports and exports.
type Category string

const (
	// CategoryFuel is fuel spend.
	CategoryFuel Category = "Fuel Cost ($)"
	// CategoryMaintenance is truck maintenance spend.
	CategoryMaintenance Category = "Truck Maintenance ($)"
	// CategoryLabor is labor spend.
	CategoryLabor Category = "Labor Cost ($)"
	// CategoryWarehouse is warehouse spend.
	CategoryWarehouse Category = "Warehouse Cost ($)"
)

// Categories returns the cost categories in their fixed iteration order.
// Ties in every "pick the largest" computation resolve to the earliest entry.
func Categories() []Category {
	return []Category{
		CategoryFuel,
		CategoryMaintenance,
		CategoryLabor,
		CategoryWarehouse,
	}
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// Short returns a compact label for narrow layouts such as chart legends.
func (c Category) Short() string {
	switch c {
	case CategoryFuel:
		return "Fuel"
	case CategoryMaintenance:
		return "Maintenance"
	case CategoryLabor:
		return "Labor"
	case CategoryWarehouse:
		return "Warehouse"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryAverage is the mean monthly cost of one category.
type CategoryAverage struct {
	Category Category
	Average  float64
}

// CategoryStat holds the dispersion statistics used to rank volatility.
type CategoryStat struct {
	Category Category
	Mean     float64
	StdDev   float64 // population standard deviation
	CoeffVar float64 // StdDev / Mean, 0 when Mean is 0
}
