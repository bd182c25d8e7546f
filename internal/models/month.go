package models

// MonthRecord is one month of operations data plus its derived metrics.
// TotalOperatingCost, CostPerDelivery and both flags are always computed from
// the raw fields by the dataset builder and never set independently.
type MonthRecord struct {
	Month           string
	FuelCost        float64
	MaintenanceCost float64
	LaborCost       float64
	WarehouseCost   float64
	DeliveriesMade  int
	AvgDeliveryTime float64 // hours
	OnTimeRate      float64 // fraction in [0,1]

	TotalOperatingCost float64
	CostPerDelivery    float64
	FuelFlag           bool
	OnTimeFlag         bool
}

// Cost returns the record's spend for the given category.
func (r MonthRecord) Cost(c Category) float64 {
	switch c {
	case CategoryFuel:
		return r.FuelCost
	case CategoryMaintenance:
		return r.MaintenanceCost
	case CategoryLabor:
		return r.LaborCost
	case CategoryWarehouse:
		return r.WarehouseCost
	default:
		return 0
	}
}

// CategorySeries extracts one category's costs across records, in order.
func CategorySeries(records []MonthRecord, c Category) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Cost(c)
	}
	return values
}

// MonthNames returns the month labels of records, in order.
func MonthNames(records []MonthRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Month
	}
	return names
}
