// Package dataset holds the embedded FreshBox operations data and turns it
// into per-month records.
package dataset

import (
	"errors"
	"fmt"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// Flag thresholds.
const (
	// FuelFlagThreshold flags months whose fuel cost is strictly above it.
	FuelFlagThreshold = 95000.0
	// OnTimeFlagThreshold flags months whose on-time rate is strictly below it.
	OnTimeFlagThreshold = 0.93
)

var (
	// ErrColumnLength is returned when the columns are not all the same length.
	ErrColumnLength = errors.New("dataset columns have different lengths")
	// ErrZeroDeliveries is returned when a month reports no deliveries.
	ErrZeroDeliveries = errors.New("deliveries made is zero")
)

// Columns is the raw dataset: eight parallel sequences indexed by month.
type Columns struct {
	Month           []string
	FuelCost        []float64
	MaintenanceCost []float64
	LaborCost       []float64
	WarehouseCost   []float64
	DeliveriesMade  []int
	AvgDeliveryTime []float64
	OnTimeRate      []float64
}

// Default returns a fresh copy of the FreshBox April–September dataset.
func Default() Columns {
	return Columns{
		Month:           []string{"April", "May", "June", "July", "August", "September"},
		FuelCost:        []float64{88500, 92000, 91200, 95800, 97500, 93000},
		MaintenanceCost: []float64{24000, 22500, 26000, 28000, 30000, 27500},
		LaborCost:       []float64{132000, 134500, 137000, 135000, 138500, 136000},
		WarehouseCost:   []float64{76000, 78000, 80000, 82500, 85000, 83000},
		DeliveriesMade:  []int{12300, 12800, 13000, 13400, 13700, 13100},
		AvgDeliveryTime: []float64{2.5, 2.4, 2.6, 2.7, 2.8, 2.6},
		OnTimeRate:      []float64{0.94, 0.95, 0.93, 0.92, 0.91, 0.93},
	}
}

// Len returns the number of months, or an error if the columns disagree.
func (c Columns) Len() (int, error) {
	n := len(c.Month)
	lengths := []int{
		len(c.FuelCost),
		len(c.MaintenanceCost),
		len(c.LaborCost),
		len(c.WarehouseCost),
		len(c.DeliveriesMade),
		len(c.AvgDeliveryTime),
		len(c.OnTimeRate),
	}
	for _, l := range lengths {
		if l != n {
			return 0, fmt.Errorf("%w: month=%d, other=%d", ErrColumnLength, n, l)
		}
	}
	return n, nil
}

// BuildRecords converts the columns into one record per month, in month order.
func BuildRecords(c Columns) ([]models.MonthRecord, error) {
	n, err := c.Len()
	if err != nil {
		return nil, err
	}

	records := make([]models.MonthRecord, 0, n)
	for i := range n {
		rec, err := recordAt(c, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordAt(c Columns, i int) (models.MonthRecord, error) {
	deliveries := c.DeliveriesMade[i]
	if deliveries == 0 {
		return models.MonthRecord{}, fmt.Errorf("%s: %w", c.Month[i], ErrZeroDeliveries)
	}

	fuel := c.FuelCost[i]
	total := fuel + c.MaintenanceCost[i] + c.LaborCost[i] + c.WarehouseCost[i]
	onTime := c.OnTimeRate[i]

	return models.MonthRecord{
		Month:              c.Month[i],
		FuelCost:           fuel,
		MaintenanceCost:    c.MaintenanceCost[i],
		LaborCost:          c.LaborCost[i],
		WarehouseCost:      c.WarehouseCost[i],
		DeliveriesMade:     deliveries,
		AvgDeliveryTime:    c.AvgDeliveryTime[i],
		OnTimeRate:         onTime,
		TotalOperatingCost: total,
		CostPerDelivery:    total / float64(deliveries),
		FuelFlag:           fuel > FuelFlagThreshold,
		OnTimeFlag:         onTime < OnTimeFlagThreshold,
	}, nil
}
