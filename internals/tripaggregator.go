package internals

import (
	"fmt"
	"greencommute-server/model"
)

// TripTotals is the fold of one user's trips. Mileage has a key for every
// known mode, plus any mode that appears in the trips but not in the
// configuration.
type TripTotals struct {
	Mileage         map[string]float64
	TotalMiles      float64
	TotalGreenMiles float64
	TotalGreenTrips int
}

// TripAggregator folds trips into per-mode totals. The green classification
// comes from the injected mode list, so adding a mode to the reference data
// is enough for it to aggregate correctly.
type TripAggregator struct {
	modeNames []string
	nonGreen  map[string]bool
}

func NewTripAggregator(modes []model.Mode) *TripAggregator {
	aggregator := &TripAggregator{
		nonGreen: make(map[string]bool),
	}
	for _, mode := range modes {
		aggregator.modeNames = append(aggregator.modeNames, mode.Name)
		if !mode.Green {
			aggregator.nonGreen[mode.Name] = true
		}
	}
	return aggregator
}

// IsGreen reports whether a mode counts as low-emission. Modes absent from
// the configuration default to green.
func (aggregator *TripAggregator) IsGreen(modeName string) bool {
	return !aggregator.nonGreen[modeName]
}

func (aggregator *TripAggregator) Aggregate(trips []model.Trip) (TripTotals, error) {
	totals := TripTotals{Mileage: make(map[string]float64)}

	// every known mode gets a key, even with no trips
	for _, name := range aggregator.modeNames {
		totals.Mileage[name] = 0
	}

	for _, trip := range trips {
		if trip.Distance < 0 {
			return TripTotals{}, fmt.Errorf("%w: trip %d has distance %v", ErrNegativeDistance, trip.TripID, trip.Distance)
		}

		totals.Mileage[trip.Mode.Name] += trip.Distance
		totals.TotalMiles += trip.Distance
		if aggregator.IsGreen(trip.Mode.Name) {
			totals.TotalGreenMiles += trip.Distance
			totals.TotalGreenTrips++
		}
	}

	return totals, nil
}
