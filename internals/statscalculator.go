package internals

import (
	"fmt"
	"greencommute-server/model"
)

// MinTripsForStats is the eligibility rule: a user needs at least this many
// logged trips before stats are computed.
const MinTripsForStats = 5

// StatsCalculator combines the trip aggregator and the baseline comparator
// into one statistics record per qualifying user.
type StatsCalculator struct {
	aggregator *TripAggregator
}

func NewStatsCalculator(aggregator *TripAggregator) *StatsCalculator {
	return &StatsCalculator{aggregator: aggregator}
}

// CalculateStatsForUser returns the statistics record for a user, or
// (nil, nil) when the user has logged fewer than MinTripsForStats trips.
// It is a pure function of its input.
func (calculator *StatsCalculator) CalculateStatsForUser(user model.User) (*model.UserStats, error) {
	if len(user.Trips) < MinTripsForStats {
		return nil, nil
	}

	if user.Baseline == nil {
		return nil, fmt.Errorf("%w: user %d", ErrMissingBaseline, user.UserID)
	}

	totals, err := calculator.aggregator.Aggregate(user.Trips)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", user.UserID, err)
	}

	baselinePctGreen, err := BaselinePctGreen(*user.Baseline)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", user.UserID, err)
	}

	if totals.TotalMiles == 0 {
		return nil, fmt.Errorf("%w: user %d", ErrInvalidTripTotal, user.UserID)
	}
	actualPctGreen := totals.TotalGreenMiles / totals.TotalMiles

	return &model.UserStats{
		User:             user,
		CommunityName:    user.Community.Name,
		Mileage:          totals.Mileage,
		TotalMiles:       totals.TotalMiles,
		TotalGreenMiles:  totals.TotalGreenMiles,
		TotalGreenTrips:  totals.TotalGreenTrips,
		BaselinePctGreen: baselinePctGreen,
		ActualPctGreen:   actualPctGreen,
		PctImprovement:   actualPctGreen - baselinePctGreen,
	}, nil
}
