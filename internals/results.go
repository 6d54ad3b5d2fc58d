package internals

import (
	"fmt"
	"greencommute-server/model"
)

// UserSource is the read-only data-access collaborator feeding the engine.
// Implementations must return users with trips (in logged order, with mode and
// destination), baseline, community and group already attached.
type UserSource interface {
	AllUsers() ([]model.User, error)
}

// Filter narrows a ranked view. Empty fields are ignored. Names that match
// nothing in the dataset yield an empty view, not an error.
type Filter struct {
	Mode      string
	Community string
}

// Results computes the statistics records for every eligible user and exposes
// ranked and filtered views over them. The record list is computed lazily and
// memoized for the lifetime of the instance, so an instance must not outlive
// the data it was built from: construct one per request or report, or call
// Refresh after the underlying data changes. Instances are not safe for
// concurrent use.
type Results struct {
	source     UserSource
	aggregator *TripAggregator
	calculator *StatsCalculator
	emissions  map[string]float64
	cached     []model.UserStats
}

func NewResults(source UserSource, modes []model.Mode) *Results {
	aggregator := NewTripAggregator(modes)
	emissions := make(map[string]float64)
	for _, mode := range modes {
		emissions[mode.Name] = mode.EmissionPerMile
	}
	return &Results{
		source:     source,
		aggregator: aggregator,
		calculator: NewStatsCalculator(aggregator),
		emissions:  emissions,
	}
}

// Refresh drops the memoized records so the next view recomputes them.
func (results *Results) Refresh() {
	results.cached = nil
}

// UserResults returns one statistics record per eligible user, in the order
// the source yields users. Users below the trip minimum are skipped; any
// computation failure aborts the whole result set.
func (results *Results) UserResults() ([]model.UserStats, error) {
	if results.cached != nil {
		return results.cached, nil
	}

	users, err := results.source.AllUsers()
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	records := []model.UserStats{}
	for _, user := range users {
		stats, err := results.calculator.CalculateStatsForUser(user)
		if err != nil {
			return nil, err
		}
		if stats == nil {
			continue
		}
		records = append(records, *stats)
	}

	// a mode logged by one user gets a mileage key in every record
	modeNames := make(map[string]bool)
	for _, record := range records {
		for name := range record.Mileage {
			modeNames[name] = true
		}
	}
	for _, record := range records {
		for name := range modeNames {
			if _, ok := record.Mileage[name]; !ok {
				record.Mileage[name] = 0
			}
		}
	}

	results.cached = records
	return records, nil
}

// UsersByMileage returns eligible users in descending order of green miles,
// optionally narrowed by community and by mode. The mode filter keeps users
// whose first logged trip used that mode, matching the behavior the
// leaderboard has always had.
func (results *Results) UsersByMileage(filter Filter) ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	filtered := []model.UserStats{}
	for _, record := range records {
		if filter.Community != "" && record.CommunityName != filter.Community {
			continue
		}
		if filter.Mode != "" && firstTripMode(record.User) != filter.Mode {
			continue
		}
		filtered = append(filtered, record)
	}

	sortDescending(filtered, func(stats model.UserStats) float64 {
		return stats.TotalGreenMiles
	})
	return filtered, nil
}

// UsersByGreenTrips returns eligible users in descending order of green trip
// count, ties in input order.
func (results *Results) UsersByGreenTrips() ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	ranked := append([]model.UserStats{}, records...)
	sortDescending(ranked, func(stats model.UserStats) float64 {
		return float64(stats.TotalGreenTrips)
	})
	return ranked, nil
}

// FilterByCommunity returns the records of users in the named community.
func (results *Results) FilterByCommunity(communityName string) ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	filtered := []model.UserStats{}
	for _, record := range records {
		if record.CommunityName == communityName {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// GreenTripsFor is UsersByGreenTrips scoped to one community.
func (results *Results) GreenTripsFor(communityName string) ([]model.UserStats, error) {
	records, err := results.FilterByCommunity(communityName)
	if err != nil {
		return nil, err
	}

	sortDescending(records, func(stats model.UserStats) float64 {
		return float64(stats.TotalGreenTrips)
	})
	return records, nil
}

// GreenShoppingTrips returns users in descending order of green trips logged
// for errands.
func (results *Results) GreenShoppingTrips() ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	ranked := append([]model.UserStats{}, records...)
	sortDescending(ranked, func(stats model.UserStats) float64 {
		return float64(results.greenTripsTo(stats.User, model.DestinationErrands))
	})
	return ranked, nil
}

// GreenShoppingTripsFor is GreenShoppingTrips scoped to one community.
func (results *Results) GreenShoppingTripsFor(communityName string) ([]model.UserStats, error) {
	records, err := results.FilterByCommunity(communityName)
	if err != nil {
		return nil, err
	}

	sortDescending(records, func(stats model.UserStats) float64 {
		return float64(results.greenTripsTo(stats.User, model.DestinationErrands))
	})
	return records, nil
}

// GreenestTravel returns users in ascending order of CO2 emitted per mile
// traveled, computed from the per-mode emission factors.
func (results *Results) GreenestTravel() ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	ranked := append([]model.UserStats{}, records...)
	sortAscending(ranked, results.emissionsPerMile)
	return ranked, nil
}

// GreenestTravelFor is GreenestTravel scoped to one community.
func (results *Results) GreenestTravelFor(communityName string) ([]model.UserStats, error) {
	records, err := results.FilterByCommunity(communityName)
	if err != nil {
		return nil, err
	}

	sortAscending(records, results.emissionsPerMile)
	return records, nil
}

// MostImprovedOverBaseline returns users in descending order of gain in green
// mileage percentage over their baseline.
func (results *Results) MostImprovedOverBaseline() ([]model.UserStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	ranked := append([]model.UserStats{}, records...)
	sortDescending(ranked, func(stats model.UserStats) float64 {
		return stats.PctImprovement
	})
	return ranked, nil
}

// MostImprovedOverBaselineFor is MostImprovedOverBaseline scoped to one
// community.
func (results *Results) MostImprovedOverBaselineFor(communityName string) ([]model.UserStats, error) {
	records, err := results.FilterByCommunity(communityName)
	if err != nil {
		return nil, err
	}

	sortDescending(records, func(stats model.UserStats) float64 {
		return stats.PctImprovement
	})
	return records, nil
}

func (results *Results) emissionsPerMile(stats model.UserStats) float64 {
	emitted := 0.0
	for modeName, miles := range stats.Mileage {
		emitted += results.emissions[modeName] * miles
	}
	// eligible users always have positive mileage, but a 0/0 here must rank
	// last instead of first
	return emitted / stats.TotalMiles
}

func (results *Results) greenTripsTo(user model.User, destinationName string) int {
	count := 0
	for _, trip := range user.Trips {
		if trip.Destination.Name == destinationName && results.aggregator.IsGreen(trip.Mode.Name) {
			count++
		}
	}
	return count
}

func firstTripMode(user model.User) string {
	if len(user.Trips) == 0 {
		return ""
	}
	return user.Trips[0].Mode.Name
}
