package internals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencommute-server/internals"
	"greencommute-server/model"
)

func scenarioUser() model.User {
	trips := tripsOf(model.ModeBike, model.DestinationWork, repeat(2.0, 5)...)
	trips = append(trips, tripsOf(model.ModeWalk, model.DestinationWork, repeat(0.5, 5)...)...)
	trips = append(trips, tripsOf(model.ModeBus, model.DestinationWork, repeat(8.0, 5)...)...)
	trips = append(trips, tripsOf(model.ModeCarAlone, model.DestinationWork, 3.0, 3.0)...)

	return model.User{
		UserID:    1,
		Community: model.Community{Name: "Sunnyvale"},
		Baseline:  validBaseline(),
		Trips:     trips,
	}
}

func newCalculator() *internals.StatsCalculator {
	return internals.NewStatsCalculator(internals.NewTripAggregator(testModes()))
}

func TestCalculateStatsForUser(t *testing.T) {
	t.Parallel()

	stats, err := newCalculator().CalculateStatsForUser(scenarioUser())
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 2.5, stats.Mileage[model.ModeWalk])
	assert.Equal(t, 40.0, stats.Mileage[model.ModeBus])
	assert.Equal(t, 10.0, stats.Mileage[model.ModeBike])
	assert.Equal(t, 0.0, stats.Mileage[model.ModeTrain])
	assert.Equal(t, "Sunnyvale", stats.CommunityName)
	assert.Equal(t, 10.0/35.0, stats.BaselinePctGreen)
	assert.Equal(t, 52.5, stats.TotalGreenMiles)
	assert.Equal(t, 58.5, stats.TotalMiles)
	assert.Equal(t, 15, stats.TotalGreenTrips)
	assert.Equal(t, 52.5/58.5, stats.ActualPctGreen)
	assert.Equal(t, 52.5/58.5-10.0/35.0, stats.PctImprovement)
	assert.Equal(t, stats.ActualPctGreen-stats.BaselinePctGreen, stats.PctImprovement)
}

func TestCalculateStatsForUser_FewerThanFiveTrips(t *testing.T) {
	t.Parallel()

	user := model.User{
		UserID:    2,
		Community: model.Community{Name: "Sunnyvale"},
		Baseline:  validBaseline(),
		Trips:     tripsOf(model.ModeBike, model.DestinationWork, 1.0, 2.0),
	}

	stats, err := newCalculator().CalculateStatsForUser(user)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestCalculateStatsForUser_MissingBaseline(t *testing.T) {
	t.Parallel()

	user := scenarioUser()
	user.Baseline = nil

	_, err := newCalculator().CalculateStatsForUser(user)
	require.Error(t, err)
	assert.ErrorIs(t, err, internals.ErrMissingBaseline)
}

func TestCalculateStatsForUser_InvalidBaseline(t *testing.T) {
	t.Parallel()

	user := scenarioUser()
	user.Baseline = &model.Baseline{}

	_, err := newCalculator().CalculateStatsForUser(user)
	require.Error(t, err)
	assert.ErrorIs(t, err, internals.ErrInvalidBaseline)
}

func TestCalculateStatsForUser_ZeroTripMileage(t *testing.T) {
	t.Parallel()

	user := model.User{
		UserID:    3,
		Community: model.Community{Name: "Sunnyvale"},
		Baseline:  validBaseline(),
		Trips:     tripsOf(model.ModeWalk, model.DestinationWork, repeat(0, 5)...),
	}

	_, err := newCalculator().CalculateStatsForUser(user)
	require.Error(t, err)
	assert.ErrorIs(t, err, internals.ErrInvalidTripTotal)
}

func TestCalculateStatsForUser_Deterministic(t *testing.T) {
	t.Parallel()

	calculator := newCalculator()
	first, err := calculator.CalculateStatsForUser(scenarioUser())
	require.NoError(t, err)
	second, err := calculator.CalculateStatsForUser(scenarioUser())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
