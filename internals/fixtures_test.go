package internals_test

import (
	"time"

	"greencommute-server/model"
)

// reference data matching the seeded mode and destination tables
func testModes() []model.Mode {
	return []model.Mode{
		{ModeID: 1, Name: model.ModeWalk, Green: true, EmissionPerMile: 0},
		{ModeID: 2, Name: model.ModeBike, Green: true, EmissionPerMile: 0},
		{ModeID: 3, Name: model.ModeBus, Green: true, EmissionPerMile: 0.048},
		{ModeID: 4, Name: model.ModeTrain, Green: true, EmissionPerMile: 0.056},
		{ModeID: 5, Name: model.ModeCarpool, Green: true, EmissionPerMile: 0.16},
		{ModeID: 6, Name: model.ModeSEV, Green: true, EmissionPerMile: 0.05},
		{ModeID: 7, Name: model.ModeCarAlone, Green: false, EmissionPerMile: 0.32},
	}
}

func modeByName(name string) model.Mode {
	for _, mode := range testModes() {
		if mode.Name == name {
			return mode
		}
	}
	// unknown modes happen when a new mode reaches trips before the config
	return model.Mode{Name: name, Green: true}
}

// tripsOf builds one trip per distance, on consecutive days.
func tripsOf(modeName, destinationName string, distances ...float64) []model.Trip {
	start := time.Date(2011, 4, 22, 0, 0, 0, 0, time.UTC)
	trips := make([]model.Trip, 0, len(distances))
	for i, distance := range distances {
		trips = append(trips, model.Trip{
			Mode:        modeByName(modeName),
			Destination: model.Destination{Name: destinationName},
			Distance:    distance,
			Date:        start.AddDate(0, 0, i),
		})
	}
	return trips
}

func validBaseline() *model.Baseline {
	return &model.Baseline{
		WorkGreen: 0, WorkAlone: 10,
		SchoolGreen: 10, SchoolAlone: 0,
		ErrandsGreen: 0, ErrandsAlone: 15,
	}
}

func userWithTrips(id int, communityName, modeName, destinationName string, distances ...float64) model.User {
	return model.User{
		UserID:    id,
		Community: model.Community{Name: communityName},
		Baseline:  validBaseline(),
		Trips:     tripsOf(modeName, destinationName, distances...),
	}
}

func repeat(distance float64, times int) []float64 {
	distances := make([]float64, times)
	for i := range distances {
		distances[i] = distance
	}
	return distances
}

// staticUsers is an in-memory UserSource.
type staticUsers []model.User

func (users staticUsers) AllUsers() ([]model.User, error) {
	return users, nil
}
