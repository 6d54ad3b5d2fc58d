package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"greencommute-server/model"
)

// SeedReferenceData inserts the mode and destination tables, skipping names
// that already exist so redeploys never duplicate or overwrite them.
func SeedReferenceData(db *gorm.DB) error {
	// emission factors in kg CO2 per mile per traveler
	modes := []model.Mode{
		{Name: model.ModeWalk, Green: true, EmissionPerMile: 0},
		{Name: model.ModeBike, Green: true, EmissionPerMile: 0},
		{Name: model.ModeBus, Green: true, EmissionPerMile: 0.048},
		{Name: model.ModeTrain, Green: true, EmissionPerMile: 0.056},
		{Name: model.ModeCarpool, Green: true, EmissionPerMile: 0.16},
		{Name: model.ModeSEV, Green: true, EmissionPerMile: 0.05},
		{Name: model.ModeCarAlone, Green: false, EmissionPerMile: 0.32},
	}

	destinations := []model.Destination{
		{Name: model.DestinationWork},
		{Name: model.DestinationSchool},
		{Name: model.DestinationErrands},
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&modes)
	if result.Error != nil {
		return result.Error
	}

	result = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&destinations)
	return result.Error
}
