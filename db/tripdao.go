package db

import (
	"gorm.io/gorm"
	"greencommute-server/model"
)

type TripDAO struct {
	db *gorm.DB
}

func NewTripDAO(db *gorm.DB) *TripDAO {
	return &TripDAO{db: db}
}

func (tripDAO *TripDAO) CreateTrip(trip *model.Trip) error {
	result := tripDAO.db.Create(trip)
	if result.Error != nil {
		return result.Error
	}

	// reload with mode and destination attached
	result = tripDAO.db.
		Preload("Mode").
		Preload("Destination").
		First(trip, trip.TripID)
	return result.Error
}

func (tripDAO *TripDAO) GetTripsByUserId(userID int) ([]model.Trip, error) {
	var trips []model.Trip
	result := tripDAO.db.
		Preload("Mode").
		Preload("Destination").
		Where("id_user = ?", userID).
		Order("id_trip ASC").
		Find(&trips)
	return trips, result.Error
}
