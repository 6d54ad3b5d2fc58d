package model

import "time"

// Trip is a single logged commute. Immutable once logged.
type Trip struct {
	TripID        int         `gorm:"column:id_trip;primaryKey;autoIncrement" json:"trip_id"`
	UserID        int         `gorm:"column:id_user;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user_id"`
	ModeID        int         `gorm:"column:id_mode;type:integer;not null" json:"mode_id"`
	Mode          Mode        `gorm:"foreignKey:ModeID;references:ModeID" json:"mode"`
	DestinationID int         `gorm:"column:id_destination;type:integer;not null" json:"destination_id"`
	Destination   Destination `gorm:"foreignKey:DestinationID;references:DestinationID" json:"destination"`
	Distance      float64     `gorm:"column:distance;type:numeric;not null" json:"distance"`
	Date          time.Time   `gorm:"column:date;type:date;not null" json:"date"`
}

func (Trip) TableName() string {
	return "trip"
}
