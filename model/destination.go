package model

// Destination is the purpose of a trip.
type Destination struct {
	DestinationID int    `gorm:"column:id_destination;primaryKey;autoIncrement" json:"destination_id"`
	Name          string `gorm:"column:name;type:text;not null;unique" json:"name"`
}

func (Destination) TableName() string {
	return "destination"
}

const (
	DestinationWork    = "Work"
	DestinationSchool  = "School"
	DestinationErrands = "Errands & Other"
)
