package model

// Mode is a transportation mode. The green classification and the emission
// factor live in the table, not in code, so new modes aggregate correctly
// without touching the engine.
type Mode struct {
	ModeID          int     `gorm:"column:id_mode;primaryKey;autoIncrement" json:"mode_id"`
	Name            string  `gorm:"column:name;type:text;not null;unique" json:"name"`
	Green           bool    `gorm:"column:green;type:boolean;not null" json:"green"`
	EmissionPerMile float64 `gorm:"column:emission_per_mile;type:numeric;not null" json:"emission_per_mile"`
}

func (Mode) TableName() string {
	return "mode"
}

// canonical mode names, matching the seeded reference data
const (
	ModeWalk     = "Walk"
	ModeBike     = "Bike"
	ModeBus      = "Bus"
	ModeTrain    = "Train"
	ModeCarpool  = "Carpool"
	ModeSEV      = "Small Electric Vehicle"
	ModeCarAlone = "Drove Car Alone"
)
