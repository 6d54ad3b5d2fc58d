package model

// Baseline is a user's self-reported pre-challenge commute mix, split by
// destination and by green vs drove-alone mileage. All components are weekly
// miles and must be non-negative.
type Baseline struct {
	BaselineID   int     `gorm:"column:id_baseline;primaryKey;autoIncrement" json:"baseline_id"`
	UserID       int     `gorm:"column:id_user;type:integer;not null;unique;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user_id"`
	WorkGreen    float64 `gorm:"column:work_green;type:numeric;not null" json:"work_green"`
	WorkAlone    float64 `gorm:"column:work_alone;type:numeric;not null" json:"work_alone"`
	SchoolGreen  float64 `gorm:"column:school_green;type:numeric;not null" json:"school_green"`
	SchoolAlone  float64 `gorm:"column:school_alone;type:numeric;not null" json:"school_alone"`
	ErrandsGreen float64 `gorm:"column:errands_green;type:numeric;not null" json:"errands_green"`
	ErrandsAlone float64 `gorm:"column:errands_alone;type:numeric;not null" json:"errands_alone"`
}

func (Baseline) TableName() string {
	return "baseline"
}

func (b Baseline) CurrentTotalMiles() float64 {
	return b.WorkGreen + b.WorkAlone + b.SchoolGreen + b.SchoolAlone + b.ErrandsGreen + b.ErrandsAlone
}

func (b Baseline) CurrentGreenMiles() float64 {
	return b.WorkGreen + b.SchoolGreen + b.ErrandsGreen
}
