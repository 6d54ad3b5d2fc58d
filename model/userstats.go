package model

// UserStats is the derived statistics record for one eligible user. It is
// computed on demand and never persisted. Mileage holds one entry per mode
// name known to the engine, 0 for modes the user never traveled by.
type UserStats struct {
	User             User               `json:"user"`
	CommunityName    string             `json:"community_name"`
	Mileage          map[string]float64 `json:"mileage"`
	TotalMiles       float64            `json:"total_miles"`
	TotalGreenMiles  float64            `json:"total_green_miles"`
	TotalGreenTrips  int                `json:"total_green_trips"`
	BaselinePctGreen float64            `json:"baseline_pct_green"`
	ActualPctGreen   float64            `json:"actual_pct_green"`
	PctImprovement   float64            `json:"pct_improvement"`
}

// GroupStats is one entry of a group-level ranking.
type GroupStats struct {
	GroupName        string  `json:"group_name"`
	CommunityName    string  `json:"community_name"`
	Members          int     `json:"members"`
	EmissionsPerMile float64 `json:"emissions_per_mile"`
}
