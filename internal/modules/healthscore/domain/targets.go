package domain

// Targets are the daily goals the score is measured against. Water is in
// WaterUnit; TargetWeight, when set, overrides the profile's target.
type Targets struct {
	Steps        float64
	Water        float64
	WaterUnit    string
	Calories     float64
	TargetWeight float64
}
