package dto

type BreakdownQuery struct {
	Day string // YYYY-MM-DD, empty means today
}

type NutrientLine struct {
	ID             string
	Name           string
	Current        float64
	Goal           float64
	Percentage     float64
	Unit           string
	UpperLimit     float64
	Status         string
	Recommendation string
}

// BreakdownOutput groups a day's intake. Without a profile only Macros and
// Untracked are filled; Untracked carries raw totals with no reference value.
type BreakdownOutput struct {
	Day            string
	ProfileFound   bool
	EventCount     int
	Macros         []NutrientLine
	Micronutrients []NutrientLine
	Untracked      []NutrientLine
}

type ReferenceQuery struct {
	NutrientID string
}

type ReferenceOutput struct {
	ID         string
	Name       string
	Amount     float64
	Unit       string
	UpperLimit float64
	AgeGroup   string
	Sex        string
	LifeStage  string
}
