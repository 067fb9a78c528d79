package dto

type SaveProfileInput struct {
	Name                string
	BirthDate           string // YYYY-MM-DD
	Sex                 string
	ActivityLevel       string
	StartingWeight      float64
	TargetWeight        float64
	WeightUnit          string
	DietaryRestrictions []string
	HealthConditions    []string
	Pregnant            bool
	Trimester           int
	Breastfeeding       bool
}

// ProfileOutput carries Found=false before onboarding; every other field is then zero.
type ProfileOutput struct {
	Found               bool
	ID                  string
	Name                string
	BirthDate           string
	Age                 int
	AgeGroup            string
	Sex                 string
	LifeStage           string
	Trimester           int
	ActivityLevel       string
	StartingWeight      float64
	TargetWeight        float64
	WeightUnit          string
	DietaryRestrictions []string
	HealthConditions    []string
}
