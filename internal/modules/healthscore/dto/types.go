package dto

type ScoreQuery struct {
	Day string // YYYY-MM-DD, empty means today
}

type ComponentOutput struct {
	Name  string
	Value float64
}

type ScoreOutput struct {
	Day             string
	Score           float64
	Trend           string
	Baseline        bool
	Components      []ComponentOutput
	Steps           float64
	ExerciseMinutes float64
	Water           float64
	WaterUnit       string
	Calories        float64
	CurrentWeight   float64
	WeightUnit      string
}
