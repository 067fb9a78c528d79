package dto

import (
	"time"

	goalsdto "healthtrack/internal/modules/goals/dto"
	"healthtrack/internal/modules/journal/domain"
)

// LogInput is the ingestion shape, shared by the CLI and the inbox feed.
// Exactly one payload must match Kind.
type LogInput struct {
	ID         string           `json:"id,omitempty"`
	Kind       string           `json:"kind"`
	Timestamp  time.Time        `json:"timestamp,omitzero"`
	Food       *FoodInput       `json:"food,omitempty"`
	Exercise   *ExerciseInput   `json:"exercise,omitempty"`
	Water      *WaterInput      `json:"water,omitempty"`
	Weight     *WeightInput     `json:"weight,omitempty"`
	Supplement *SupplementInput `json:"supplement,omitempty"`
	Steps      *StepsInput      `json:"steps,omitempty"`
}

type FoodInput struct {
	Name      string             `json:"name"`
	Calories  float64            `json:"calories"`
	Protein   float64            `json:"protein"`
	Carbs     float64            `json:"carbs"`
	Fat       float64            `json:"fat"`
	Nutrients map[string]float64 `json:"nutrients,omitempty"`
}

type ExerciseInput struct {
	Name            string  `json:"name"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
}

type WaterInput struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type WeightInput struct {
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

type SupplementInput struct {
	Name      string             `json:"name"`
	Nutrients map[string]float64 `json:"nutrients"`
}

type StepsInput struct {
	Count float64 `json:"count"`
}

// LogOutput reports the stored event and its effect on goals. RoutingError is
// set when the event was stored but goal routing failed.
type LogOutput struct {
	EventID      string
	Kind         string
	Timestamp    time.Time
	UpdatedGoals []goalsdto.GoalOutput
	Achievements []goalsdto.AchievementOutput
	RoutingError string
}

type EventsQuery struct {
	Day string // YYYY-MM-DD, empty means today
}

type EventsOutput struct {
	From   time.Time
	To     time.Time
	Events []domain.Event
}

type WeightOutput struct {
	Found  bool
	Weight float64
	Unit   string
	At     time.Time
}
