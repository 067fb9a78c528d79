package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindFood       Kind = "food"
	KindExercise   Kind = "exercise"
	KindWater      Kind = "water"
	KindWeight     Kind = "weight"
	KindSupplement Kind = "supplement"
	KindSteps      Kind = "steps"
)

func (k Kind) Validate() error {
	switch k {
	case KindFood, KindExercise, KindWater, KindWeight, KindSupplement, KindSteps:
		return nil
	default:
		return fmt.Errorf("invalid event kind: %q", k)
	}
}

type FoodEntry struct {
	Name      string             `json:"name"`
	Calories  float64            `json:"calories" validate:"gte=0"`
	Protein   float64            `json:"protein" validate:"gte=0"`
	Carbs     float64            `json:"carbs" validate:"gte=0"`
	Fat       float64            `json:"fat" validate:"gte=0"`
	Nutrients map[string]float64 `json:"nutrients,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
}

type ExerciseEntry struct {
	Name            string  `json:"name"`
	DurationMinutes float64 `json:"duration_minutes" validate:"gte=0"`
	CaloriesBurned  float64 `json:"calories_burned" validate:"gte=0"`
}

type WaterEntry struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"oneof=ml oz l"`
}

type WeightEntry struct {
	Weight float64 `json:"weight" validate:"gt=0"`
	Unit   string  `json:"unit" validate:"oneof=lbs kg"`
}

type SupplementEntry struct {
	Name      string             `json:"name"`
	Nutrients map[string]float64 `json:"nutrients" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
}

type StepsEntry struct {
	Count float64 `json:"count" validate:"gte=0"`
}

// Event is a tagged union: Kind selects which payload pointer is set.
type Event struct {
	ID         string           `json:"id"`
	Kind       Kind             `json:"kind"`
	Timestamp  time.Time        `json:"timestamp"`
	Food       *FoodEntry       `json:"food,omitempty"`
	Exercise   *ExerciseEntry   `json:"exercise,omitempty"`
	Water      *WaterEntry      `json:"water,omitempty"`
	Weight     *WeightEntry     `json:"weight,omitempty"`
	Supplement *SupplementEntry `json:"supplement,omitempty"`
	Steps      *StepsEntry      `json:"steps,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects malformed events before they reach goals or aggregation.
// Negative and NaN amounts fail the gte/gt rules; infinities are caught by
// checkFinite since +Inf satisfies gte=0.
func (e Event) Validate() error {
	if e.ID == "" {
		return errors.New("event id is required")
	}
	if e.Timestamp.IsZero() {
		return errors.New("event timestamp is required")
	}
	if err := e.Kind.Validate(); err != nil {
		return err
	}
	if n := e.payloadCount(); n != 1 {
		return fmt.Errorf("event must carry exactly one payload, got %d", n)
	}
	payload, ok := e.Payload()
	if !ok {
		return fmt.Errorf("%s event is missing its %s payload", e.Kind, e.Kind)
	}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid %s entry: %w", e.Kind, err)
	}
	return e.checkFinite()
}

func (e Event) checkFinite() error {
	var amounts, nutrients map[string]float64
	switch {
	case e.Food != nil:
		amounts = map[string]float64{"calories": e.Food.Calories, "protein": e.Food.Protein, "carbs": e.Food.Carbs, "fat": e.Food.Fat}
		nutrients = e.Food.Nutrients
	case e.Exercise != nil:
		amounts = map[string]float64{"duration_minutes": e.Exercise.DurationMinutes, "calories_burned": e.Exercise.CaloriesBurned}
	case e.Water != nil:
		amounts = map[string]float64{"amount": e.Water.Amount}
	case e.Weight != nil:
		amounts = map[string]float64{"weight": e.Weight.Weight}
	case e.Supplement != nil:
		nutrients = e.Supplement.Nutrients
	case e.Steps != nil:
		amounts = map[string]float64{"count": e.Steps.Count}
	}
	for field, v := range amounts {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("invalid %s entry: %s must be finite", e.Kind, field)
		}
	}
	for key, v := range nutrients {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("invalid %s entry: nutrient %s must be finite", e.Kind, key)
		}
	}
	return nil
}

// Payload returns the entry selected by Kind.
func (e Event) Payload() (any, bool) {
	switch e.Kind {
	case KindFood:
		return e.Food, e.Food != nil
	case KindExercise:
		return e.Exercise, e.Exercise != nil
	case KindWater:
		return e.Water, e.Water != nil
	case KindWeight:
		return e.Weight, e.Weight != nil
	case KindSupplement:
		return e.Supplement, e.Supplement != nil
	case KindSteps:
		return e.Steps, e.Steps != nil
	default:
		return nil, false
	}
}

func (e Event) payloadCount() int {
	n := 0
	for _, set := range []bool{e.Food != nil, e.Exercise != nil, e.Water != nil, e.Weight != nil, e.Supplement != nil, e.Steps != nil} {
		if set {
			n++
		}
	}
	return n
}
