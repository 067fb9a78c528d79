package domain

import "fmt"

type Category string

const (
	CategoryNutrition   Category = "nutrition"
	CategoryExercise    Category = "exercise"
	CategoryWeightLoss  Category = "weight_loss"
	CategoryWeightGain  Category = "weight_gain"
	CategoryHydration   Category = "hydration"
	CategorySleep       Category = "sleep"
	CategoryMindfulness Category = "mindfulness"
	CategoryCustom      Category = "custom"
)

func Categories() []Category {
	return []Category{
		CategoryNutrition, CategoryExercise, CategoryWeightLoss, CategoryWeightGain,
		CategoryHydration, CategorySleep, CategoryMindfulness, CategoryCustom,
	}
}

func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("invalid category: %q", c)
}

type TargetType string

const (
	TargetReach     TargetType = "reach_target"
	TargetStayUnder TargetType = "stay_under"
	TargetRange     TargetType = "reach_range"
)

func (t TargetType) Validate() error {
	switch t {
	case TargetReach, TargetStayUnder, TargetRange:
		return nil
	default:
		return fmt.Errorf("invalid target type: %q", t)
	}
}

// HonorsCompletion reports whether reaching the target completes the goal.
// A stay_under goal that reaches its ceiling has not succeeded.
func (t TargetType) HonorsCompletion() bool {
	return t == TargetReach || t == TargetRange
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyTotal  Frequency = "total"
)

func (f Frequency) Validate() error {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyTotal:
		return nil
	default:
		return fmt.Errorf("invalid frequency: %q", f)
	}
}

// MetricKind names the logged quantity a goal tracks. Manual goals only move
// through explicit progress updates.
type MetricKind string

const (
	MetricManual           MetricKind = "manual"
	MetricCalories         MetricKind = "calories"
	MetricProtein          MetricKind = "protein"
	MetricCarbs            MetricKind = "carbs"
	MetricFat              MetricKind = "fat"
	MetricSugar            MetricKind = "sugar"
	MetricExerciseCalories MetricKind = "exercise_calories"
	MetricExerciseMinutes  MetricKind = "exercise_minutes"
	MetricWorkoutCount     MetricKind = "workout_count"
	MetricHydrationVolume  MetricKind = "hydration_volume"
	MetricWeight           MetricKind = "weight"
)

var metricCategories = map[MetricKind][]Category{
	MetricCalories:         {CategoryNutrition},
	MetricProtein:          {CategoryNutrition},
	MetricCarbs:            {CategoryNutrition},
	MetricFat:              {CategoryNutrition},
	MetricSugar:            {CategoryNutrition},
	MetricExerciseCalories: {CategoryExercise},
	MetricExerciseMinutes:  {CategoryExercise},
	MetricWorkoutCount:     {CategoryExercise},
	MetricHydrationVolume:  {CategoryHydration},
	MetricWeight:           {CategoryWeightLoss, CategoryWeightGain},
}

func (m MetricKind) Validate() error {
	if m == MetricManual {
		return nil
	}
	if _, ok := metricCategories[m]; !ok {
		return fmt.Errorf("invalid metric: %q", m)
	}
	return nil
}

// Fits reports whether a goal of category c may track metric m.
func (m MetricKind) Fits(c Category) bool {
	if m == MetricManual {
		return true
	}
	for _, allowed := range metricCategories[m] {
		if allowed == c {
			return true
		}
	}
	return false
}
