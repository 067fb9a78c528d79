package domain

import "math"

// ExerciseMinutesTarget is the daily activity that earns a full exercise score.
const ExerciseMinutesTarget = 30

// BaselineScore rewards a user who has set goals but logged nothing yet.
const BaselineScore = 25

type Component string

const (
	ComponentSteps    Component = "steps"
	ComponentExercise Component = "exercise"
	ComponentWater    Component = "water"
	ComponentCalories Component = "calories"
	ComponentWeight   Component = "weight"
)

// WeightContext is expressed in a single unit. Zero values mean unknown.
type WeightContext struct {
	Starting float64
	Current  float64
	Target   float64
}

type Inputs struct {
	Steps           float64
	StepGoal        float64
	ExerciseMinutes float64
	Water           float64
	WaterGoal       float64
	Calories        float64
	CalorieGoal     float64
	Weight          WeightContext
}

type ComponentScore struct {
	Component Component
	Value     float64
}

type Score struct {
	Value      float64
	Components []ComponentScore
	Baseline   bool
}

// Compute averages the components that have meaningful input. Components
// without a goal or without data are left out of the denominator.
func Compute(in Inputs) Score {
	var parts []ComponentScore
	add := func(c Component, v float64) {
		parts = append(parts, ComponentScore{Component: c, Value: clamp(v)})
	}

	if in.StepGoal > 0 {
		add(ComponentSteps, in.Steps/in.StepGoal*100)
	}
	if in.ExerciseMinutes > 0 {
		add(ComponentExercise, in.ExerciseMinutes/ExerciseMinutesTarget*100)
	}
	if in.WaterGoal > 0 {
		add(ComponentWater, in.Water/in.WaterGoal*100)
	}
	if in.CalorieGoal > 0 && in.Calories > 0 {
		add(ComponentCalories, calorieScore(in.Calories, in.CalorieGoal))
	}
	if w := in.Weight; w.tracked() {
		add(ComponentWeight, math.Abs(w.Starting-w.Current)/math.Abs(w.Starting-w.Target)*100)
	}

	if len(parts) == 0 {
		if in.hasGoals() {
			return Score{Value: BaselineScore, Baseline: true}
		}
		return Score{}
	}
	var sum float64
	for _, p := range parts {
		sum += p.Value
	}
	return Score{Value: clamp(sum / float64(len(parts))), Components: parts}
}

func calorieScore(calories, goal float64) float64 {
	if calories <= goal {
		ratio := calories / goal
		if ratio >= 0.8 {
			return 100
		}
		return ratio * 125
	}
	over := (calories - goal) / goal
	return math.Max(0, 100-over*200)
}

func (w WeightContext) tracked() bool {
	return w.Starting > 0 && w.Target > 0 && w.Target != w.Starting && w.Current > 0 && w.Current != w.Starting
}

func (in Inputs) hasGoals() bool {
	return in.StepGoal > 0 || in.WaterGoal > 0 || in.CalorieGoal > 0 || in.Weight.Target > 0
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Trend is the one-line verdict shown next to the score.
func Trend(score float64) string {
	if score > 80 {
		return "Excellent Progress"
	}
	return "Room for Improvement"
}
