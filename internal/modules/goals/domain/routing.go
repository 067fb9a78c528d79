package domain

import (
	journal "healthtrack/internal/modules/journal/domain"
)

// ApplyEvent moves the goal's current value for a logged event that matches
// the goal's category and metric. It reports whether the goal changed.
// Period and state checks are the caller's job.
func ApplyEvent(g *Goal, e journal.Event) bool {
	switch e.Kind {
	case journal.KindFood:
		if g.Category != CategoryNutrition || e.Food == nil {
			return false
		}
		amount, ok := foodAmount(g.Metric, e.Food)
		if !ok {
			return false
		}
		g.CurrentValue += amount
		return true
	case journal.KindExercise:
		if g.Category != CategoryExercise || e.Exercise == nil {
			return false
		}
		switch g.Metric {
		case MetricExerciseCalories:
			g.CurrentValue += e.Exercise.CaloriesBurned
		case MetricExerciseMinutes:
			g.CurrentValue += e.Exercise.DurationMinutes
		case MetricWorkoutCount:
			g.CurrentValue++
		default:
			return false
		}
		return true
	case journal.KindWater:
		if g.Category != CategoryHydration || g.Metric != MetricHydrationVolume || e.Water == nil {
			return false
		}
		g.CurrentValue += journal.ConvertVolume(e.Water.Amount, e.Water.Unit, g.TargetUnit)
		return true
	case journal.KindWeight:
		if g.Metric != MetricWeight || e.Weight == nil {
			return false
		}
		return applyWeight(g, journal.ConvertWeight(e.Weight.Weight, e.Weight.Unit, g.TargetUnit))
	default:
		return false
	}
}

func foodAmount(metric MetricKind, food *journal.FoodEntry) (float64, bool) {
	switch metric {
	case MetricCalories:
		return food.Calories, true
	case MetricProtein:
		return food.Protein, true
	case MetricCarbs:
		return food.Carbs, true
	case MetricFat:
		return food.Fat, true
	case MetricSugar:
		return food.Nutrients["sugar"], true
	default:
		return 0, false
	}
}

// applyWeight tracks distance moved from the baseline in the goal's direction.
// The first weigh-in of a tracking window becomes the baseline.
func applyWeight(g *Goal, weight float64) bool {
	if g.BaselineValue == nil {
		baseline := weight
		g.BaselineValue = &baseline
	}
	var moved float64
	switch g.Category {
	case CategoryWeightLoss:
		moved = *g.BaselineValue - weight
	case CategoryWeightGain:
		moved = weight - *g.BaselineValue
	default:
		return false
	}
	if moved < 0 {
		moved = 0
	}
	g.CurrentValue = moved
	return true
}
