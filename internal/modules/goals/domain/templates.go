package domain

import (
	"time"

	profiledomain "healthtrack/internal/modules/profile/domain"
)

type Template struct {
	ID           string
	Title        string
	Description  string
	Category     Category
	TargetType   TargetType
	Metric       MetricKind
	TargetValue  float64
	TargetUnit   string
	Frequency    Frequency
	DurationDays int
}

var templates = []Template{
	{ID: "lose_10_pounds", Title: "Lose 10 Pounds", Description: "Achieve a healthy weight loss of 10 pounds", Category: CategoryWeightLoss, TargetType: TargetReach, Metric: MetricWeight, TargetValue: 10, TargetUnit: "lbs", Frequency: FrequencyTotal, DurationDays: 60},
	{ID: "steady_weight_loss", Title: "Lose 1-2 Pounds per Week", Description: "Maintain a steady, healthy weight loss pace", Category: CategoryWeightLoss, TargetType: TargetReach, Metric: MetricWeight, TargetValue: 1.5, TargetUnit: "lbs", Frequency: FrequencyWeekly, DurationDays: 90},
	{ID: "daily_calories", Title: "Daily Calorie Goal", Description: "Stay within your daily calorie target", Category: CategoryNutrition, TargetType: TargetStayUnder, Metric: MetricCalories, TargetValue: 2000, TargetUnit: "calories", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "protein_intake", Title: "Protein Intake", Description: "Meet your daily protein requirements", Category: CategoryNutrition, TargetType: TargetReach, Metric: MetricProtein, TargetValue: 50, TargetUnit: "grams", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "reduce_sugar", Title: "Reduce Sugar", Description: "Limit daily sugar intake", Category: CategoryNutrition, TargetType: TargetStayUnder, Metric: MetricSugar, TargetValue: 25, TargetUnit: "grams", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "daily_steps", Title: "Daily Steps", Description: "Walk 10,000 steps every day", Category: CategoryExercise, TargetType: TargetReach, Metric: MetricManual, TargetValue: 10000, TargetUnit: "steps", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "weekly_workouts", Title: "Weekly Workouts", Description: "Exercise 4 times per week", Category: CategoryExercise, TargetType: TargetReach, Metric: MetricWorkoutCount, TargetValue: 4, TargetUnit: "workouts", Frequency: FrequencyWeekly, DurationDays: 90},
	{ID: "burn_calories", Title: "Burn Calories", Description: "Burn 500 calories through exercise daily", Category: CategoryExercise, TargetType: TargetReach, Metric: MetricExerciseCalories, TargetValue: 500, TargetUnit: "calories", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "daily_water", Title: "Daily Water Intake", Description: "Drink 8 glasses of water daily", Category: CategoryHydration, TargetType: TargetReach, Metric: MetricHydrationVolume, TargetValue: 64, TargetUnit: "oz", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "sleep_8_hours", Title: "Sleep 8 Hours", Description: "Get a full night's rest every night", Category: CategorySleep, TargetType: TargetReach, Metric: MetricManual, TargetValue: 8, TargetUnit: "hours", Frequency: FrequencyDaily, DurationDays: 30},
	{ID: "daily_meditation", Title: "Daily Meditation", Description: "Practice meditation for 10 minutes daily", Category: CategoryMindfulness, TargetType: TargetReach, Metric: MetricManual, TargetValue: 10, TargetUnit: "minutes", Frequency: FrequencyDaily, DurationDays: 30},
}

var startMoving = Template{
	ID: "start_moving", Title: "Start Moving", Description: "Begin with 5,000 steps daily",
	Category: CategoryExercise, TargetType: TargetReach, Metric: MetricManual,
	TargetValue: 5000, TargetUnit: "steps", Frequency: FrequencyDaily, DurationDays: 30,
}

func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func TemplateByID(id string) (Template, bool) {
	if id == startMoving.ID {
		return startMoving, true
	}
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Suggestions returns the catalog, led by a gentler step goal for sedentary users.
func Suggestions(activity profiledomain.ActivityLevel) []Template {
	out := Templates()
	if activity == profiledomain.ActivitySedentary {
		out = append([]Template{startMoving}, out...)
	}
	return out
}

// Goal builds an unsaved goal from the template; the engine assigns id and milestones.
func (t Template) Goal(now time.Time) Goal {
	target := now.AddDate(0, 0, t.DurationDays)
	return Goal{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		TargetType:  t.TargetType,
		Metric:      t.Metric,
		TargetValue: t.TargetValue,
		TargetUnit:  t.TargetUnit,
		Frequency:   t.Frequency,
		StartDate:   now,
		TargetDate:  &target,
	}
}
