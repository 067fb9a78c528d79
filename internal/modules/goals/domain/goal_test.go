package domain_test

import (
	"math"
	"testing"
	"time"

	"healthtrack/internal/modules/goals/domain"
	journal "healthtrack/internal/modules/journal/domain"
	profiledomain "healthtrack/internal/modules/profile/domain"
)

var now = time.Date(2026, 5, 13, 10, 0, 0, 0, time.UTC) // Wednesday

func baseGoal() domain.Goal {
	return domain.Goal{
		ID:          "g1",
		Title:       "Read",
		Category:    domain.CategoryCustom,
		TargetType:  domain.TargetReach,
		Metric:      domain.MetricManual,
		TargetValue: 100,
		TargetUnit:  "pages",
		Frequency:   domain.FrequencyTotal,
		StartDate:   now,
		IsActive:    true,
		Milestones:  domain.DefaultMilestones(),
	}
}

func TestProgressClampsAndRounds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		current, target float64
		progress        float64
		pct             int
	}{
		{0, 100, 0, 0},
		{85, 100, 0.85, 85},
		{250, 100, 1, 100},
		{10, 0, 0, 0},
		{1, 3, 1.0 / 3.0, 33},
		{2, 3, 2.0 / 3.0, 67},
	}
	for _, tc := range cases {
		g := baseGoal()
		g.CurrentValue = tc.current
		g.TargetValue = tc.target
		if got := g.Progress(); math.Abs(got-tc.progress) > 1e-9 {
			t.Fatalf("progress(%v/%v) = %v, want %v", tc.current, tc.target, got, tc.progress)
		}
		if got := g.ProgressPercentage(); got != tc.pct {
			t.Fatalf("percentage(%v/%v) = %d, want %d", tc.current, tc.target, got, tc.pct)
		}
	}
}

func TestValidateRejectsBadGoals(t *testing.T) {
	t.Parallel()
	mutations := map[string]func(*domain.Goal){
		"empty title":       func(g *domain.Goal) { g.Title = "  " },
		"zero target":       func(g *domain.Goal) { g.TargetValue = 0 },
		"negative current":  func(g *domain.Goal) { g.CurrentValue = -1 },
		"empty unit":        func(g *domain.Goal) { g.TargetUnit = "" },
		"unknown category":  func(g *domain.Goal) { g.Category = "fun" },
		"unknown frequency": func(g *domain.Goal) { g.Frequency = "hourly" },
		"metric mismatch":   func(g *domain.Goal) { g.Metric = domain.MetricProtein },
		"bad reminder":      func(g *domain.Goal) { g.ReminderEnabled = true; g.ReminderTime = "25:00" },
		"infinite target":   func(g *domain.Goal) { g.TargetValue = math.Inf(1) },
	}
	for name, mutate := range mutations {
		g := baseGoal()
		mutate(&g)
		if err := g.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	if err := baseGoal().Validate(); err != nil {
		t.Fatalf("valid goal rejected: %v", err)
	}
}

func TestIncrementCrossesSeveralMilestonesAtOnce(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.CurrentValue = 20
	if reached := g.ReachMilestones(now); len(reached) != 0 {
		t.Fatalf("expected no milestone at 20%%, got %d", len(reached))
	}
	g.CurrentValue += 65
	reached := g.ReachMilestones(now)
	if len(reached) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(reached))
	}
	for i, want := range []int{25, 50, 75} {
		if reached[i].Percentage != want || reached[i].ReachedDate == nil || !reached[i].ReachedDate.Equal(now) {
			t.Fatalf("unexpected milestone %d: %+v", i, reached[i])
		}
	}
	if g.ProgressPercentage() != 85 {
		t.Fatalf("expected 85%%, got %d", g.ProgressPercentage())
	}
	if g.Milestones[3].IsReached {
		t.Fatalf("100%% milestone must stay unreached")
	}
	if again := g.ReachMilestones(now.Add(time.Hour)); len(again) != 0 {
		t.Fatalf("milestones fired twice: %+v", again)
	}
}

func TestHundredMilestoneNeedsFullProgress(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.CurrentValue = 99.6
	g.ReachMilestones(now)
	if g.ProgressPercentage() != 100 {
		t.Fatalf("expected display of 100%%")
	}
	if g.Milestones[3].IsReached || g.ShouldComplete() {
		t.Fatalf("goal at 99.6%% must not reach the final milestone or complete")
	}
}

func TestCompletionRules(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.CurrentValue = 100
	if !g.ShouldComplete() {
		t.Fatalf("reach_target at 100%% should complete")
	}
	g.TargetType = domain.TargetStayUnder
	if g.ShouldComplete() {
		t.Fatalf("stay_under must never auto-complete")
	}
	g.TargetType = domain.TargetRange
	g.MarkCompleted(now)
	if g.State() != domain.StateCompleted || g.IsActive || g.CompletedDate == nil {
		t.Fatalf("unexpected completed state: %+v", g)
	}
	if g.ShouldComplete() {
		t.Fatalf("completed goal should not complete again")
	}
}

func TestOverdue(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	past := now.AddDate(0, 0, -1)
	g.TargetDate = &past
	if !g.IsOverdue(now) {
		t.Fatalf("expected overdue")
	}
	g.IsActive = false
	if g.IsOverdue(now) {
		t.Fatalf("paused goal is not overdue")
	}
}

func TestStatisticsIsPure(t *testing.T) {
	t.Parallel()
	active := baseGoal()
	paused := baseGoal()
	paused.ID, paused.IsActive, paused.Category = "g2", false, domain.CategorySleep
	done := baseGoal()
	done.ID = "g3"
	done.MarkCompleted(now)
	goals := []domain.Goal{active, paused, done}

	first := domain.ComputeStatistics(goals, now)
	second := domain.ComputeStatistics(goals, now)
	if first.TotalGoals != 3 || first.ActiveCount != 1 || first.PausedCount != 1 || first.CompletedCount != 1 {
		t.Fatalf("unexpected counts: %+v", first)
	}
	if math.Abs(first.CompletionRate-1.0/3.0) > 1e-9 {
		t.Fatalf("unexpected completion rate %v", first.CompletionRate)
	}
	if first.CategoryBreakdown[domain.CategoryCustom] != 2 || first.CategoryBreakdown[domain.CategorySleep] != 1 {
		t.Fatalf("unexpected breakdown %+v", first.CategoryBreakdown)
	}
	if second.CompletionRate != first.CompletionRate || second.TotalGoals != first.TotalGoals {
		t.Fatalf("statistics not idempotent")
	}
	if empty := domain.ComputeStatistics(nil, now); empty.CompletionRate != 0 {
		t.Fatalf("empty completion rate should be 0")
	}
	if len(domain.Active(goals)) != 1 || len(domain.Completed(goals)) != 1 {
		t.Fatalf("unexpected derived lists")
	}
}

func TestPeriodWindows(t *testing.T) {
	t.Parallel()
	monday := time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)
	if got := domain.PeriodStart(domain.FrequencyWeekly, now); !got.Equal(monday) {
		t.Fatalf("week start = %v", got)
	}
	yesterday := now.AddDate(0, 0, -1)
	if domain.InPeriod(domain.FrequencyDaily, yesterday, now) {
		t.Fatalf("yesterday is outside today's window")
	}
	if !domain.InPeriod(domain.FrequencyWeekly, yesterday, now) {
		t.Fatalf("yesterday is inside this week")
	}
	if !domain.InPeriod(domain.FrequencyTotal, now.AddDate(-1, 0, 0), now) {
		t.Fatalf("total goals accept any time")
	}

	g := baseGoal()
	g.Frequency = domain.FrequencyDaily
	g.LastResetDate = yesterday
	if !g.NeedsReset(now) {
		t.Fatalf("goal last reset yesterday needs a reset")
	}
	g.LastResetDate = now
	if g.NeedsReset(now) {
		t.Fatalf("goal reset today does not need a reset")
	}
}

func TestApplyWaterConvertsIntoGoalUnit(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.Category, g.Metric, g.TargetValue, g.TargetUnit = domain.CategoryHydration, domain.MetricHydrationVolume, 64, "oz"
	ok := domain.ApplyEvent(&g, journal.Event{Kind: journal.KindWater, Water: &journal.WaterEntry{Amount: 500, Unit: "ml"}})
	if !ok {
		t.Fatalf("water event should apply")
	}
	if math.Abs(g.CurrentValue-16.907) > 0.001 {
		t.Fatalf("current = %v, want ~16.9", g.CurrentValue)
	}
	if g.ProgressPercentage() != 26 {
		t.Fatalf("percentage = %d, want 26", g.ProgressPercentage())
	}
}

func TestApplyEventMatchesMetricNotTitle(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.Title = "Beat my protein shake habit"
	food := journal.Event{Kind: journal.KindFood, Food: &journal.FoodEntry{Name: "shake", Calories: 300, Protein: 30}}
	if domain.ApplyEvent(&g, food) {
		t.Fatalf("manual goal must ignore food events")
	}

	g.Category, g.Metric = domain.CategoryNutrition, domain.MetricProtein
	if !domain.ApplyEvent(&g, food) || g.CurrentValue != 30 {
		t.Fatalf("protein goal should add 30, got %v", g.CurrentValue)
	}

	steps := baseGoal()
	steps.Category, steps.TargetValue, steps.TargetUnit = domain.CategoryExercise, 10000, "steps"
	walk := journal.Event{Kind: journal.KindExercise, Exercise: &journal.ExerciseEntry{Name: "walk", DurationMinutes: 30, CaloriesBurned: 120}}
	if domain.ApplyEvent(&steps, walk) || steps.ProgressPercentage() != 0 {
		t.Fatalf("manual step goal must not move from exercise events")
	}

	workouts := baseGoal()
	workouts.Category, workouts.Metric = domain.CategoryExercise, domain.MetricWorkoutCount
	domain.ApplyEvent(&workouts, walk)
	domain.ApplyEvent(&workouts, walk)
	if workouts.CurrentValue != 2 {
		t.Fatalf("workout count = %v, want 2", workouts.CurrentValue)
	}
}

func TestApplyWeightUsesBaseline(t *testing.T) {
	t.Parallel()
	g := baseGoal()
	g.Category, g.Metric, g.TargetValue, g.TargetUnit = domain.CategoryWeightLoss, domain.MetricWeight, 10, "lbs"
	weigh := func(w float64, unit string) journal.Event {
		return journal.Event{Kind: journal.KindWeight, Weight: &journal.WeightEntry{Weight: w, Unit: unit}}
	}
	domain.ApplyEvent(&g, weigh(200, "lbs"))
	if g.BaselineValue == nil || *g.BaselineValue != 200 || g.CurrentValue != 0 {
		t.Fatalf("first weigh-in should set the baseline: %+v", g)
	}
	domain.ApplyEvent(&g, weigh(196, "lbs"))
	if g.CurrentValue != 4 {
		t.Fatalf("lost = %v, want 4", g.CurrentValue)
	}
	domain.ApplyEvent(&g, weigh(205, "lbs"))
	if g.CurrentValue != 0 {
		t.Fatalf("gain on a loss goal floors at 0, got %v", g.CurrentValue)
	}
	domain.ApplyEvent(&g, weigh(86, "kg"))
	if math.Abs(g.CurrentValue-(200-86*journal.PoundsPerKilogram)) > 1e-9 {
		t.Fatalf("kg weigh-in not converted: %v", g.CurrentValue)
	}
}

func TestTemplatesAndSuggestions(t *testing.T) {
	t.Parallel()
	if len(domain.Templates()) != 11 {
		t.Fatalf("expected 11 templates, got %d", len(domain.Templates()))
	}
	tmpl, ok := domain.TemplateByID("daily_water")
	if !ok {
		t.Fatalf("daily_water template missing")
	}
	g := tmpl.Goal(now)
	g.ID, g.IsActive, g.Milestones = "x", true, domain.DefaultMilestones()
	if err := g.Validate(); err != nil {
		t.Fatalf("template goal invalid: %v", err)
	}
	if g.TargetDate == nil || !g.TargetDate.Equal(now.AddDate(0, 0, 30)) {
		t.Fatalf("unexpected target date %v", g.TargetDate)
	}
	for _, tmpl := range domain.Templates() {
		g := tmpl.Goal(now)
		g.ID = tmpl.ID
		if err := g.Validate(); err != nil {
			t.Fatalf("template %s builds an invalid goal: %v", tmpl.ID, err)
		}
	}
	sedentary := domain.Suggestions(profiledomain.ActivitySedentary)
	if len(sedentary) != 12 || sedentary[0].ID != "start_moving" || sedentary[0].TargetValue != 5000 {
		t.Fatalf("sedentary suggestions should lead with start_moving: %+v", sedentary[0])
	}
	if active := domain.Suggestions(profiledomain.ActivityActive); len(active) != 11 {
		t.Fatalf("active suggestions = %d, want 11", len(active))
	}
}
