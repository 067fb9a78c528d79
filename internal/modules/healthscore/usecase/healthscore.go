package usecase

import (
	"context"
	"fmt"

	"healthtrack/internal/modules/healthscore/domain"
	"healthtrack/internal/modules/healthscore/dto"
	healthscorein "healthtrack/internal/modules/healthscore/port/in"
	journal "healthtrack/internal/modules/journal/domain"
	journaldto "healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
	profilein "healthtrack/internal/modules/profile/port/in"
	"healthtrack/internal/platform/metrics"
)

const defaultWeightUnit = "lbs"

type Interactor struct {
	journal  journalin.Usecase
	profiles profilein.Usecase
	targets  domain.Targets
	metrics  *metrics.Metrics
}

func NewInteractor(journal journalin.Usecase, profiles profilein.Usecase, targets domain.Targets, m *metrics.Metrics) healthscorein.Usecase {
	if targets.WaterUnit == "" {
		targets.WaterUnit = "oz"
	}
	return &Interactor{journal: journal, profiles: profiles, targets: targets, metrics: m}
}

func (i *Interactor) Score(ctx context.Context, query dto.ScoreQuery) (dto.ScoreOutput, error) {
	day, err := i.journal.Events(ctx, journaldto.EventsQuery{Day: query.Day})
	if err != nil {
		return dto.ScoreOutput{}, err
	}
	inputs := domain.Inputs{
		StepGoal:    i.targets.Steps,
		WaterGoal:   i.targets.Water,
		CalorieGoal: i.targets.Calories,
	}
	for _, e := range day.Events {
		switch {
		case e.Steps != nil:
			inputs.Steps += e.Steps.Count
		case e.Exercise != nil:
			inputs.ExerciseMinutes += e.Exercise.DurationMinutes
		case e.Water != nil:
			inputs.Water += journal.ConvertVolume(e.Water.Amount, e.Water.Unit, i.targets.WaterUnit)
		case e.Food != nil:
			inputs.Calories += e.Food.Calories
		}
	}

	weight, unit, err := i.weightContext(ctx)
	if err != nil {
		return dto.ScoreOutput{}, err
	}
	inputs.Weight = weight

	score := domain.Compute(inputs)
	i.metrics.SetHealthScore(score.Value)

	out := dto.ScoreOutput{
		Day:             day.From.Format("2006-01-02"),
		Score:           score.Value,
		Trend:           domain.Trend(score.Value),
		Baseline:        score.Baseline,
		Steps:           inputs.Steps,
		ExerciseMinutes: inputs.ExerciseMinutes,
		Water:           inputs.Water,
		WaterUnit:       i.targets.WaterUnit,
		Calories:        inputs.Calories,
		CurrentWeight:   weight.Current,
		WeightUnit:      unit,
	}
	for _, c := range score.Components {
		out.Components = append(out.Components, dto.ComponentOutput{Name: string(c.Component), Value: c.Value})
	}
	return out, nil
}

// weightContext reads starting and target weight from the profile and the
// current weight from the latest weigh-in, all in the profile's unit.
func (i *Interactor) weightContext(ctx context.Context) (domain.WeightContext, string, error) {
	profile, err := i.profiles.Get(ctx)
	if err != nil {
		return domain.WeightContext{}, "", fmt.Errorf("load profile: %w", err)
	}
	unit := profile.WeightUnit
	if unit == "" {
		unit = defaultWeightUnit
	}
	wc := domain.WeightContext{Starting: profile.StartingWeight, Target: profile.TargetWeight}
	if i.targets.TargetWeight > 0 {
		wc.Target = i.targets.TargetWeight
	}
	latest, err := i.journal.LatestWeight(ctx)
	if err != nil {
		return domain.WeightContext{}, "", fmt.Errorf("latest weight: %w", err)
	}
	if latest.Found {
		wc.Current = journal.ConvertWeight(latest.Weight, latest.Unit, unit)
	}
	return wc, unit, nil
}
