package usecase

import (
	"context"
	"strings"
	"time"

	"healthtrack/internal/modules/goals/domain"
	"healthtrack/internal/modules/goals/dto"
	goalsin "healthtrack/internal/modules/goals/port/in"
	"healthtrack/internal/modules/goals/service"
	profiledomain "healthtrack/internal/modules/profile/domain"
	profilein "healthtrack/internal/modules/profile/port/in"
	apperrors "healthtrack/internal/platform/errors"
)

const dateLayout = "2006-01-02"

type Interactor struct {
	svc      *service.GoalService
	profiles profilein.Usecase
}

// NewInteractor builds the goals usecase. profiles may be nil, in which case
// suggestions assume a moderately active user.
func NewInteractor(svc *service.GoalService, profiles profilein.Usecase) goalsin.Usecase {
	return &Interactor{svc: svc, profiles: profiles}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateGoalInput) (dto.MutationOutput, error) {
	targetDate, err := parseDate(input.TargetDate)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	out, err := i.svc.Add(ctx, domain.Goal{
		ID:              input.ID,
		Title:           input.Title,
		Description:     input.Description,
		Category:        domain.Category(strings.ToLower(input.Category)),
		TargetType:      domain.TargetType(strings.ToLower(input.TargetType)),
		Metric:          domain.MetricKind(strings.ToLower(input.Metric)),
		TargetValue:     input.TargetValue,
		TargetUnit:      input.TargetUnit,
		CurrentValue:    input.CurrentValue,
		BaselineValue:   input.BaselineValue,
		Frequency:       domain.Frequency(strings.ToLower(input.Frequency)),
		TargetDate:      targetDate,
		ReminderEnabled: input.ReminderEnabled,
		ReminderTime:    domain.TimeOfDay(input.ReminderTime),
		Notes:           input.Notes,
	})
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) CreateFromTemplate(ctx context.Context, input dto.CreateFromTemplateInput) (dto.MutationOutput, error) {
	tmpl, ok := domain.TemplateByID(strings.TrimSpace(input.TemplateID))
	if !ok {
		return dto.MutationOutput{}, apperrors.NotFound("template", input.TemplateID)
	}
	out, err := i.svc.Add(ctx, tmpl.Goal(i.svc.Now()))
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateGoalInput) (dto.MutationOutput, error) {
	goal, err := i.svc.Get(ctx, input.ID)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	if err := applyPatch(&goal, input); err != nil {
		return dto.MutationOutput{}, err
	}
	out, err := i.svc.Update(ctx, goal)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) ToggleActive(ctx context.Context, id string) (dto.MutationOutput, error) {
	out, err := i.svc.ToggleActive(ctx, id)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) Complete(ctx context.Context, id string) (dto.MutationOutput, error) {
	out, err := i.svc.Complete(ctx, id)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) UpdateProgress(ctx context.Context, input dto.ProgressInput) (dto.MutationOutput, error) {
	out, err := i.svc.UpdateProgress(ctx, input.GoalID, input.Value)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) IncrementProgress(ctx context.Context, input dto.ProgressInput) (dto.MutationOutput, error) {
	out, err := i.svc.IncrementProgress(ctx, input.GoalID, input.Value)
	if err != nil {
		return dto.MutationOutput{}, err
	}
	return i.toMutation(out), nil
}

func (i *Interactor) List(ctx context.Context, filter dto.ListFilter) ([]dto.GoalOutput, error) {
	var (
		goals []domain.Goal
		err   error
	)
	switch strings.ToLower(filter.State) {
	case "", "all":
		goals, err = i.svc.Goals(ctx)
	case "active":
		goals, err = i.svc.Active(ctx)
	case "completed":
		goals, err = i.svc.Completed(ctx)
	default:
		return nil, apperrors.Validation("unknown goal filter %q: want all, active or completed", filter.State)
	}
	if err != nil {
		return nil, err
	}
	now := i.svc.Now()
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalOutput(g, now))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toGoalOutput(goal, i.svc.Now()), nil
}

func (i *Interactor) Statistics(ctx context.Context) (dto.StatisticsOutput, error) {
	stats, err := i.svc.Statistics(ctx)
	if err != nil {
		return dto.StatisticsOutput{}, err
	}
	breakdown := make(map[string]int, len(stats.CategoryBreakdown))
	for c, n := range stats.CategoryBreakdown {
		breakdown[string(c)] = n
	}
	return dto.StatisticsOutput{
		TotalGoals:        stats.TotalGoals,
		ActiveCount:       stats.ActiveCount,
		PausedCount:       stats.PausedCount,
		CompletedCount:    stats.CompletedCount,
		OverdueCount:      stats.OverdueCount,
		CompletionRate:    stats.CompletionRate,
		CategoryBreakdown: breakdown,
	}, nil
}

func (i *Interactor) Reset(ctx context.Context, input dto.ResetInput) (dto.ResetOutput, error) {
	freq := domain.Frequency(strings.ToLower(strings.TrimSpace(input.Frequency)))
	count, err := i.svc.Reset(ctx, freq)
	if err != nil {
		return dto.ResetOutput{}, err
	}
	return dto.ResetOutput{Frequency: string(freq), Count: count}, nil
}

func (i *Interactor) Templates(_ context.Context) ([]dto.TemplateOutput, error) {
	return toTemplateOutputs(domain.Templates()), nil
}

func (i *Interactor) Suggestions(ctx context.Context) ([]dto.TemplateOutput, error) {
	activity := profiledomain.ActivityModerate
	if i.profiles != nil {
		profile, err := i.profiles.Get(ctx)
		if err != nil {
			return nil, err
		}
		if profile.Found {
			activity = profiledomain.ActivityLevel(profile.ActivityLevel)
		}
	}
	return toTemplateOutputs(domain.Suggestions(activity)), nil
}

func (i *Interactor) RouteEvent(ctx context.Context, input dto.RouteEventInput) (dto.RouteEventOutput, error) {
	out, err := i.svc.RouteEvent(ctx, input.Event)
	if err != nil {
		return dto.RouteEventOutput{}, err
	}
	now := i.svc.Now()
	updated := make([]dto.GoalOutput, 0, len(out.Updated))
	for _, g := range out.Updated {
		updated = append(updated, toGoalOutput(g, now))
	}
	return dto.RouteEventOutput{Updated: updated, Achievements: toAchievementOutputs(out.Achievements)}, nil
}

func applyPatch(goal *domain.Goal, input dto.UpdateGoalInput) error {
	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Category != nil {
		goal.Category = domain.Category(strings.ToLower(*input.Category))
	}
	if input.TargetType != nil {
		goal.TargetType = domain.TargetType(strings.ToLower(*input.TargetType))
	}
	if input.Metric != nil {
		goal.Metric = domain.MetricKind(strings.ToLower(*input.Metric))
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.TargetUnit != nil {
		goal.TargetUnit = *input.TargetUnit
	}
	if input.CurrentValue != nil {
		goal.CurrentValue = *input.CurrentValue
	}
	if input.Frequency != nil {
		goal.Frequency = domain.Frequency(strings.ToLower(*input.Frequency))
	}
	if input.TargetDate != nil {
		date, err := parseDate(*input.TargetDate)
		if err != nil {
			return err
		}
		goal.TargetDate = date
	}
	if input.ReminderEnabled != nil {
		goal.ReminderEnabled = *input.ReminderEnabled
	}
	if input.ReminderTime != nil {
		goal.ReminderTime = domain.TimeOfDay(*input.ReminderTime)
	}
	if input.Notes != nil {
		goal.Notes = *input.Notes
	}
	return nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, apperrors.Validation("target date must be YYYY-MM-DD: %v", err)
	}
	return &parsed, nil
}

func (i *Interactor) toMutation(out service.Outcome) dto.MutationOutput {
	return dto.MutationOutput{
		Goal:         toGoalOutput(out.Goal, i.svc.Now()),
		Achievements: toAchievementOutputs(out.Achievements),
	}
}

func toGoalOutput(g domain.Goal, now time.Time) dto.GoalOutput {
	milestones := make([]dto.MilestoneOutput, 0, len(g.Milestones))
	for _, m := range g.Milestones {
		milestones = append(milestones, dto.MilestoneOutput{
			Percentage:  m.Percentage,
			Reward:      m.Reward,
			IsReached:   m.IsReached,
			ReachedDate: m.ReachedDate,
		})
	}
	return dto.GoalOutput{
		ID:                 g.ID,
		Title:              g.Title,
		Description:        g.Description,
		Category:           string(g.Category),
		TargetType:         string(g.TargetType),
		Metric:             string(g.Metric),
		State:              string(g.State()),
		TargetValue:        g.TargetValue,
		TargetUnit:         g.TargetUnit,
		CurrentValue:       g.CurrentValue,
		Progress:           g.Progress(),
		ProgressPercentage: g.ProgressPercentage(),
		Frequency:          string(g.Frequency),
		StartDate:          g.StartDate,
		TargetDate:         g.TargetDate,
		CompletedDate:      g.CompletedDate,
		Overdue:            g.IsOverdue(now),
		Milestones:         milestones,
		ReminderEnabled:    g.ReminderEnabled,
		ReminderTime:       string(g.ReminderTime),
		Notes:              g.Notes,
	}
}

func toAchievementOutputs(in []domain.Achievement) []dto.AchievementOutput {
	out := make([]dto.AchievementOutput, 0, len(in))
	for _, a := range in {
		out = append(out, dto.AchievementOutput{
			Kind:        string(a.Kind),
			GoalID:      a.GoalID,
			GoalTitle:   a.GoalTitle,
			Title:       a.Title,
			Description: a.Description,
			Reward:      a.Reward,
			Percentage:  a.Percentage,
			EarnedAt:    a.EarnedAt,
		})
	}
	return out
}

func toTemplateOutputs(in []domain.Template) []dto.TemplateOutput {
	out := make([]dto.TemplateOutput, 0, len(in))
	for _, t := range in {
		out = append(out, dto.TemplateOutput{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Category:     string(t.Category),
			TargetType:   string(t.TargetType),
			Metric:       string(t.Metric),
			TargetValue:  t.TargetValue,
			TargetUnit:   t.TargetUnit,
			Frequency:    string(t.Frequency),
			DurationDays: t.DurationDays,
		})
	}
	return out
}
