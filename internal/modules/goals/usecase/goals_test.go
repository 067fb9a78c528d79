package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goalsout "healthtrack/internal/modules/goals/adapter/out"
	"healthtrack/internal/modules/goals/dto"
	goalsin "healthtrack/internal/modules/goals/port/in"
	"healthtrack/internal/modules/goals/service"
	"healthtrack/internal/modules/goals/usecase"
	journal "healthtrack/internal/modules/journal/domain"
	profiledto "healthtrack/internal/modules/profile/dto"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/id"
	"healthtrack/internal/platform/kv"
	"healthtrack/internal/platform/logger"
	"healthtrack/internal/platform/metrics"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubProfiles struct {
	out profiledto.ProfileOutput
}

func (s stubProfiles) Get(context.Context) (profiledto.ProfileOutput, error) { return s.out, nil }

func (s stubProfiles) Save(context.Context, profiledto.SaveProfileInput) (profiledto.ProfileOutput, error) {
	return s.out, nil
}

var today = time.Date(2026, 5, 13, 12, 0, 0, 0, time.UTC)

func newUsecase(t *testing.T, profile profiledto.ProfileOutput) goalsin.Usecase {
	t.Helper()
	db, err := kv.Open(kv.InMemoryConfig())
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	log := logger.Discard()
	svc := service.NewGoalService(
		fixedClock{now: today},
		id.UUID{},
		goalsout.NewBadgerGoalStore(db),
		goalsout.NewLogReminderScheduler(log),
		goalsout.NewLogAchievementSink(log),
		metrics.New(),
		log,
	)
	return usecase.NewInteractor(svc, stubProfiles{out: profile})
}

func TestCreateUpdateAndList(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, profiledto.ProfileOutput{})
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateGoalInput{
		Title:       "Protein",
		Category:    "Nutrition",
		TargetType:  "reach_target",
		Metric:      "protein",
		TargetValue: 50,
		TargetUnit:  "grams",
		Frequency:   "daily",
		TargetDate:  "2026-06-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Goal.ID == "" || created.Goal.State != "active" || created.Goal.Category != "nutrition" {
		t.Fatalf("unexpected goal: %+v", created.Goal)
	}
	if created.Goal.TargetDate == nil || created.Goal.TargetDate.Format("2006-01-02") != "2026-06-01" {
		t.Fatalf("target date not parsed: %v", created.Goal.TargetDate)
	}

	title := "More protein"
	target := 80.0
	updated, err := uc.Update(ctx, dto.UpdateGoalInput{ID: created.Goal.ID, Title: &title, TargetValue: &target})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Goal.Title != title || updated.Goal.TargetValue != 80 || updated.Goal.Metric != "protein" || len(updated.Goal.Milestones) != 4 {
		t.Fatalf("patch should change only the given fields: %+v", updated.Goal)
	}

	if _, err := uc.Create(ctx, dto.CreateGoalInput{Title: "x", Category: "exercise", TargetType: "reach_target", TargetValue: 1, TargetUnit: "u", Frequency: "daily", TargetDate: "June"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad date should be a validation error, got %v", err)
	}

	all, err := uc.List(ctx, dto.ListFilter{})
	if err != nil || len(all) != 1 {
		t.Fatalf("list all: %v %d", err, len(all))
	}
	if _, err := uc.List(ctx, dto.ListFilter{State: "someday"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown filter should be rejected, got %v", err)
	}
}

func TestRouteEventThroughUsecase(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, profiledto.ProfileOutput{})
	ctx := context.Background()

	created, err := uc.CreateFromTemplate(ctx, dto.CreateFromTemplateInput{TemplateID: "daily_water"})
	if err != nil {
		t.Fatalf("create from template: %v", err)
	}
	out, err := uc.RouteEvent(ctx, dto.RouteEventInput{Event: journal.Event{
		ID:        "e1",
		Kind:      journal.KindWater,
		Timestamp: today,
		Water:     &journal.WaterEntry{Amount: 500, Unit: "ml"},
	}})
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(out.Updated) != 1 || out.Updated[0].ID != created.Goal.ID || out.Updated[0].ProgressPercentage != 26 {
		t.Fatalf("unexpected routing result: %+v", out.Updated)
	}
	if len(out.Achievements) != 1 || out.Achievements[0].Title != "25% Milestone!" {
		t.Fatalf("unexpected achievements: %+v", out.Achievements)
	}

	stats, err := uc.Statistics(ctx)
	if err != nil || stats.TotalGoals != 1 || stats.CategoryBreakdown["hydration"] != 1 {
		t.Fatalf("unexpected stats: %v %+v", err, stats)
	}
	reset, err := uc.Reset(ctx, dto.ResetInput{Frequency: "Daily"})
	if err != nil || reset.Count != 0 || reset.Frequency != "daily" {
		t.Fatalf("unexpected reset: %v %+v", err, reset)
	}

	if _, err := uc.CreateFromTemplate(ctx, dto.CreateFromTemplateInput{TemplateID: "fly"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown template should be not found, got %v", err)
	}
}

func TestSuggestionsFollowProfileActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sedentary := newUsecase(t, profiledto.ProfileOutput{Found: true, ActivityLevel: "sedentary"})
	got, err := sedentary.Suggestions(ctx)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if got[0].ID != "start_moving" {
		t.Fatalf("sedentary users should see start_moving first, got %s", got[0].ID)
	}

	none := newUsecase(t, profiledto.ProfileOutput{})
	got, err = none.Suggestions(ctx)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	templates, _ := none.Templates(ctx)
	if len(got) != len(templates) {
		t.Fatalf("without a profile suggestions equal the catalog")
	}
}
