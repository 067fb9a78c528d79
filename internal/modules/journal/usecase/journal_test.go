package usecase_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goalsdto "healthtrack/internal/modules/goals/dto"
	journalout "healthtrack/internal/modules/journal/adapter/out"
	"healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
	"healthtrack/internal/modules/journal/service"
	"healthtrack/internal/modules/journal/usecase"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/logger"
	"healthtrack/internal/platform/metrics"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type counterID struct{ n *int }

func (c counterID) New() string {
	*c.n++
	return "evt-" + string(rune('a'+*c.n-1))
}

type fakeRouter struct {
	seen []goalsdto.RouteEventInput
	err  error
}

func (r *fakeRouter) RouteEvent(_ context.Context, input goalsdto.RouteEventInput) (goalsdto.RouteEventOutput, error) {
	r.seen = append(r.seen, input)
	if r.err != nil {
		return goalsdto.RouteEventOutput{}, r.err
	}
	return goalsdto.RouteEventOutput{
		Updated:      []goalsdto.GoalOutput{{ID: "g1", ProgressPercentage: 26}},
		Achievements: []goalsdto.AchievementOutput{{Title: "25% Milestone!"}},
	}, nil
}

var now = time.Date(2026, 5, 13, 14, 30, 0, 0, time.UTC)

func newJournal(t *testing.T, router *fakeRouter) journalin.Usecase {
	t.Helper()
	store, err := journalout.NewSQLiteEventStore(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	n := 0
	svc := service.NewJournalService(fixedClock{now: now}, counterID{n: &n}, store, metrics.New(), logger.Discard())
	return usecase.NewInteractor(svc, router, logger.Discard())
}

func TestLogNormalizesAndRoutes(t *testing.T) {
	t.Parallel()
	router := &fakeRouter{}
	uc := newJournal(t, router)
	ctx := context.Background()

	out, err := uc.Log(ctx, dto.LogInput{Kind: " Water ", Water: &dto.WaterInput{Amount: 500, Unit: "Milliliters"}})
	require.NoError(t, err)
	assert.Equal(t, "evt-a", out.EventID)
	assert.Equal(t, "water", out.Kind)
	assert.True(t, out.Timestamp.Equal(now))
	require.Len(t, out.UpdatedGoals, 1)
	assert.Equal(t, 26, out.UpdatedGoals[0].ProgressPercentage)
	require.Len(t, out.Achievements, 1)

	require.Len(t, router.seen, 1)
	routed := router.seen[0].Event
	assert.Equal(t, "ml", routed.Water.Unit)
	assert.Equal(t, "evt-a", routed.ID)
}

func TestLogFoldsNutrientKeys(t *testing.T) {
	t.Parallel()
	uc := newJournal(t, &fakeRouter{})
	ctx := context.Background()

	_, err := uc.Log(ctx, dto.LogInput{Kind: "supplement", Supplement: &dto.SupplementInput{
		Name:      " Multi ",
		Nutrients: map[string]float64{"Vitamin D": 10, "vitamin_d": 5, "Iron": 8},
	}})
	require.NoError(t, err)

	day, err := uc.Events(ctx, dto.EventsQuery{})
	require.NoError(t, err)
	require.Len(t, day.Events, 1)
	supp := day.Events[0].Supplement
	assert.Equal(t, "Multi", supp.Name)
	assert.Equal(t, map[string]float64{"vitamin_d": 15, "iron": 8}, supp.Nutrients)
}

func TestInvalidEventsAreRejectedAndNotStored(t *testing.T) {
	t.Parallel()
	router := &fakeRouter{}
	uc := newJournal(t, router)
	ctx := context.Background()

	_, err := uc.Log(ctx, dto.LogInput{Kind: "food", Food: &dto.FoodInput{Name: "x", Calories: -10}})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = uc.Log(ctx, dto.LogInput{Kind: "food", Water: &dto.WaterInput{Amount: 1, Unit: "ml"}})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = uc.Log(ctx, dto.LogInput{Kind: "water", Water: &dto.WaterInput{Amount: math.Inf(1), Unit: "ml"}})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	day, err := uc.Events(ctx, dto.EventsQuery{})
	require.NoError(t, err)
	assert.Empty(t, day.Events)
	assert.Empty(t, router.seen)
}

func TestRoutingFailureKeepsTheEvent(t *testing.T) {
	t.Parallel()
	router := &fakeRouter{err: errors.New("goal store offline")}
	uc := newJournal(t, router)
	ctx := context.Background()

	out, err := uc.Log(ctx, dto.LogInput{Kind: "steps", Steps: &dto.StepsInput{Count: 4000}})
	require.NoError(t, err)
	assert.Contains(t, out.RoutingError, "goal store offline")

	day, err := uc.Events(ctx, dto.EventsQuery{Day: "2026-05-13"})
	require.NoError(t, err)
	require.Len(t, day.Events, 1)
	assert.Equal(t, 4000.0, day.Events[0].Steps.Count)
}

func TestDuplicateEventIDIsRejectedWithoutRerouting(t *testing.T) {
	t.Parallel()
	router := &fakeRouter{}
	uc := newJournal(t, router)
	ctx := context.Background()

	in := dto.LogInput{ID: "bottle-1", Kind: "water", Water: &dto.WaterInput{Amount: 500, Unit: "ml"}}
	_, err := uc.Log(ctx, in)
	require.NoError(t, err)

	in.Water = &dto.WaterInput{Amount: 900, Unit: "ml"}
	_, err = uc.Log(ctx, in)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	assert.Len(t, router.seen, 1)
	day, err := uc.Events(ctx, dto.EventsQuery{})
	require.NoError(t, err)
	require.Len(t, day.Events, 1)
	assert.Equal(t, 500.0, day.Events[0].Water.Amount)
}

func TestEventsByDayAndLatestWeight(t *testing.T) {
	t.Parallel()
	uc := newJournal(t, &fakeRouter{})
	ctx := context.Background()

	yesterday := now.AddDate(0, 0, -1)
	_, err := uc.Log(ctx, dto.LogInput{Kind: "weight", Timestamp: yesterday, Weight: &dto.WeightInput{Weight: 82, Unit: "kg"}})
	require.NoError(t, err)
	_, err = uc.Log(ctx, dto.LogInput{Kind: "weight", Weight: &dto.WeightInput{Weight: 180}})
	require.NoError(t, err)

	prev, err := uc.Events(ctx, dto.EventsQuery{Day: "2026-05-12"})
	require.NoError(t, err)
	require.Len(t, prev.Events, 1)
	assert.Equal(t, "kg", prev.Events[0].Weight.Unit)

	latest, err := uc.LatestWeight(ctx)
	require.NoError(t, err)
	assert.True(t, latest.Found)
	assert.Equal(t, 180.0, latest.Weight)
	assert.Equal(t, "lbs", latest.Unit)

	_, err = uc.Events(ctx, dto.EventsQuery{Day: "13/05/2026"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
