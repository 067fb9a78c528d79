package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journal "healthtrack/internal/modules/journal/domain"
	journaldto "healthtrack/internal/modules/journal/dto"
	"healthtrack/internal/modules/nutrition/domain"
	"healthtrack/internal/modules/nutrition/dto"
	"healthtrack/internal/modules/nutrition/usecase"
	profiledto "healthtrack/internal/modules/profile/dto"
	apperrors "healthtrack/internal/platform/errors"
)

var day = time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC)

type stubJournal struct {
	events []journal.Event
}

func (s stubJournal) Log(context.Context, journaldto.LogInput) (journaldto.LogOutput, error) {
	return journaldto.LogOutput{}, nil
}

func (s stubJournal) Events(context.Context, journaldto.EventsQuery) (journaldto.EventsOutput, error) {
	return journaldto.EventsOutput{From: day, To: day.AddDate(0, 0, 1), Events: s.events}, nil
}

func (s stubJournal) LatestWeight(context.Context) (journaldto.WeightOutput, error) {
	return journaldto.WeightOutput{}, nil
}

type stubProfiles struct {
	out profiledto.ProfileOutput
}

func (s stubProfiles) Get(context.Context) (profiledto.ProfileOutput, error) { return s.out, nil }

func (s stubProfiles) Save(context.Context, profiledto.SaveProfileInput) (profiledto.ProfileOutput, error) {
	return s.out, nil
}

var retiree = profiledto.ProfileOutput{Found: true, Age: 74, AgeGroup: "adult_71_plus", Sex: "male", LifeStage: "standard"}

func dayEvents() []journal.Event {
	at := day.Add(9 * time.Hour)
	return []journal.Event{
		{ID: "1", Kind: journal.KindFood, Timestamp: at, Food: &journal.FoodEntry{Name: "toast", Calories: 500, Protein: 25, Carbs: 60, Fat: 10, Nutrients: map[string]float64{"fiber": 6, "vitamin_d": 0}}},
		{ID: "2", Kind: journal.KindSupplement, Timestamp: at, Supplement: &journal.SupplementEntry{Name: "D3", Nutrients: map[string]float64{"vitamin_d": 50}}},
	}
}

func TestBreakdownWithProfile(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(stubJournal{events: dayEvents()}, stubProfiles{out: retiree}, domain.MacroTargets{Calories: 2000, Protein: 50, Fat: 0, Carbs: 250})
	out, err := uc.Breakdown(context.Background(), dto.BreakdownQuery{})
	require.NoError(t, err)

	assert.Equal(t, "2026-05-13", out.Day)
	assert.True(t, out.ProfileFound)
	assert.Equal(t, 2, out.EventCount)

	require.Len(t, out.Macros, 3, "fat has no target and is omitted")
	assert.Equal(t, "calories", out.Macros[0].ID)
	assert.InDelta(t, 25, out.Macros[0].Percentage, 1e-9)
	assert.InDelta(t, 50, out.Macros[1].Percentage, 1e-9)

	require.Len(t, out.Micronutrients, 1)
	vitD := out.Micronutrients[0]
	assert.Equal(t, "vitamin_d", vitD.ID)
	assert.InDelta(t, 250, vitD.Percentage, 1e-9)
	assert.Equal(t, "mcg", vitD.Unit)
	assert.Equal(t, string(domain.StatusDangerous), vitD.Status)
	assert.NotEmpty(t, vitD.Recommendation)

	require.Len(t, out.Untracked, 1)
	assert.Equal(t, "fiber", out.Untracked[0].ID)
}

func TestBreakdownWithoutProfileShowsRawTotals(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(stubJournal{events: dayEvents()}, stubProfiles{}, domain.MacroTargets{Calories: 2000})
	out, err := uc.Breakdown(context.Background(), dto.BreakdownQuery{Day: "2026-05-13"})
	require.NoError(t, err)
	assert.False(t, out.ProfileFound)
	assert.Empty(t, out.Micronutrients)
	require.Len(t, out.Untracked, 2)
	assert.Equal(t, "fiber", out.Untracked[0].ID)
	assert.Equal(t, "vitamin_d", out.Untracked[1].ID)
	assert.Equal(t, 50.0, out.Untracked[1].Current)
	assert.Equal(t, "mcg", out.Untracked[1].Unit)
}

func TestReferenceLookup(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(stubJournal{}, stubProfiles{out: retiree}, domain.MacroTargets{})
	ctx := context.Background()

	ref, err := uc.Reference(ctx, dto.ReferenceQuery{NutrientID: "Vitamin D"})
	require.NoError(t, err)
	assert.Equal(t, "vitamin_d", ref.ID)
	assert.Equal(t, 20.0, ref.Amount)
	assert.Equal(t, 100.0, ref.UpperLimit)

	_, err = uc.Reference(ctx, dto.ReferenceQuery{NutrientID: "kryptonite"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	noProfile := usecase.NewInteractor(stubJournal{}, stubProfiles{}, domain.MacroTargets{})
	_, err = noProfile.Reference(ctx, dto.ReferenceQuery{NutrientID: "iron"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
