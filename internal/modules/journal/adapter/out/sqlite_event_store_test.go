package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalout "healthtrack/internal/modules/journal/adapter/out"
	"healthtrack/internal/modules/journal/domain"
	apperrors "healthtrack/internal/platform/errors"
)

func TestSQLiteEventStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := journalout.NewSQLiteEventStore(filepath.Join(t.TempDir(), "data", "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	day := time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{ID: "b", Kind: domain.KindWeight, Timestamp: day.Add(9 * time.Hour), Weight: &domain.WeightEntry{Weight: 181, Unit: "lbs"}},
		{ID: "a", Kind: domain.KindFood, Timestamp: day.Add(8 * time.Hour), Food: &domain.FoodEntry{Name: "eggs", Calories: 140, Protein: 12, Nutrients: map[string]float64{"choline": 290}}},
		{ID: "c", Kind: domain.KindWeight, Timestamp: day.Add(-2 * time.Hour), Weight: &domain.WeightEntry{Weight: 182, Unit: "lbs"}},
	}
	for _, e := range events {
		require.NoError(t, store.Append(ctx, e))
	}

	got, err := store.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, 290.0, got[0].Food.Nutrients["choline"])
	assert.True(t, got[0].Timestamp.Equal(events[1].Timestamp))

	latest, found, err := store.Latest(ctx, domain.KindWeight)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "b", latest.ID)

	_, found, err = store.Latest(ctx, domain.KindSteps)
	require.NoError(t, err)
	assert.False(t, found)

	replay := events[0]
	replay.Weight = &domain.WeightEntry{Weight: 179, Unit: "lbs"}
	require.ErrorIs(t, store.Append(ctx, replay), apperrors.ErrConflict)
	latest, _, err = store.Latest(ctx, domain.KindWeight)
	require.NoError(t, err)
	assert.Equal(t, 181.0, latest.Weight.Weight)
	got, err = store.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
