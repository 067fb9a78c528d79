package in_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalin "healthtrack/internal/modules/journal/adapter/in"
	"healthtrack/internal/modules/journal/dto"
	"healthtrack/internal/platform/logger"
)

type recordingJournal struct {
	mu     sync.Mutex
	logged []dto.LogInput
}

func (r *recordingJournal) Log(_ context.Context, input dto.LogInput) (dto.LogOutput, error) {
	if input.Kind == "" {
		return dto.LogOutput{}, errors.New("kind is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logged = append(r.logged, input)
	return dto.LogOutput{EventID: "evt", Kind: input.Kind}, nil
}

func (r *recordingJournal) Events(context.Context, dto.EventsQuery) (dto.EventsOutput, error) {
	return dto.EventsOutput{}, nil
}

func (r *recordingJournal) LatestWeight(context.Context) (dto.WeightOutput, error) {
	return dto.WeightOutput{}, nil
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDrainSortsFilesIntoProcessedAndRejected(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	journal := &recordingJournal{}
	watcher, err := journalin.NewInboxWatcher(dir, journal, logger.Discard(), journalin.DefaultInboxOptions())
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "01-water.json"), `{"kind":"water","water":{"amount":250,"unit":"ml"}}`)
	writeFile(t, filepath.Join(dir, "02-broken.json"), `{"kind":`)
	writeFile(t, filepath.Join(dir, "03-extra.json"), `{"kind":"steps","steps":{"count":10},"mood":"great"}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `ignored`)

	results, err := watcher.Drain(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "evt", results[0].Output.EventID)
	assert.Error(t, results[1].Err)
	assert.Error(t, results[2].Err)

	assert.FileExists(t, filepath.Join(dir, "processed", "01-water.json"))
	assert.FileExists(t, filepath.Join(dir, "rejected", "02-broken.json"))
	assert.FileExists(t, filepath.Join(dir, "rejected", "02-broken.json.error"))
	assert.FileExists(t, filepath.Join(dir, "rejected", "03-extra.json"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "01-water.json"))

	require.Len(t, journal.logged, 1)
	assert.Equal(t, 250.0, journal.logged[0].Water.Amount)
}

func TestRunPicksUpNewFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	journal := &recordingJournal{}
	watcher, err := journalin.NewInboxWatcher(dir, journal, logger.Discard(), journalin.InboxOptions{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "early.json"), `{"kind":"steps","steps":{"count":100}}`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan journalin.InboxResult, 4)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(r journalin.InboxResult) { results <- r })
	}()

	first := <-results
	assert.Equal(t, "early.json", first.File)

	writeFile(t, filepath.Join(dir, "late.json"), `{"kind":"exercise","exercise":{"name":"swim","duration_minutes":40}}`)
	select {
	case r := <-results:
		assert.Equal(t, "late.json", r.File)
		assert.NoError(t, r.Err)
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not ingest the new file")
	}

	cancel()
	require.NoError(t, <-done)
	assert.FileExists(t, filepath.Join(dir, "processed", "late.json"))
}
