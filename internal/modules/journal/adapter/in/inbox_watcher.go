package in

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
)

const (
	processedDir = "processed"
	rejectedDir  = "rejected"
)

// InboxResult describes the handling of one inbox file.
type InboxResult struct {
	File   string
	Output dto.LogOutput
	Err    error
}

type InboxOptions struct {
	// Debounce is how long a file must stay quiet before it is read.
	Debounce time.Duration
}

func DefaultInboxOptions() InboxOptions {
	return InboxOptions{Debounce: 200 * time.Millisecond}
}

// InboxWatcher ingests one event per *.json file dropped into a directory.
// Accepted files move to processed/, rejected ones to rejected/ next to a
// .error file holding the reason.
type InboxWatcher struct {
	dir      string
	usecase  journalin.Usecase
	logger   *slog.Logger
	debounce time.Duration
}

func NewInboxWatcher(dir string, usecase journalin.Usecase, logger *slog.Logger, opts InboxOptions) (*InboxWatcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("inbox directory is required")
	}
	for _, sub := range []string{"", processedDir, rejectedDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create inbox directory: %w", err)
		}
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultInboxOptions().Debounce
	}
	return &InboxWatcher{dir: dir, usecase: usecase, logger: logger, debounce: opts.Debounce}, nil
}

// Drain ingests every *.json file already in the inbox, oldest name first.
func (w *InboxWatcher) Drain(ctx context.Context) ([]InboxResult, error) {
	matches, err := filepath.Glob(filepath.Join(w.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan inbox: %w", err)
	}
	sort.Strings(matches)
	results := make([]InboxResult, 0, len(matches))
	for _, path := range matches {
		results = append(results, w.ingest(ctx, path))
	}
	return results, nil
}

// Run drains the inbox and then watches it until ctx is done. onResult is
// called for every file handled; it may be nil.
func (w *InboxWatcher) Run(ctx context.Context, onResult func(InboxResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	report := func(r InboxResult) {
		if onResult != nil {
			onResult(r)
		}
	}
	drained, err := w.Drain(ctx)
	if err != nil {
		return err
	}
	for _, r := range drained {
		report(r)
	}

	pending := map[string]time.Time{}
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInboxFile(event.Name) || !(event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) {
				continue
			}
			pending[event.Name] = time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "inbox watcher error", "error", err)
		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, path)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				report(w.ingest(ctx, path))
			}
		}
	}
}

func (w *InboxWatcher) ingest(ctx context.Context, path string) InboxResult {
	result := InboxResult{File: filepath.Base(path)}
	input, err := readInput(path)
	if err == nil {
		result.Output, err = w.usecase.Log(ctx, input)
	}
	result.Err = err
	if err != nil {
		w.logger.WarnContext(ctx, "inbox file rejected", "file", result.File, "error", err)
		w.reject(path, err)
		return result
	}
	w.logger.InfoContext(ctx, "inbox file ingested", "file", result.File, "event_id", result.Output.EventID)
	if moveErr := os.Rename(path, filepath.Join(w.dir, processedDir, result.File)); moveErr != nil {
		w.logger.WarnContext(ctx, "move processed inbox file failed", "file", result.File, "error", moveErr)
	}
	return result
}

func (w *InboxWatcher) reject(path string, cause error) {
	target := filepath.Join(w.dir, rejectedDir, filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		w.logger.Warn("move rejected inbox file failed", "file", path, "error", err)
		return
	}
	if err := os.WriteFile(target+".error", []byte(cause.Error()+"\n"), 0o644); err != nil {
		w.logger.Warn("write rejection reason failed", "file", target, "error", err)
	}
}

func readInput(path string) (dto.LogInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dto.LogInput{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	input := dto.LogInput{}
	if err := dec.Decode(&input); err != nil {
		return dto.LogInput{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return input, nil
}

func isInboxFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
