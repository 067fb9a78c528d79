package apperrors_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	apperrors "healthtrack/internal/platform/errors"
)

func TestSentinelMatchingThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("add goal: %w", apperrors.Validation("title is required"))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("validation error should match ErrInvalidInput: %v", err)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("validation error must not match ErrNotFound")
	}
	if apperrors.TypeOf(err) != apperrors.TypeValidation {
		t.Fatalf("expected validation type, got %s", apperrors.TypeOf(err))
	}
	if apperrors.TypeOf(errors.New("boom")) != apperrors.TypeInternal {
		t.Fatalf("plain errors classify as internal")
	}
}

func TestConflictMatchesErrConflict(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("append: %w", apperrors.Conflict("event %q already recorded", "e1"))
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("conflict should match ErrConflict: %v", err)
	}
	if apperrors.TypeOf(err) != apperrors.TypeConflict {
		t.Fatalf("expected conflict type, got %s", apperrors.TypeOf(err))
	}
}

func TestStorageWrapKeepsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	err := apperrors.Storage(cause, "save goals")
	if !errors.Is(err, cause) {
		t.Fatalf("storage error should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("message should mention cause: %s", err.Error())
	}
}

func TestHandlerLevels(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	h := apperrors.NewHandler(slog.New(slog.NewTextHandler(buf, nil)))
	h.Handle(context.Background(), apperrors.NotFound("goal", "g-1"))
	h.Handle(context.Background(), apperrors.Storage(errors.New("io"), "save goals"))
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "level=ERROR") {
		t.Fatalf("expected warn and error records, got %s", out)
	}
}
