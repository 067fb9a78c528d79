package out

import (
	"context"

	"healthtrack/internal/modules/goals/domain"
)

// GoalStore persists the whole goal collection as one opaque blob.
type GoalStore interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, blob []byte) error
}

// ReminderScheduler registers goal reminders with the notification side.
// Failures are logged by the engine and never block a goal mutation.
type ReminderScheduler interface {
	Schedule(ctx context.Context, goalID string, at domain.TimeOfDay, title string) error
	Cancel(ctx context.Context, goalID string) error
}

type AchievementSink interface {
	Celebrate(ctx context.Context, achievement domain.Achievement) error
}
