package out

import (
	"context"
	"log/slog"

	"healthtrack/internal/modules/goals/domain"
)

// LogReminderScheduler is used when no redis is configured; it only records intent.
type LogReminderScheduler struct {
	logger *slog.Logger
}

func NewLogReminderScheduler(logger *slog.Logger) LogReminderScheduler {
	return LogReminderScheduler{logger: logger}
}

func (s LogReminderScheduler) Schedule(ctx context.Context, goalID string, at domain.TimeOfDay, title string) error {
	s.logger.InfoContext(ctx, "reminder scheduled", "goal_id", goalID, "time", string(at), "title", title)
	return nil
}

func (s LogReminderScheduler) Cancel(ctx context.Context, goalID string) error {
	s.logger.InfoContext(ctx, "reminder cancelled", "goal_id", goalID)
	return nil
}
