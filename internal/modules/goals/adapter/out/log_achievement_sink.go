package out

import (
	"context"
	"log/slog"

	"healthtrack/internal/modules/goals/domain"
)

type LogAchievementSink struct {
	logger *slog.Logger
}

func NewLogAchievementSink(logger *slog.Logger) LogAchievementSink {
	return LogAchievementSink{logger: logger}
}

func (s LogAchievementSink) Celebrate(ctx context.Context, a domain.Achievement) error {
	s.logger.InfoContext(ctx, "achievement earned",
		"kind", string(a.Kind),
		"goal_id", a.GoalID,
		"title", a.Title,
		"description", a.Description,
	)
	return nil
}
