package out

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"healthtrack/internal/modules/goals/domain"
)

const reminderHash = "healthtrack:reminders"

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type reminderEntry struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

// RedisReminderScheduler registers daily goal reminders in a redis hash that a
// notification worker polls. One field per goal.
type RedisReminderScheduler struct {
	client *redis.Client
}

func NewRedisReminderScheduler(opts RedisOptions) (*RedisReminderScheduler, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return &RedisReminderScheduler{client: client}, nil
}

func (s *RedisReminderScheduler) Schedule(ctx context.Context, goalID string, at domain.TimeOfDay, title string) error {
	raw, err := json.Marshal(reminderEntry{Time: string(at), Title: title})
	if err != nil {
		return fmt.Errorf("encode reminder: %w", err)
	}
	if err := s.client.HSet(ctx, reminderHash, reminderField(goalID), raw).Err(); err != nil {
		return fmt.Errorf("schedule reminder %s: %w", goalID, err)
	}
	return nil
}

func (s *RedisReminderScheduler) Cancel(ctx context.Context, goalID string) error {
	if err := s.client.HDel(ctx, reminderHash, reminderField(goalID)).Err(); err != nil {
		return fmt.Errorf("cancel reminder %s: %w", goalID, err)
	}
	return nil
}

func (s *RedisReminderScheduler) Close() error {
	return s.client.Close()
}

func reminderField(goalID string) string {
	return "goal_" + goalID
}
