package out_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	goalsout "healthtrack/internal/modules/goals/adapter/out"
)

func TestRedisReminderSchedulerFailsFastWhenUnreachable(t *testing.T) {
	t.Parallel()
	scheduler, err := goalsout.NewRedisReminderScheduler(goalsout.RedisOptions{Addr: "127.0.0.1:1"})
	if err == nil {
		_ = scheduler.Close()
		t.Fatalf("expected a connection error")
	}
}

// Set HEALTHTRACK_TEST_REDIS_ADDR to run against a live server.
func TestRedisReminderSchedulerRegistersAndCancels(t *testing.T) {
	addr := os.Getenv("HEALTHTRACK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HEALTHTRACK_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	scheduler, err := goalsout.NewRedisReminderScheduler(goalsout.RedisOptions{Addr: addr, DB: 15})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = scheduler.Close() })
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() { _ = client.Close() })

	if err := scheduler.Schedule(ctx, "g1", "07:30", "Drink water"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	raw, err := client.HGet(ctx, "healthtrack:reminders", "goal_g1").Result()
	if err != nil {
		t.Fatalf("read reminder: %v", err)
	}
	var entry struct {
		Time  string `json:"time"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("decode reminder: %v", err)
	}
	if entry.Time != "07:30" || entry.Title != "Drink water" {
		t.Fatalf("unexpected reminder: %+v", entry)
	}

	if err := scheduler.Cancel(ctx, "g1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if exists, err := client.HExists(ctx, "healthtrack:reminders", "goal_g1").Result(); err != nil || exists {
		t.Fatalf("reminder should be gone: %v %v", exists, err)
	}
}
