package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"healthtrack/internal/platform/config"
)

func TestNewUsesDefaultsWithoutFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.EventStore.Driver != "sqlite" || cfg.EventStore.DSN != filepath.Join(dir, "healthtrack.db") {
		t.Fatalf("unexpected event store defaults: %+v", cfg.EventStore)
	}
	if cfg.Targets.Steps != 10000 || cfg.Targets.Water != 64 || cfg.Targets.WaterUnit != "oz" {
		t.Fatalf("unexpected target defaults: %+v", cfg.Targets)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be disabled by default")
	}
}

func TestNewReadsYAMLAndDotEnv(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	yamlDoc := "targets:\n  calories: 1800\n  water: 2000\n  water_unit: ml\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HEALTHTRACK_REDIS_ADDR=localhost:6379\nHEALTHTRACK_REDIS_DB=2\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Targets.Calories != 1800 || cfg.Targets.Water != 2000 || cfg.Targets.WaterUnit != "ml" {
		t.Fatalf("yaml targets not applied: %+v", cfg.Targets)
	}
	if cfg.Targets.Steps != 10000 {
		t.Fatalf("unset yaml fields keep defaults, got steps=%v", cfg.Targets.Steps)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.Log.Level)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("dotenv redis settings not applied: %+v", cfg.Redis)
	}
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("event_store:\n  driver: mysql\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(" "); err == nil {
		t.Fatalf("expected data dir error")
	}
}
