package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "HEALTHTRACK_"

type Config struct {
	DataDir     string           `yaml:"-"`
	ProfilePath string           `yaml:"-"`
	Log         LogConfig        `yaml:"log"`
	EventStore  EventStoreConfig `yaml:"event_store"`
	GoalStore   GoalStoreConfig  `yaml:"goal_store"`
	Redis       RedisConfig      `yaml:"redis"`
	Targets     Targets          `yaml:"targets"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

type EventStoreConfig struct {
	Driver string `yaml:"driver"` // sqlite or postgres
	DSN    string `yaml:"dsn"`
}

type GoalStoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// RedisConfig enables the shared reminder registry when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Targets are the user's daily reference values for macros and the health score.
type Targets struct {
	Steps        float64 `yaml:"steps"`
	Water        float64 `yaml:"water"`
	WaterUnit    string  `yaml:"water_unit"`
	Calories     float64 `yaml:"calories"`
	Protein      float64 `yaml:"protein"`
	Carbs        float64 `yaml:"carbs"`
	Fat          float64 `yaml:"fat"`
	TargetWeight float64 `yaml:"target_weight"`
}

func Default(dataDir string) Config {
	return Config{
		DataDir:     dataDir,
		ProfilePath: filepath.Join(dataDir, "profile.yaml"),
		Log:         LogConfig{Level: "info", Format: "text", Output: "stderr"},
		EventStore:  EventStoreConfig{Driver: "sqlite", DSN: filepath.Join(dataDir, "healthtrack.db")},
		GoalStore:   GoalStoreConfig{Path: filepath.Join(dataDir, "goals")},
		Targets: Targets{
			Steps:     10000,
			Water:     64,
			WaterUnit: "oz",
			Calories:  2000,
			Protein:   50,
			Carbs:     275,
			Fat:       70,
		},
	}
}

// New loads <dataDir>/config.yaml over the defaults, then applies <dataDir>/.env
// and HEALTHTRACK_* variables. Process environment wins over the .env file.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Default(dataDir)

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config.yaml: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	dotenv, err := godotenv.Read(filepath.Join(dataDir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}
	if err := applyEnv(&cfg, lookup(dotenv)); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.EventStore.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported event store driver %q", c.EventStore.Driver)
	}
	if c.EventStore.DSN == "" {
		return fmt.Errorf("event store dsn is required")
	}
	if !c.GoalStore.InMemory && c.GoalStore.Path == "" {
		return fmt.Errorf("goal store path is required")
	}
	switch c.Targets.WaterUnit {
	case "oz", "ml", "l":
	default:
		return fmt.Errorf("unsupported water unit %q", c.Targets.WaterUnit)
	}
	return nil
}

func lookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[envPrefix+key]
		return v, ok && v != ""
	}
}

func applyEnv(cfg *Config, get func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":          &cfg.Log.Level,
		"LOG_FORMAT":         &cfg.Log.Format,
		"LOG_OUTPUT":         &cfg.Log.Output,
		"EVENT_STORE_DRIVER": &cfg.EventStore.Driver,
		"EVENT_STORE_DSN":    &cfg.EventStore.DSN,
		"GOAL_STORE_PATH":    &cfg.GoalStore.Path,
		"REDIS_ADDR":         &cfg.Redis.Addr,
		"REDIS_PASSWORD":     &cfg.Redis.Password,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}
	if v, ok := get("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sREDIS_DB: %w", envPrefix, err)
		}
		cfg.Redis.DB = n
	}
	return nil
}
