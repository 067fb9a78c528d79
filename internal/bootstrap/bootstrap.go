package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	goalsinadapter "healthtrack/internal/modules/goals/adapter/in"
	goalsoutadapter "healthtrack/internal/modules/goals/adapter/out"
	goalsout "healthtrack/internal/modules/goals/port/out"
	goalsservice "healthtrack/internal/modules/goals/service"
	goalsusecase "healthtrack/internal/modules/goals/usecase"
	healthscoreinadapter "healthtrack/internal/modules/healthscore/adapter/in"
	healthscoredomain "healthtrack/internal/modules/healthscore/domain"
	healthscoreusecase "healthtrack/internal/modules/healthscore/usecase"
	journalinadapter "healthtrack/internal/modules/journal/adapter/in"
	journaloutadapter "healthtrack/internal/modules/journal/adapter/out"
	journalin "healthtrack/internal/modules/journal/port/in"
	journalout "healthtrack/internal/modules/journal/port/out"
	journalservice "healthtrack/internal/modules/journal/service"
	journalusecase "healthtrack/internal/modules/journal/usecase"
	nutritioninadapter "healthtrack/internal/modules/nutrition/adapter/in"
	nutritiondomain "healthtrack/internal/modules/nutrition/domain"
	nutritionusecase "healthtrack/internal/modules/nutrition/usecase"
	profileinadapter "healthtrack/internal/modules/profile/adapter/in"
	profileoutadapter "healthtrack/internal/modules/profile/adapter/out"
	profileservice "healthtrack/internal/modules/profile/service"
	profileusecase "healthtrack/internal/modules/profile/usecase"
	"healthtrack/internal/platform/clock"
	"healthtrack/internal/platform/config"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/id"
	"healthtrack/internal/platform/kv"
	"healthtrack/internal/platform/logger"
	"healthtrack/internal/platform/metrics"
)

type App struct {
	GoalsCLI       goalsinadapter.CLIHandler
	JournalCLI     journalinadapter.CLIHandler
	NutritionCLI   nutritioninadapter.CLIHandler
	HealthScoreCLI healthscoreinadapter.CLIHandler
	ProfileCLI     profileinadapter.CLIHandler

	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Errors  *apperrors.Handler
	goals   *goalsservice.GoalService
	journal journalin.Usecase
	closers []io.Closer
}

func New(ctx context.Context, cfg config.Config) (_ *App, err error) {
	log, logCloser, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, OutputPath: cfg.Log.Output})
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	app := &App{Logger: log, Metrics: metrics.New(), Errors: apperrors.NewHandler(log)}
	app.closers = append(app.closers, logCloser)
	defer func() {
		if err != nil {
			_ = app.closeAll()
		}
	}()

	clk := clock.SystemClock{}
	ids := id.UUID{}

	kvCfg := kv.DefaultConfig(cfg.GoalStore.Path)
	if cfg.GoalStore.InMemory {
		kvCfg = kv.InMemoryConfig()
	}
	db, err := kv.Open(kvCfg)
	if err != nil {
		return nil, fmt.Errorf("open goal store: %w", err)
	}
	app.closers = append(app.closers, db)

	reminders := newReminderScheduler(ctx, cfg.Redis, log, app.Metrics)
	if c, ok := reminders.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	events, err := newEventStore(cfg.EventStore)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, events)

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		clk, ids, profileoutadapter.NewYAMLProfileStore(cfg.ProfilePath),
	))

	app.goals = goalsservice.NewGoalService(
		clk,
		ids,
		goalsoutadapter.NewBadgerGoalStore(db),
		reminders,
		goalsoutadapter.NewLogAchievementSink(log),
		app.Metrics,
		log,
	)
	if err := app.goals.Load(ctx); err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	goalsUC := goalsusecase.NewInteractor(app.goals, profileUC)

	app.journal = journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, ids, events, app.Metrics, log),
		goalsUC,
		log,
	)

	t := cfg.Targets
	nutritionUC := nutritionusecase.NewInteractor(app.journal, profileUC, nutritiondomain.MacroTargets{
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
	})
	scoreUC := healthscoreusecase.NewInteractor(app.journal, profileUC, healthscoredomain.Targets{
		Steps:        t.Steps,
		Water:        t.Water,
		WaterUnit:    t.WaterUnit,
		Calories:     t.Calories,
		TargetWeight: t.TargetWeight,
	}, app.Metrics)

	app.GoalsCLI = goalsinadapter.NewCLIHandler(goalsUC)
	app.JournalCLI = journalinadapter.NewCLIHandler(app.journal)
	app.NutritionCLI = nutritioninadapter.NewCLIHandler(nutritionUC)
	app.HealthScoreCLI = healthscoreinadapter.NewCLIHandler(scoreUC)
	app.ProfileCLI = profileinadapter.NewCLIHandler(profileUC)
	return app, nil
}

// Inbox builds a watcher that feeds JSON event files from dir into the journal.
func (a *App) Inbox(dir string) (*journalinadapter.InboxWatcher, error) {
	return journalinadapter.NewInboxWatcher(dir, a.journal, a.Logger, journalinadapter.DefaultInboxOptions())
}

// Close retries any goal save that failed earlier, then releases the stores.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.goals != nil {
		if err := a.goals.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush goals: %w", err))
		}
	}
	errs = append(errs, a.closeAll())
	return errors.Join(errs...)
}

func (a *App) closeAll() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if a.closers[i] == nil {
			continue
		}
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newEventStore(cfg config.EventStoreConfig) (journalout.EventStore, error) {
	var (
		store journalout.EventStore
		err   error
	)
	switch cfg.Driver {
	case "postgres":
		store, err = journaloutadapter.NewPostgresEventStore(cfg.DSN)
	default:
		store, err = journaloutadapter.NewSQLiteEventStore(cfg.DSN)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s event store: %w", cfg.Driver, err)
	}
	return store, nil
}

// newReminderScheduler falls back to log-only reminders when the registry is
// unreachable; reminders are best effort and never block startup.
func newReminderScheduler(ctx context.Context, cfg config.RedisConfig, log *slog.Logger, m *metrics.Metrics) goalsout.ReminderScheduler {
	if cfg.Addr == "" {
		return goalsoutadapter.NewLogReminderScheduler(log)
	}
	scheduler, err := goalsoutadapter.NewRedisReminderScheduler(goalsoutadapter.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		m.ReminderFailed()
		log.WarnContext(ctx, "reminder registry unreachable, using log reminders", "addr", cfg.Addr, "error", err)
		return goalsoutadapter.NewLogReminderScheduler(log)
	}
	return scheduler
}
