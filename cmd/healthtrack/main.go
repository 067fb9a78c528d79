package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"healthtrack/internal/bootstrap"
	"healthtrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "healthtrack",
		Short:         "Goal tracking and nutrient aggregation for daily health logs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory (config.yaml, profile, goals, events)")

	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newLogCmd(&dataDir))
	root.AddCommand(newInboxCmd(&dataDir))
	root.AddCommand(newNutrientsCmd(&dataDir))
	root.AddCommand(newScoreCmd(&dataDir))
	root.AddCommand(newProfileCmd(&dataDir))
	root.AddCommand(newMetricsCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".healthtrack"
	}
	return filepath.Join(home, ".healthtrack")
}

// withApp builds the application for one command, reports failures through
// the error handler and always closes the stores afterwards.
func withApp(dataDir string, run func(ctx context.Context, app *bootstrap.App) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New(dataDir)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	runErr := run(ctx, app)
	if runErr != nil {
		app.Errors.Handle(ctx, runErr)
	}
	if err := app.Close(context.Background()); err != nil && runErr == nil {
		return err
	}
	return runErr
}
