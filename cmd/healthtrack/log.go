package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"healthtrack/internal/bootstrap"
	journalinadapter "healthtrack/internal/modules/journal/adapter/in"
	journaldto "healthtrack/internal/modules/journal/dto"
)

func newLogCmd(dataDir *string) *cobra.Command {
	logCmd := &cobra.Command{Use: "log", Short: "Log food, exercise, water, weight, supplements and steps"}

	var food journaldto.FoodInput
	var foodNutrients map[string]string
	foodCmd := &cobra.Command{
		Use:   "food <name>",
		Short: "Log a food entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			food.Name = args[0]
			nutrients, err := parseNutrients(foodNutrients)
			if err != nil {
				return err
			}
			food.Nutrients = nutrients
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Food(ctx, food)
			})
		},
	}
	foodCmd.Flags().Float64Var(&food.Calories, "calories", 0, "kcal")
	foodCmd.Flags().Float64Var(&food.Protein, "protein", 0, "protein grams")
	foodCmd.Flags().Float64Var(&food.Carbs, "carbs", 0, "carbohydrate grams")
	foodCmd.Flags().Float64Var(&food.Fat, "fat", 0, "fat grams")
	foodCmd.Flags().StringToStringVar(&foodNutrients, "nutrient", nil, "micronutrient amounts, e.g. --nutrient vitamin_c=45,iron=3")

	var exercise journaldto.ExerciseInput
	exerciseCmd := &cobra.Command{
		Use:   "exercise <name>",
		Short: "Log a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise.Name = args[0]
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Exercise(ctx, exercise)
			})
		},
	}
	exerciseCmd.Flags().Float64Var(&exercise.DurationMinutes, "minutes", 0, "duration in minutes")
	exerciseCmd.Flags().Float64Var(&exercise.CaloriesBurned, "calories", 0, "calories burned")

	var waterUnit string
	waterCmd := &cobra.Command{
		Use:   "water <amount>",
		Short: "Log water intake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Water(ctx, amount, waterUnit)
			})
		},
	}
	waterCmd.Flags().StringVar(&waterUnit, "unit", "ml", "ml|oz|l")

	var weightUnit string
	weightCmd := &cobra.Command{
		Use:   "weight <value>",
		Short: "Log a weigh-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Weight(ctx, weight, weightUnit)
			})
		},
	}
	weightCmd.Flags().StringVar(&weightUnit, "unit", "lbs", "lbs|kg")

	var supplementNutrients map[string]string
	supplementCmd := &cobra.Command{
		Use:   "supplement <name>",
		Short: "Log a supplement dose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nutrients, err := parseNutrients(supplementNutrients)
			if err != nil {
				return err
			}
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Supplement(ctx, args[0], nutrients)
			})
		},
	}
	supplementCmd.Flags().StringToStringVar(&supplementNutrients, "nutrient", nil, "nutrient amounts, e.g. --nutrient vitamin_d=50")

	stepsCmd := &cobra.Command{
		Use:   "steps <count>",
		Short: "Log a step count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return logWith(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) (journaldto.LogOutput, error) {
				return app.JournalCLI.Steps(ctx, count)
			})
		},
	}

	var day string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the events of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Events(ctx, day)
				if err != nil {
					return err
				}
				printEvents(cmd, out)
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&day, "date", "", "day YYYY-MM-DD (default today)")

	logCmd.AddCommand(foodCmd, exerciseCmd, waterCmd, weightCmd, supplementCmd, stepsCmd, listCmd)
	return logCmd
}

func newInboxCmd(dataDir *string) *cobra.Command {
	inbox := &cobra.Command{Use: "inbox", Short: "Ingest JSON event files dropped into a directory"}

	var metricsAddr string
	watch := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Ingest existing files, then watch for new ones until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				watcher, err := app.Inbox(args[0])
				if err != nil {
					return err
				}
				if metricsAddr != "" {
					stop, err := serveMetrics(ctx, metricsAddr, app)
					if err != nil {
						return err
					}
					defer stop()
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "metrics on http://%s/metrics\n", metricsAddr)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", args[0])
				err = watcher.Run(ctx, func(r journalinadapter.InboxResult) { printInboxResult(cmd, r) })
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})
		},
	}

	watch.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while watching")

	drain := &cobra.Command{
		Use:   "drain <dir>",
		Short: "Ingest the files currently in the inbox and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				watcher, err := app.Inbox(args[0])
				if err != nil {
					return err
				}
				results, err := watcher.Drain(ctx)
				for _, r := range results {
					printInboxResult(cmd, r)
				}
				return err
			})
		},
	}

	inbox.AddCommand(watch, drain)
	return inbox
}

// serveMetrics exposes the app registry at /metrics until stop is called.
func serveMetrics(ctx context.Context, addr string, app *bootstrap.App) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.ErrorContext(ctx, "metrics server stopped", "error", err)
		}
	}()
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}

func logWith(cmd *cobra.Command, dataDir string, log func(context.Context, *bootstrap.App) (journaldto.LogOutput, error)) error {
	return withApp(dataDir, func(ctx context.Context, app *bootstrap.App) error {
		out, err := log(ctx, app)
		if err != nil {
			return err
		}
		printLogOutput(cmd, out)
		return nil
	})
}

func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return v, nil
}

func parseNutrients(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		amount, err := parseAmount(v)
		if err != nil {
			return nil, fmt.Errorf("nutrient %s: %w", k, err)
		}
		out[k] = amount
	}
	return out, nil
}
