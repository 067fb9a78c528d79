package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"healthtrack/internal/bootstrap"
	goalsdto "healthtrack/internal/modules/goals/dto"
)

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals and their progress"}
	goal.AddCommand(
		newGoalAddCmd(dataDir),
		newGoalTemplateCmd(dataDir),
		newGoalListCmd(dataDir),
		newGoalShowCmd(dataDir),
		newGoalUpdateCmd(dataDir),
		newGoalProgressCmd(dataDir, "progress <id> <value>", "Set a goal's current value", false),
		newGoalProgressCmd(dataDir, "increment <id> <amount>", "Add to a goal's current value (negative amounts subtract)", true),
		newGoalToggleCmd(dataDir),
		newGoalCompleteCmd(dataDir),
		newGoalDeleteCmd(dataDir),
		newGoalStatsCmd(dataDir),
		newGoalResetCmd(dataDir),
		newGoalSuggestCmd(dataDir),
	)
	return goal
}

func newGoalAddCmd(dataDir *string) *cobra.Command {
	var in goalsdto.CreateGoalInput
	var baseline float64
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Title = args[0]
			if cmd.Flags().Changed("baseline") {
				in.BaselineValue = &baseline
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Add(ctx, in)
				if err != nil {
					return err
				}
				printMutation(cmd, "created", out)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Category, "category", "", "nutrition|exercise|weight_loss|weight_gain|hydration|sleep|mindfulness|custom")
	f.StringVar(&in.TargetType, "type", "reach_target", "reach_target|stay_under|reach_range")
	f.StringVar(&in.Metric, "metric", "manual", "event metric that feeds the goal: manual|calories|protein|carbs|fat|sugar|exercise_calories|exercise_minutes|workout_count|hydration_volume|weight")
	f.Float64Var(&in.TargetValue, "target", 0, "target value")
	f.StringVar(&in.TargetUnit, "unit", "", "target unit")
	f.Float64Var(&in.CurrentValue, "current", 0, "starting current value")
	f.Float64Var(&baseline, "baseline", 0, "baseline for weight goals (defaults to the first weigh-in)")
	f.StringVar(&in.Frequency, "frequency", "daily", "daily|weekly|total")
	f.StringVar(&in.TargetDate, "due", "", "target date YYYY-MM-DD")
	f.StringVar(&in.Description, "description", "", "description")
	f.BoolVar(&in.ReminderEnabled, "remind", false, "enable a daily reminder")
	f.StringVar(&in.ReminderTime, "remind-at", "", "reminder time HH:MM")
	f.StringVar(&in.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newGoalTemplateCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "template [id]",
		Short: "List goal templates, or create a goal from one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if len(args) == 0 {
					templates, err := app.GoalsCLI.Templates(ctx)
					if err != nil {
						return err
					}
					printTemplates(cmd, templates)
					return nil
				}
				out, err := app.GoalsCLI.AddFromTemplate(ctx, args[0])
				if err != nil {
					return err
				}
				printMutation(cmd, "created", out)
				return nil
			})
		},
	}
}

func newGoalListCmd(dataDir *string) *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				goals, err := app.GoalsCLI.List(ctx, state)
				if err != nil {
					return err
				}
				if len(goals) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
					return nil
				}
				for _, g := range goals {
					printGoalLine(cmd, g)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&state, "state", "all", "all|active|completed")
	return cmd
}

func newGoalShowCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a goal with its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				g, err := app.GoalsCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				printGoalDetail(cmd, g)
				return nil
			})
		},
	}
}

func newGoalUpdateCmd(dataDir *string) *cobra.Command {
	var (
		title, description, category, targetType, metric string
		unit, frequency, due, remindAt, notes             string
		target, current                                   float64
		remind                                            bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a goal; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := goalsdto.UpdateGoalInput{ID: args[0]}
			f := cmd.Flags()
			strs := map[string]struct {
				src string
				dst **string
			}{
				"title":       {title, &in.Title},
				"description": {description, &in.Description},
				"category":    {category, &in.Category},
				"type":        {targetType, &in.TargetType},
				"metric":      {metric, &in.Metric},
				"unit":        {unit, &in.TargetUnit},
				"frequency":   {frequency, &in.Frequency},
				"due":         {due, &in.TargetDate},
				"remind-at":   {remindAt, &in.ReminderTime},
				"notes":       {notes, &in.Notes},
			}
			for name, field := range strs {
				if f.Changed(name) {
					v := field.src
					*field.dst = &v
				}
			}
			if f.Changed("target") {
				in.TargetValue = &target
			}
			if f.Changed("current") {
				in.CurrentValue = &current
			}
			if f.Changed("remind") {
				in.ReminderEnabled = &remind
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Update(ctx, in)
				if err != nil {
					return err
				}
				printMutation(cmd, "updated", out)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&title, "title", "", "title")
	f.StringVar(&description, "description", "", "description")
	f.StringVar(&category, "category", "", "category")
	f.StringVar(&targetType, "type", "", "target type")
	f.StringVar(&metric, "metric", "", "metric")
	f.StringVar(&unit, "unit", "", "target unit")
	f.StringVar(&frequency, "frequency", "", "frequency")
	f.StringVar(&due, "due", "", "target date YYYY-MM-DD, empty clears")
	f.StringVar(&remindAt, "remind-at", "", "reminder time HH:MM")
	f.StringVar(&notes, "notes", "", "notes")
	f.Float64Var(&target, "target", 0, "target value")
	f.Float64Var(&current, "current", 0, "current value")
	f.BoolVar(&remind, "remind", false, "enable or disable the reminder")
	return cmd
}

func newGoalProgressCmd(dataDir *string, use, short string, increment bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				var out goalsdto.MutationOutput
				if increment {
					out, err = app.GoalsCLI.Increment(ctx, args[0], value)
				} else {
					out, err = app.GoalsCLI.SetProgress(ctx, args[0], value)
				}
				if err != nil {
					return err
				}
				printMutation(cmd, "progress", out)
				return nil
			})
		},
	}
}

func newGoalToggleCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Pause or resume a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				printMutation(cmd, out.Goal.State, out)
				return nil
			})
		},
	}
}

func newGoalCompleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a goal completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Complete(ctx, args[0])
				if err != nil {
					return err
				}
				printMutation(cmd, "completed", out)
				return nil
			})
		},
	}
}

func newGoalDeleteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.GoalsCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newGoalStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise goals by state and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				stats, err := app.GoalsCLI.Stats(ctx)
				if err != nil {
					return err
				}
				printStats(cmd, stats)
				return nil
			})
		},
	}
}

func newGoalResetCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <daily|weekly>",
		Short: "Zero goals of a frequency whose period has rolled over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Reset(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset %d %s goal(s)\n", out.Count, out.Frequency)
				return nil
			})
		},
	}
}

func newGoalSuggestCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest templates for the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				templates, err := app.GoalsCLI.Suggest(ctx)
				if err != nil {
					return err
				}
				printTemplates(cmd, templates)
				return nil
			})
		},
	}
}
