package main

import (
	"context"

	"github.com/spf13/cobra"

	"healthtrack/internal/bootstrap"
	profiledto "healthtrack/internal/modules/profile/dto"
)

func newNutrientsCmd(dataDir *string) *cobra.Command {
	var day string
	nutrients := &cobra.Command{
		Use:   "nutrients",
		Short: "Show the day's macro and micronutrient breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NutritionCLI.Breakdown(ctx, day)
				if err != nil {
					return err
				}
				printBreakdown(cmd, out)
				return nil
			})
		},
	}
	nutrients.Flags().StringVar(&day, "date", "", "day YYYY-MM-DD (default today)")

	rda := &cobra.Command{
		Use:   "rda <nutrient>",
		Short: "Show the reference daily intake for the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NutritionCLI.Reference(ctx, args[0])
				if err != nil {
					return err
				}
				printReference(cmd, out)
				return nil
			})
		},
	}
	nutrients.AddCommand(rda)
	return nutrients
}

func newScoreCmd(dataDir *string) *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the health score for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.HealthScoreCLI.Score(ctx, day)
				if err != nil {
					return err
				}
				printScore(cmd, out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&day, "date", "", "day YYYY-MM-DD (default today)")
	return cmd
}

func newProfileCmd(dataDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Show or set the user profile"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.Show(ctx)
				if err != nil {
					return err
				}
				printProfile(cmd, out)
				return nil
			})
		},
	}

	var in profiledto.SaveProfileInput
	set := &cobra.Command{
		Use:   "set",
		Short: "Create or replace the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.Save(ctx, in)
				if err != nil {
					return err
				}
				printProfile(cmd, out)
				return nil
			})
		},
	}
	f := set.Flags()
	f.StringVar(&in.Name, "name", "", "display name")
	f.StringVar(&in.BirthDate, "birth-date", "", "birth date YYYY-MM-DD")
	f.StringVar(&in.Sex, "sex", "", "male|female|other")
	f.StringVar(&in.ActivityLevel, "activity", "moderate", "sedentary|light|moderate|active|very_active")
	f.Float64Var(&in.StartingWeight, "starting-weight", 0, "starting weight")
	f.Float64Var(&in.TargetWeight, "target-weight", 0, "target weight")
	f.StringVar(&in.WeightUnit, "weight-unit", "lbs", "lbs|kg")
	f.StringSliceVar(&in.DietaryRestrictions, "diet", nil, "dietary restrictions")
	f.StringSliceVar(&in.HealthConditions, "condition", nil, "health conditions")
	f.BoolVar(&in.Pregnant, "pregnant", false, "currently pregnant")
	f.IntVar(&in.Trimester, "trimester", 0, "pregnancy trimester 1-3")
	f.BoolVar(&in.Breastfeeding, "breastfeeding", false, "currently breastfeeding")
	_ = set.MarkFlagRequired("birth-date")
	_ = set.MarkFlagRequired("sex")

	profile.AddCommand(show, set)
	return profile
}

func newMetricsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print Prometheus metrics after refreshing the health score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.HealthScoreCLI.Score(ctx, ""); err != nil {
					return err
				}
				return app.Metrics.WriteText(cmd.OutOrStdout())
			})
		},
	}
}
