package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	goalsdto "healthtrack/internal/modules/goals/dto"
	healthscoredto "healthtrack/internal/modules/healthscore/dto"
	journalinadapter "healthtrack/internal/modules/journal/adapter/in"
	journal "healthtrack/internal/modules/journal/domain"
	journaldto "healthtrack/internal/modules/journal/dto"
	nutritiondto "healthtrack/internal/modules/nutrition/dto"
	profiledto "healthtrack/internal/modules/profile/dto"
	"healthtrack/internal/ui/theme"
)

const (
	dateLayout = "2006-01-02"
	barWidth   = 20
)

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func printMutation(cmd *cobra.Command, verb string, out goalsdto.MutationOutput) {
	printf(cmd, "%s %s\n", theme.Muted.Render(verb), theme.Title.Render(out.Goal.Title))
	printGoalLine(cmd, out.Goal)
	printAchievements(cmd.OutOrStdout(), out.Achievements)
}

func printAchievements(w io.Writer, achievements []goalsdto.AchievementOutput) {
	for _, a := range achievements {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", theme.Hot.Render("★ "+a.Title), a.Description, theme.Muted.Render(a.Reward))
	}
}

func printGoalLine(cmd *cobra.Command, g goalsdto.GoalOutput) {
	state := g.State
	if g.Overdue {
		state += ", overdue"
	}
	printf(cmd, "%s  %s %3d%%  %s  %s/%s %s  %s\n",
		theme.Muted.Render(g.ID),
		theme.ProgressBar(float64(g.ProgressPercentage), barWidth),
		g.ProgressPercentage,
		theme.Label.Render(g.Title),
		trimFloat(g.CurrentValue),
		trimFloat(g.TargetValue),
		g.TargetUnit,
		theme.Muted.Render("["+g.Frequency+", "+state+"]"),
	)
}

func printGoalDetail(cmd *cobra.Command, g goalsdto.GoalOutput) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", theme.Title.Render(g.Title))
	if g.Description != "" {
		fmt.Fprintf(&b, "%s\n", theme.Muted.Render(g.Description))
	}
	fmt.Fprintf(&b, "id: %s\ncategory: %s  type: %s  metric: %s\n", g.ID, g.Category, g.TargetType, g.Metric)
	fmt.Fprintf(&b, "state: %s  frequency: %s\n", g.State, g.Frequency)
	fmt.Fprintf(&b, "progress: %s %d%% (%s of %s %s)\n",
		theme.ProgressBar(float64(g.ProgressPercentage), barWidth), g.ProgressPercentage,
		trimFloat(g.CurrentValue), trimFloat(g.TargetValue), g.TargetUnit)
	fmt.Fprintf(&b, "started: %s", g.StartDate.Format(dateLayout))
	if g.TargetDate != nil {
		fmt.Fprintf(&b, "  due: %s", g.TargetDate.Format(dateLayout))
	}
	if g.CompletedDate != nil {
		fmt.Fprintf(&b, "  completed: %s", g.CompletedDate.Format(dateLayout))
	}
	b.WriteString("\n")
	if g.ReminderEnabled {
		fmt.Fprintf(&b, "reminder: %s\n", g.ReminderTime)
	}
	for _, m := range g.Milestones {
		mark := theme.Muted.Render("○")
		when := ""
		if m.IsReached {
			mark = theme.Good.Render("●")
			if m.ReachedDate != nil {
				when = theme.Muted.Render(" " + m.ReachedDate.Format(dateLayout))
			}
		}
		fmt.Fprintf(&b, "%s %3d%%  %s%s\n", mark, m.Percentage, m.Reward, when)
	}
	if g.Notes != "" {
		fmt.Fprintf(&b, "notes: %s\n", g.Notes)
	}
	printf(cmd, "%s\n", theme.Pane.Render(strings.TrimRight(b.String(), "\n")))
}

func printStats(cmd *cobra.Command, s goalsdto.StatisticsOutput) {
	printf(cmd, "%s\n", theme.Title.Render("Goals"))
	printf(cmd, "total %d  active %d  paused %d  completed %d  overdue %d\n",
		s.TotalGoals, s.ActiveCount, s.PausedCount, s.CompletedCount, s.OverdueCount)
	printf(cmd, "completion rate %s %.0f%%\n", theme.ProgressBar(s.CompletionRate*100, barWidth), s.CompletionRate*100)
	categories := make([]string, 0, len(s.CategoryBreakdown))
	for c := range s.CategoryBreakdown {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		printf(cmd, "  %-12s %d\n", c, s.CategoryBreakdown[c])
	}
}

func printTemplates(cmd *cobra.Command, templates []goalsdto.TemplateOutput) {
	for _, t := range templates {
		printf(cmd, "%-16s %s  %s %s %s, %d days\n",
			theme.Label.Render(t.ID), t.Title,
			trimFloat(t.TargetValue), t.TargetUnit, t.Frequency, t.DurationDays)
		printf(cmd, "%-16s %s\n", "", theme.Muted.Render(t.Description))
	}
}

func printLogOutput(cmd *cobra.Command, out journaldto.LogOutput) {
	printf(cmd, "logged %s %s\n", out.Kind, theme.Muted.Render(out.EventID))
	for _, g := range out.UpdatedGoals {
		printGoalLine(cmd, g)
	}
	printAchievements(cmd.OutOrStdout(), out.Achievements)
	if out.RoutingError != "" {
		printf(cmd, "%s %s\n", theme.Warn.Render("goals not updated:"), out.RoutingError)
	}
}

func printEvents(cmd *cobra.Command, out journaldto.EventsOutput) {
	printf(cmd, "%s\n", theme.Title.Render(out.From.Format(dateLayout)))
	if len(out.Events) == 0 {
		printf(cmd, "%s\n", theme.Muted.Render("no events"))
		return
	}
	for _, e := range out.Events {
		printf(cmd, "%s  %-10s %s\n", e.Timestamp.Format("15:04"), e.Kind, describeEvent(e))
	}
}

func describeEvent(e journal.Event) string {
	switch {
	case e.Food != nil:
		return fmt.Sprintf("%s %s kcal", e.Food.Name, trimFloat(e.Food.Calories))
	case e.Exercise != nil:
		return fmt.Sprintf("%s %s min", e.Exercise.Name, trimFloat(e.Exercise.DurationMinutes))
	case e.Water != nil:
		return fmt.Sprintf("%s %s", trimFloat(e.Water.Amount), e.Water.Unit)
	case e.Weight != nil:
		return fmt.Sprintf("%s %s", trimFloat(e.Weight.Weight), e.Weight.Unit)
	case e.Supplement != nil:
		return e.Supplement.Name
	case e.Steps != nil:
		return fmt.Sprintf("%s steps", trimFloat(e.Steps.Count))
	default:
		return ""
	}
}

func printInboxResult(cmd *cobra.Command, r journalinadapter.InboxResult) {
	if r.Err != nil {
		printf(cmd, "%s %s: %v\n", theme.Bad.Render("rejected"), r.File, r.Err)
		return
	}
	printf(cmd, "%s %s ", theme.Good.Render("ingested"), r.File)
	printLogOutput(cmd, r.Output)
}

func printBreakdown(cmd *cobra.Command, out nutritiondto.BreakdownOutput) {
	printf(cmd, "%s %s\n", theme.Title.Render("Nutrition "+out.Day), theme.Muted.Render(fmt.Sprintf("(%d events)", out.EventCount)))
	for _, m := range out.Macros {
		printf(cmd, "%-26s %s %5.0f%%  %s / %s %s\n", m.Name, theme.ProgressBar(m.Percentage, barWidth), m.Percentage, trimFloat(m.Current), trimFloat(m.Goal), m.Unit)
	}
	if !out.ProfileFound {
		printf(cmd, "%s\n", theme.Warn.Render("set a profile to compare micronutrients with reference intakes"))
	}
	for _, n := range out.Micronutrients {
		printf(cmd, "%-26s %s %5.0f%%  %s / %s %s  %s\n",
			n.Name, theme.ProgressBar(n.Percentage, barWidth), n.Percentage,
			trimFloat(n.Current), trimFloat(n.Goal), n.Unit,
			theme.ForStatus(n.Status).Render(strings.ReplaceAll(n.Status, "_", " ")))
		if n.Recommendation != "" {
			printf(cmd, "%-26s %s\n", "", theme.Muted.Render(n.Recommendation))
		}
	}
	for _, n := range out.Untracked {
		printf(cmd, "%-26s %s %s\n", n.Name, trimFloat(n.Current), n.Unit)
	}
}

func printReference(cmd *cobra.Command, out nutritiondto.ReferenceOutput) {
	printf(cmd, "%s  %s %s", theme.Title.Render(out.Name), trimFloat(out.Amount), out.Unit)
	if out.UpperLimit > 0 {
		printf(cmd, "  upper limit %s %s", trimFloat(out.UpperLimit), out.Unit)
	}
	printf(cmd, "\n%s\n", theme.Muted.Render(out.Sex+", "+out.AgeGroup+", "+out.LifeStage))
}

func printScore(cmd *cobra.Command, out healthscoredto.ScoreOutput) {
	printf(cmd, "%s %s %.0f  %s\n", theme.Title.Render("Health score "+out.Day), theme.ProgressBar(out.Score, barWidth), out.Score, theme.ForPercentage(out.Score).Render(out.Trend))
	if out.Baseline {
		printf(cmd, "%s\n", theme.Muted.Render("no activity logged yet; baseline for having goals"))
	}
	for _, c := range out.Components {
		printf(cmd, "  %-10s %s %3.0f\n", c.Name, theme.ProgressBar(c.Value, barWidth), c.Value)
	}
	printf(cmd, "%s\n", theme.Muted.Render(fmt.Sprintf("steps %s  exercise %s min  water %s %s  calories %s",
		trimFloat(out.Steps), trimFloat(out.ExerciseMinutes), trimFloat(out.Water), out.WaterUnit, trimFloat(out.Calories))))
}

func printProfile(cmd *cobra.Command, p profiledto.ProfileOutput) {
	if !p.Found {
		printf(cmd, "%s\n", theme.Muted.Render("no profile; run `healthtrack profile set`"))
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", theme.Title.Render(p.Name))
	fmt.Fprintf(&b, "born %s (age %d, %s)\n", p.BirthDate, p.Age, p.AgeGroup)
	fmt.Fprintf(&b, "sex %s  life stage %s", p.Sex, p.LifeStage)
	if p.Trimester > 0 {
		fmt.Fprintf(&b, " (trimester %d)", p.Trimester)
	}
	fmt.Fprintf(&b, "\nactivity %s\n", p.ActivityLevel)
	if p.StartingWeight > 0 || p.TargetWeight > 0 {
		fmt.Fprintf(&b, "weight %s → %s %s\n", trimFloat(p.StartingWeight), trimFloat(p.TargetWeight), p.WeightUnit)
	}
	if len(p.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "diet %s\n", strings.Join(p.DietaryRestrictions, ", "))
	}
	if len(p.HealthConditions) > 0 {
		fmt.Fprintf(&b, "conditions %s\n", strings.Join(p.HealthConditions, ", "))
	}
	printf(cmd, "%s\n", theme.Pane.Render(strings.TrimRight(b.String(), "\n")))
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
