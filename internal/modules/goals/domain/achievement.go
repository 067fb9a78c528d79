package domain

import (
	"fmt"
	"time"
)

type AchievementKind string

const (
	AchievementMilestone AchievementKind = "milestone"
	AchievementCompleted AchievementKind = "goal_completed"
)

// Achievement is the celebration emitted when a milestone is crossed or a goal completes.
type Achievement struct {
	Kind        AchievementKind
	GoalID      string
	GoalTitle   string
	Title       string
	Description string
	Reward      string
	Percentage  int
	Value       float64
	EarnedAt    time.Time
}

func MilestoneAchievement(g Goal, m Milestone, now time.Time) Achievement {
	return Achievement{
		Kind:        AchievementMilestone,
		GoalID:      g.ID,
		GoalTitle:   g.Title,
		Title:       fmt.Sprintf("%d%% Milestone!", m.Percentage),
		Description: fmt.Sprintf("%s: %s", g.Title, m.Reward),
		Reward:      m.Reward,
		Percentage:  m.Percentage,
		Value:       g.CurrentValue,
		EarnedAt:    now,
	}
}

func CompletionAchievement(g Goal, now time.Time) Achievement {
	return Achievement{
		Kind:        AchievementCompleted,
		GoalID:      g.ID,
		GoalTitle:   g.Title,
		Title:       "Goal Achieved! 🎯",
		Description: fmt.Sprintf("You completed: %s", g.Title),
		Percentage:  g.ProgressPercentage(),
		Value:       g.TargetValue,
		EarnedAt:    now,
	}
}
