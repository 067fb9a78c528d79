package dto

import (
	"time"

	journal "healthtrack/internal/modules/journal/domain"
)

type CreateGoalInput struct {
	ID              string
	Title           string
	Description     string
	Category        string
	TargetType      string
	Metric          string
	TargetValue     float64
	TargetUnit      string
	CurrentValue    float64
	BaselineValue   *float64
	Frequency       string
	TargetDate      string // YYYY-MM-DD, optional
	ReminderEnabled bool
	ReminderTime    string // HH:MM
	Notes           string
}

type CreateFromTemplateInput struct {
	TemplateID string
}

// UpdateGoalInput is a patch: nil fields keep the stored value.
type UpdateGoalInput struct {
	ID              string
	Title           *string
	Description     *string
	Category        *string
	TargetType      *string
	Metric          *string
	TargetValue     *float64
	TargetUnit      *string
	CurrentValue    *float64
	Frequency       *string
	TargetDate      *string // empty string clears
	ReminderEnabled *bool
	ReminderTime    *string
	Notes           *string
}

type ProgressInput struct {
	GoalID string
	Value  float64
}

type ListFilter struct {
	State string // all, active, completed
}

type ResetInput struct {
	Frequency string
}

type ResetOutput struct {
	Frequency string
	Count     int
}

type RouteEventInput struct {
	Event journal.Event
}

type MilestoneOutput struct {
	Percentage  int
	Reward      string
	IsReached   bool
	ReachedDate *time.Time
}

type GoalOutput struct {
	ID                 string
	Title              string
	Description        string
	Category           string
	TargetType         string
	Metric             string
	State              string
	TargetValue        float64
	TargetUnit         string
	CurrentValue       float64
	Progress           float64
	ProgressPercentage int
	Frequency          string
	StartDate          time.Time
	TargetDate         *time.Time
	CompletedDate      *time.Time
	Overdue            bool
	Milestones         []MilestoneOutput
	ReminderEnabled    bool
	ReminderTime       string
	Notes              string
}

type AchievementOutput struct {
	Kind        string
	GoalID      string
	GoalTitle   string
	Title       string
	Description string
	Reward      string
	Percentage  int
	EarnedAt    time.Time
}

type MutationOutput struct {
	Goal         GoalOutput
	Achievements []AchievementOutput
}

type RouteEventOutput struct {
	Updated      []GoalOutput
	Achievements []AchievementOutput
}

type StatisticsOutput struct {
	TotalGoals        int
	ActiveCount       int
	PausedCount       int
	CompletedCount    int
	OverdueCount      int
	CompletionRate    float64
	CategoryBreakdown map[string]int
}

type TemplateOutput struct {
	ID           string
	Title        string
	Description  string
	Category     string
	TargetType   string
	Metric       string
	TargetValue  float64
	TargetUnit   string
	Frequency    string
	DurationDays int
}
