package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimeOfDay is a wall-clock reminder time in "HH:MM" form.
type TimeOfDay string

func (t TimeOfDay) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("invalid time of day %q: want HH:MM", t)
	}
	return nil
}

type Milestone struct {
	Percentage  int        `json:"percentage"`
	Reward      string     `json:"reward,omitempty"`
	IsReached   bool       `json:"is_reached"`
	ReachedDate *time.Time `json:"reached_date,omitempty"`
}

// DefaultMilestones is the fixed batch every goal starts with.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{Percentage: 25, Reward: "Great start! 🌟"},
		{Percentage: 50, Reward: "Halfway there! 💪"},
		{Percentage: 75, Reward: "Almost done! 🔥"},
		{Percentage: 100, Reward: "Goal achieved! 🎉"},
	}
}

type State string

const (
	StateActive    State = "active"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

type Goal struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Category        Category    `json:"category"`
	TargetType      TargetType  `json:"target_type"`
	Metric          MetricKind  `json:"metric"`
	TargetValue     float64     `json:"target_value" validate:"gt=0"`
	TargetUnit      string      `json:"target_unit"`
	CurrentValue    float64     `json:"current_value" validate:"gte=0"`
	BaselineValue   *float64    `json:"baseline_value,omitempty"`
	Frequency       Frequency   `json:"frequency"`
	StartDate       time.Time   `json:"start_date"`
	TargetDate      *time.Time  `json:"target_date,omitempty"`
	IsActive        bool        `json:"is_active"`
	IsCompleted     bool        `json:"is_completed"`
	CompletedDate   *time.Time  `json:"completed_date,omitempty"`
	Milestones      []Milestone `json:"milestones"`
	ReminderEnabled bool        `json:"reminder_enabled"`
	ReminderTime    TimeOfDay   `json:"reminder_time,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	LastResetDate   time.Time   `json:"last_reset_date"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("goal id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(g.TargetUnit) == "" {
		return errors.New("target unit is required")
	}
	if math.IsInf(g.TargetValue, 0) || math.IsInf(g.CurrentValue, 0) {
		return errors.New("target and current values must be finite")
	}
	if err := validate.Struct(g); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			switch verrs[0].Field() {
			case "TargetValue":
				return errors.New("target value must be greater than zero")
			case "CurrentValue":
				return errors.New("current value must be non-negative")
			}
		}
		return err
	}
	if err := g.Category.Validate(); err != nil {
		return err
	}
	if err := g.TargetType.Validate(); err != nil {
		return err
	}
	if err := g.Frequency.Validate(); err != nil {
		return err
	}
	if err := g.Metric.Validate(); err != nil {
		return err
	}
	if !g.Metric.Fits(g.Category) {
		return fmt.Errorf("metric %s does not fit category %s", g.Metric, g.Category)
	}
	if g.ReminderEnabled {
		if err := g.ReminderTime.Validate(); err != nil {
			return err
		}
	}
	prev := 0
	for _, m := range g.Milestones {
		if m.Percentage <= prev || m.Percentage > 100 {
			return fmt.Errorf("milestone percentages must increase within 1..100, got %d after %d", m.Percentage, prev)
		}
		prev = m.Percentage
	}
	return nil
}

// Progress is current/target clamped to [0,1]; a non-positive target yields 0.
func (g Goal) Progress() float64 {
	if g.TargetValue <= 0 || math.IsNaN(g.CurrentValue) {
		return 0
	}
	p := g.CurrentValue / g.TargetValue
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func (g Goal) ProgressPercentage() int {
	return int(math.Round(g.Progress() * 100))
}

func (g Goal) State() State {
	switch {
	case g.IsCompleted:
		return StateCompleted
	case g.IsActive:
		return StateActive
	default:
		return StatePaused
	}
}

// Accepting reports whether automatic progress from logged events applies.
func (g Goal) Accepting() bool {
	return g.State() == StateActive
}

func (g Goal) IsOverdue(now time.Time) bool {
	return g.State() == StateActive && g.TargetDate != nil && g.TargetDate.Before(now)
}

// ReachMilestones marks every unreached milestone at or below the current
// progress as reached, in ascending order, and returns the newly reached ones.
// The comparison uses unrounded progress so the 100% milestone and completion agree.
func (g *Goal) ReachMilestones(now time.Time) []Milestone {
	pct := g.Progress() * 100
	var reached []Milestone
	for i := range g.Milestones {
		m := &g.Milestones[i]
		if m.IsReached || float64(m.Percentage) > pct {
			continue
		}
		stamp := now
		m.IsReached = true
		m.ReachedDate = &stamp
		reached = append(reached, *m)
	}
	return reached
}

// ShouldComplete reports whether the goal has earned automatic completion.
func (g Goal) ShouldComplete() bool {
	return !g.IsCompleted && g.TargetType.HonorsCompletion() && g.Progress() >= 1
}

func (g *Goal) MarkCompleted(now time.Time) {
	stamp := now
	g.IsCompleted = true
	g.IsActive = false
	g.CompletedDate = &stamp
}
