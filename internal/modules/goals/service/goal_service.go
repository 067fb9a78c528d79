package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"healthtrack/internal/modules/goals/domain"
	goalsout "healthtrack/internal/modules/goals/port/out"
	journal "healthtrack/internal/modules/journal/domain"
	"healthtrack/internal/platform/clock"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/id"
	"healthtrack/internal/platform/metrics"
)

const snapshotVersion = 1

type snapshot struct {
	Version int           `json:"version"`
	Goals   []domain.Goal `json:"goals"`
}

// Outcome is the result of a single goal mutation.
type Outcome struct {
	Goal         domain.Goal
	Achievements []domain.Achievement
}

type RouteOutcome struct {
	Updated      []domain.Goal
	Achievements []domain.Achievement
}

// GoalService owns the goal collection. Every mutation runs under one lock,
// persists the whole collection and then publishes achievements.
type GoalService struct {
	mu        sync.Mutex
	clock     clock.Clock
	idGen     id.Generator
	store     goalsout.GoalStore
	reminders goalsout.ReminderScheduler
	sink      goalsout.AchievementSink
	metrics   *metrics.Metrics
	logger    *slog.Logger

	goals  []domain.Goal
	loaded bool
	dirty  bool
}

func NewGoalService(
	clock clock.Clock,
	idGen id.Generator,
	store goalsout.GoalStore,
	reminders goalsout.ReminderScheduler,
	sink goalsout.AchievementSink,
	m *metrics.Metrics,
	logger *slog.Logger,
) *GoalService {
	return &GoalService{
		clock:     clock,
		idGen:     idGen,
		store:     store,
		reminders: reminders,
		sink:      sink,
		metrics:   m,
		logger:    logger,
	}
}

// Load reads the persisted collection. Calling it again reloads from the store.
func (s *GoalService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *GoalService) loadLocked(ctx context.Context) error {
	blob, found, err := s.store.Load(ctx)
	if err != nil {
		return apperrors.Storage(err, "load goals")
	}
	s.goals = nil
	if found && len(blob) > 0 {
		snap := snapshot{}
		if err := json.Unmarshal(blob, &snap); err != nil {
			return apperrors.Storage(err, "decode goals")
		}
		s.goals = snap.Goals
	}
	s.loaded = true
	s.dirty = false
	return nil
}

func (s *GoalService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *GoalService) Add(ctx context.Context, goal domain.Goal) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}
	now := s.clock.Now()

	goal = normalize(goal)
	if goal.ID == "" {
		goal.ID = s.idGen.New()
	}
	if goal.StartDate.IsZero() {
		goal.StartDate = now
	}
	goal.LastResetDate = goal.StartDate
	goal.IsActive = true
	goal.IsCompleted = false
	goal.CompletedDate = nil
	goal.Milestones = domain.DefaultMilestones()
	if err := goal.Validate(); err != nil {
		return Outcome{}, apperrors.Validation("add goal: %v", err)
	}
	if s.indexOf(goal.ID) >= 0 {
		return Outcome{}, apperrors.Conflict("goal %q already exists", goal.ID)
	}

	achievements := s.settle(ctx, &goal, now)
	s.goals = append(s.goals, goal)
	if goal.ReminderEnabled && !goal.IsCompleted {
		s.scheduleReminder(ctx, goal)
	}
	return s.commit(ctx, "add", goal, achievements), nil
}

// Update replaces the stored goal with the same id. Milestones and the
// active flag always carry over from the stored goal; ToggleActive owns the
// latter. Start date and reset bookkeeping carry over when the replacement
// leaves them empty, and a completed goal stays completed.
func (s *GoalService) Update(ctx context.Context, goal domain.Goal) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}
	idx := s.indexOf(goal.ID)
	if idx < 0 {
		return Outcome{}, apperrors.NotFound("goal", goal.ID)
	}
	stored := s.goals[idx]
	now := s.clock.Now()

	goal = normalize(goal)
	goal.Milestones = cloneMilestones(stored.Milestones)
	goal.IsActive = stored.IsActive
	if goal.StartDate.IsZero() {
		goal.StartDate = stored.StartDate
	}
	if goal.LastResetDate.IsZero() {
		goal.LastResetDate = stored.LastResetDate
	}
	if stored.IsCompleted {
		goal.IsCompleted = true
		goal.IsActive = false
		goal.CompletedDate = stored.CompletedDate
	}
	if err := goal.Validate(); err != nil {
		return Outcome{}, apperrors.Validation("update goal: %v", err)
	}

	achievements := s.settle(ctx, &goal, now)
	s.goals[idx] = goal
	s.syncReminder(ctx, stored, goal)
	return s.commit(ctx, "update", goal, achievements), nil
}

func (s *GoalService) Delete(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	idx := s.indexOf(goalID)
	if idx < 0 {
		return apperrors.NotFound("goal", goalID)
	}
	removed := s.goals[idx]
	s.goals = append(s.goals[:idx], s.goals[idx+1:]...)
	if removed.ReminderEnabled {
		s.cancelReminder(ctx, removed.ID)
	}
	s.metrics.GoalMutation("delete")
	s.persist(ctx)
	return nil
}

// ToggleActive flips Active and Paused. Completed goals cannot be toggled.
func (s *GoalService) ToggleActive(ctx context.Context, goalID string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}
	idx := s.indexOf(goalID)
	if idx < 0 {
		return Outcome{}, apperrors.NotFound("goal", goalID)
	}
	if s.goals[idx].IsCompleted {
		return Outcome{}, fmt.Errorf("toggle goal %s: %w", goalID, apperrors.ErrGoalCompleted)
	}
	goal := clone(s.goals[idx])
	goal.IsActive = !goal.IsActive
	var achievements []domain.Achievement
	if goal.IsActive {
		achievements = s.settle(ctx, &goal, s.clock.Now())
	}
	s.goals[idx] = goal
	return s.commit(ctx, "toggle", goal, achievements), nil
}

// Complete marks a goal completed explicitly. Completing twice emits nothing new.
func (s *GoalService) Complete(ctx context.Context, goalID string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}
	idx := s.indexOf(goalID)
	if idx < 0 {
		return Outcome{}, apperrors.NotFound("goal", goalID)
	}
	if s.goals[idx].IsCompleted {
		return Outcome{Goal: clone(s.goals[idx])}, nil
	}
	now := s.clock.Now()
	goal := clone(s.goals[idx])
	goal.MarkCompleted(now)
	s.goals[idx] = goal
	if goal.ReminderEnabled {
		s.cancelReminder(ctx, goal.ID)
	}
	s.metrics.GoalCompleted()
	return s.commit(ctx, "complete", goal, []domain.Achievement{domain.CompletionAchievement(goal, now)}), nil
}

// UpdateProgress sets the current value absolutely.
func (s *GoalService) UpdateProgress(ctx context.Context, goalID string, value float64) (Outcome, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Outcome{}, apperrors.Validation("progress value must be a non-negative number, got %v", value)
	}
	return s.mutate(ctx, "progress", goalID, func(g *domain.Goal) {
		g.CurrentValue = value
	})
}

// IncrementProgress adds amount to the current value, flooring at zero.
func (s *GoalService) IncrementProgress(ctx context.Context, goalID string, amount float64) (Outcome, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Outcome{}, apperrors.Validation("increment must be a finite number, got %v", amount)
	}
	return s.mutate(ctx, "increment", goalID, func(g *domain.Goal) {
		g.CurrentValue = math.Max(0, g.CurrentValue+amount)
	})
}

func (s *GoalService) mutate(ctx context.Context, op, goalID string, change func(*domain.Goal)) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return Outcome{}, err
	}
	idx := s.indexOf(goalID)
	if idx < 0 {
		return Outcome{}, apperrors.NotFound("goal", goalID)
	}
	goal := clone(s.goals[idx])
	change(&goal)
	achievements := s.settle(ctx, &goal, s.clock.Now())
	s.goals[idx] = goal
	return s.commit(ctx, op, goal, achievements), nil
}

// RouteEvent applies a logged event to every active goal that tracks it within
// the goal's current window.
func (s *GoalService) RouteEvent(ctx context.Context, event journal.Event) (RouteOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return RouteOutcome{}, err
	}
	now := s.clock.Now()
	out := RouteOutcome{}
	for i := range s.goals {
		if !s.goals[i].Accepting() || !domain.InPeriod(s.goals[i].Frequency, event.Timestamp, now) {
			continue
		}
		goal := clone(s.goals[i])
		if !domain.ApplyEvent(&goal, event) {
			continue
		}
		out.Achievements = append(out.Achievements, s.settle(ctx, &goal, now)...)
		s.goals[i] = goal
		out.Updated = append(out.Updated, clone(goal))
	}
	if len(out.Updated) == 0 {
		return out, nil
	}
	s.logger.DebugContext(ctx, "event routed to goals", "event_id", event.ID, "kind", event.Kind, "goals", len(out.Updated))
	s.metrics.GoalMutation("route")
	s.persist(ctx)
	s.publish(ctx, out.Achievements)
	return out, nil
}

// Reset zeroes active goals of the given frequency whose last reset predates
// the current day or week. Milestones stay reached.
func (s *GoalService) Reset(ctx context.Context, frequency domain.Frequency) (int, error) {
	if frequency != domain.FrequencyDaily && frequency != domain.FrequencyWeekly {
		return 0, apperrors.Validation("only daily and weekly goals reset, got %q", frequency)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	now := s.clock.Now()
	count := 0
	for i := range s.goals {
		g := &s.goals[i]
		if g.State() != domain.StateActive || g.Frequency != frequency || !g.NeedsReset(now) {
			continue
		}
		g.CurrentValue = 0
		g.LastResetDate = now
		if g.Metric == domain.MetricWeight {
			g.BaselineValue = nil
		}
		count++
	}
	if count > 0 {
		s.logger.InfoContext(ctx, "goals reset", "frequency", frequency, "count", count)
		s.metrics.GoalMutation("reset")
		s.persist(ctx)
	}
	return count, nil
}

func (s *GoalService) Goals(ctx context.Context) ([]domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return cloneAll(s.goals), nil
}

func (s *GoalService) Active(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Active(goals), nil
}

func (s *GoalService) Completed(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Completed(goals), nil
}

func (s *GoalService) Get(ctx context.Context, goalID string) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Goal{}, err
	}
	idx := s.indexOf(goalID)
	if idx < 0 {
		return domain.Goal{}, apperrors.NotFound("goal", goalID)
	}
	return clone(s.goals[idx]), nil
}

func (s *GoalService) Statistics(ctx context.Context) (domain.Statistics, error) {
	goals, err := s.Goals(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.ComputeStatistics(goals, s.clock.Now()), nil
}

// Dirty reports whether the last save failed and is still pending.
func (s *GoalService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush retries a pending save and reports its error.
func (s *GoalService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	if err := s.save(ctx); err != nil {
		return apperrors.Storage(err, "save goals")
	}
	s.dirty = false
	return nil
}

func (s *GoalService) Now() time.Time {
	return s.clock.Now()
}

// settle is the only place milestones and automatic completion are evaluated.
func (s *GoalService) settle(ctx context.Context, goal *domain.Goal, now time.Time) []domain.Achievement {
	var out []domain.Achievement
	for _, m := range goal.ReachMilestones(now) {
		out = append(out, domain.MilestoneAchievement(*goal, m, now))
		s.metrics.MilestoneReached()
	}
	if goal.IsActive && goal.ShouldComplete() {
		goal.MarkCompleted(now)
		out = append(out, domain.CompletionAchievement(*goal, now))
		s.metrics.GoalCompleted()
		if goal.ReminderEnabled {
			s.cancelReminder(ctx, goal.ID)
		}
	}
	return out
}

func (s *GoalService) commit(ctx context.Context, op string, goal domain.Goal, achievements []domain.Achievement) Outcome {
	s.metrics.GoalMutation(op)
	s.persist(ctx)
	s.publish(ctx, achievements)
	return Outcome{Goal: clone(goal), Achievements: achievements}
}

// persist saves the full collection. A failure leaves the in-memory state
// authoritative and marks it dirty; the next mutation saves again.
func (s *GoalService) persist(ctx context.Context) {
	if err := s.save(ctx); err != nil {
		s.dirty = true
		s.metrics.PersistFailed("goals")
		s.logger.WarnContext(ctx, "save goals failed, will retry on next change", "error", err)
		return
	}
	s.dirty = false
}

func (s *GoalService) save(ctx context.Context) error {
	blob, err := json.Marshal(snapshot{Version: snapshotVersion, Goals: s.goals})
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	return s.store.Save(ctx, blob)
}

func (s *GoalService) publish(ctx context.Context, achievements []domain.Achievement) {
	if s.sink == nil {
		return
	}
	for _, a := range achievements {
		if err := s.sink.Celebrate(ctx, a); err != nil {
			s.logger.WarnContext(ctx, "publish achievement failed", "goal_id", a.GoalID, "title", a.Title, "error", err)
		}
	}
}

func (s *GoalService) scheduleReminder(ctx context.Context, goal domain.Goal) {
	if s.reminders == nil {
		return
	}
	if err := s.reminders.Schedule(ctx, goal.ID, goal.ReminderTime, goal.Title); err != nil {
		s.metrics.ReminderFailed()
		s.logger.WarnContext(ctx, "schedule reminder failed", "goal_id", goal.ID, "error", err)
	}
}

func (s *GoalService) cancelReminder(ctx context.Context, goalID string) {
	if s.reminders == nil {
		return
	}
	if err := s.reminders.Cancel(ctx, goalID); err != nil {
		s.metrics.ReminderFailed()
		s.logger.WarnContext(ctx, "cancel reminder failed", "goal_id", goalID, "error", err)
	}
}

func (s *GoalService) syncReminder(ctx context.Context, before, after domain.Goal) {
	wanted := after.ReminderEnabled && !after.IsCompleted
	switch {
	case before.ReminderEnabled && !wanted:
		s.cancelReminder(ctx, after.ID)
	case wanted && (!before.ReminderEnabled || before.ReminderTime != after.ReminderTime || before.Title != after.Title):
		s.scheduleReminder(ctx, after)
	}
}

func (s *GoalService) indexOf(goalID string) int {
	for i := range s.goals {
		if s.goals[i].ID == goalID {
			return i
		}
	}
	return -1
}

func normalize(goal domain.Goal) domain.Goal {
	goal.Title = strings.TrimSpace(goal.Title)
	goal.TargetUnit = strings.TrimSpace(goal.TargetUnit)
	goal.ReminderTime = domain.TimeOfDay(strings.TrimSpace(string(goal.ReminderTime)))
	if goal.Metric == "" {
		goal.Metric = domain.MetricManual
	}
	return goal
}

func clone(g domain.Goal) domain.Goal {
	g.Milestones = cloneMilestones(g.Milestones)
	if g.BaselineValue != nil {
		v := *g.BaselineValue
		g.BaselineValue = &v
	}
	return g
}

func cloneMilestones(in []domain.Milestone) []domain.Milestone {
	if in == nil {
		return nil
	}
	out := make([]domain.Milestone, len(in))
	copy(out, in)
	return out
}

func cloneAll(goals []domain.Goal) []domain.Goal {
	out := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		out = append(out, clone(g))
	}
	return out
}
