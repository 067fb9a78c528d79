package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"healthtrack/internal/modules/journal/domain"
	journalout "healthtrack/internal/modules/journal/port/out"
	"healthtrack/internal/platform/clock"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/id"
	"healthtrack/internal/platform/metrics"
	"healthtrack/internal/platform/slug"
)

type JournalService struct {
	clock   clock.Clock
	idGen   id.Generator
	store   journalout.EventStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewJournalService(clock clock.Clock, idGen id.Generator, store journalout.EventStore, m *metrics.Metrics, logger *slog.Logger) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, store: store, metrics: m, logger: logger}
}

// Record normalizes, validates and appends one event.
func (s *JournalService) Record(ctx context.Context, event domain.Event) (domain.Event, error) {
	event = s.normalize(event)
	if err := event.Validate(); err != nil {
		s.metrics.EventRejected()
		return domain.Event{}, apperrors.Validation("%v", err)
	}
	if err := s.store.Append(ctx, event); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.metrics.EventRejected()
			return domain.Event{}, err
		}
		return domain.Event{}, apperrors.Storage(err, "append event")
	}
	s.metrics.EventIngested(string(event.Kind))
	s.logger.DebugContext(ctx, "event recorded", "event_id", event.ID, "kind", event.Kind)
	return event, nil
}

func (s *JournalService) Day(ctx context.Context, day time.Time) ([]domain.Event, error) {
	if day.IsZero() {
		day = s.clock.Now()
	}
	from := clock.StartOfDay(day)
	events, err := s.store.ListBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *JournalService) Latest(ctx context.Context, kind domain.Kind) (domain.Event, bool, error) {
	return s.store.Latest(ctx, kind)
}

func (s *JournalService) Now() time.Time {
	return s.clock.Now()
}

func (s *JournalService) normalize(event domain.Event) domain.Event {
	event.Kind = domain.Kind(strings.ToLower(strings.TrimSpace(string(event.Kind))))
	if event.ID == "" {
		event.ID = s.idGen.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock.Now()
	}
	if event.Food != nil {
		event.Food.Name = strings.TrimSpace(event.Food.Name)
		event.Food.Nutrients = normalizeNutrients(event.Food.Nutrients)
	}
	if event.Supplement != nil {
		event.Supplement.Name = strings.TrimSpace(event.Supplement.Name)
		event.Supplement.Nutrients = normalizeNutrients(event.Supplement.Nutrients)
	}
	if event.Water != nil {
		event.Water.Unit = normalizeUnit(event.Water.Unit, "ml")
	}
	if event.Weight != nil {
		event.Weight.Unit = normalizeUnit(event.Weight.Unit, "lbs")
	}
	return event
}

func normalizeUnit(unit, fallback string) string {
	unit = strings.ToLower(strings.TrimSpace(unit))
	switch unit {
	case "":
		return fallback
	case "lb", "pound", "pounds":
		return "lbs"
	case "kgs", "kilogram", "kilograms":
		return "kg"
	case "milliliter", "milliliters", "millilitres":
		return "ml"
	case "ounce", "ounces", "fl oz":
		return "oz"
	case "liter", "liters", "litre", "litres":
		return "l"
	default:
		return unit
	}
}

// normalizeNutrients folds keys like "Vitamin D" into "vitamin_d", summing collisions.
func normalizeNutrients(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for key, amount := range in {
		out[slug.Key(key)] += amount
	}
	return out
}
