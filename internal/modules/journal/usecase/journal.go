package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	goalsdto "healthtrack/internal/modules/goals/dto"
	goalsin "healthtrack/internal/modules/goals/port/in"
	"healthtrack/internal/modules/journal/domain"
	"healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
	"healthtrack/internal/modules/journal/service"
	apperrors "healthtrack/internal/platform/errors"
)

const dayLayout = "2006-01-02"

type Interactor struct {
	svc    *service.JournalService
	router goalsin.EventRouter
	logger *slog.Logger
}

// NewInteractor wires logging to goal routing. router may be nil.
func NewInteractor(svc *service.JournalService, router goalsin.EventRouter, logger *slog.Logger) journalin.Usecase {
	return &Interactor{svc: svc, router: router, logger: logger}
}

// Log stores the event first and then routes it; a routing failure never
// removes a stored event.
func (i *Interactor) Log(ctx context.Context, input dto.LogInput) (dto.LogOutput, error) {
	event, err := i.svc.Record(ctx, toEvent(input))
	if err != nil {
		return dto.LogOutput{}, err
	}
	out := dto.LogOutput{EventID: event.ID, Kind: string(event.Kind), Timestamp: event.Timestamp}
	if i.router == nil {
		return out, nil
	}
	routed, err := i.router.RouteEvent(ctx, goalsdto.RouteEventInput{Event: event})
	if err != nil {
		i.logger.WarnContext(ctx, "route event to goals failed", "event_id", event.ID, "error", err)
		out.RoutingError = err.Error()
		return out, nil
	}
	out.UpdatedGoals = routed.Updated
	out.Achievements = routed.Achievements
	return out, nil
}

func (i *Interactor) Events(ctx context.Context, query dto.EventsQuery) (dto.EventsOutput, error) {
	day := i.svc.Now()
	if raw := strings.TrimSpace(query.Day); raw != "" {
		parsed, err := time.ParseInLocation(dayLayout, raw, day.Location())
		if err != nil {
			return dto.EventsOutput{}, apperrors.Validation("day must be YYYY-MM-DD: %v", err)
		}
		day = parsed
	}
	events, err := i.svc.Day(ctx, day)
	if err != nil {
		return dto.EventsOutput{}, err
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return dto.EventsOutput{From: from, To: from.AddDate(0, 0, 1), Events: events}, nil
}

func (i *Interactor) LatestWeight(ctx context.Context) (dto.WeightOutput, error) {
	event, found, err := i.svc.Latest(ctx, domain.KindWeight)
	if err != nil {
		return dto.WeightOutput{}, apperrors.Storage(err, "latest weight")
	}
	if !found || event.Weight == nil {
		return dto.WeightOutput{}, nil
	}
	return dto.WeightOutput{Found: true, Weight: event.Weight.Weight, Unit: event.Weight.Unit, At: event.Timestamp}, nil
}

func toEvent(in dto.LogInput) domain.Event {
	event := domain.Event{ID: strings.TrimSpace(in.ID), Kind: domain.Kind(in.Kind), Timestamp: in.Timestamp}
	if in.Food != nil {
		event.Food = &domain.FoodEntry{
			Name:      in.Food.Name,
			Calories:  in.Food.Calories,
			Protein:   in.Food.Protein,
			Carbs:     in.Food.Carbs,
			Fat:       in.Food.Fat,
			Nutrients: in.Food.Nutrients,
		}
	}
	if in.Exercise != nil {
		event.Exercise = &domain.ExerciseEntry{
			Name:            in.Exercise.Name,
			DurationMinutes: in.Exercise.DurationMinutes,
			CaloriesBurned:  in.Exercise.CaloriesBurned,
		}
	}
	if in.Water != nil {
		event.Water = &domain.WaterEntry{Amount: in.Water.Amount, Unit: in.Water.Unit}
	}
	if in.Weight != nil {
		event.Weight = &domain.WeightEntry{Weight: in.Weight.Weight, Unit: in.Weight.Unit}
	}
	if in.Supplement != nil {
		event.Supplement = &domain.SupplementEntry{Name: in.Supplement.Name, Nutrients: in.Supplement.Nutrients}
	}
	if in.Steps != nil {
		event.Steps = &domain.StepsEntry{Count: in.Steps.Count}
	}
	return event
}
