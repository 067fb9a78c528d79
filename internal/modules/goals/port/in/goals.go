package in

import (
	"context"

	"healthtrack/internal/modules/goals/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateGoalInput) (dto.MutationOutput, error)
	CreateFromTemplate(ctx context.Context, input dto.CreateFromTemplateInput) (dto.MutationOutput, error)
	Update(ctx context.Context, input dto.UpdateGoalInput) (dto.MutationOutput, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (dto.MutationOutput, error)
	Complete(ctx context.Context, id string) (dto.MutationOutput, error)
	UpdateProgress(ctx context.Context, input dto.ProgressInput) (dto.MutationOutput, error)
	IncrementProgress(ctx context.Context, input dto.ProgressInput) (dto.MutationOutput, error)
	List(ctx context.Context, filter dto.ListFilter) ([]dto.GoalOutput, error)
	Get(ctx context.Context, id string) (dto.GoalOutput, error)
	Statistics(ctx context.Context) (dto.StatisticsOutput, error)
	Reset(ctx context.Context, input dto.ResetInput) (dto.ResetOutput, error)
	Templates(ctx context.Context) ([]dto.TemplateOutput, error)
	Suggestions(ctx context.Context) ([]dto.TemplateOutput, error)
	EventRouter
}

// EventRouter is the narrow surface the journal uses to feed logged events.
type EventRouter interface {
	RouteEvent(ctx context.Context, input dto.RouteEventInput) (dto.RouteEventOutput, error)
}
