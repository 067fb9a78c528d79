package in

import (
	"context"

	"healthtrack/internal/modules/goals/dto"
	goalsin "healthtrack/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.CreateGoalInput) (dto.MutationOutput, error) {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) AddFromTemplate(ctx context.Context, templateID string) (dto.MutationOutput, error) {
	return h.usecase.CreateFromTemplate(ctx, dto.CreateFromTemplateInput{TemplateID: templateID})
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateGoalInput) (dto.MutationOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.MutationOutput, error) {
	return h.usecase.ToggleActive(ctx, id)
}

func (h CLIHandler) Complete(ctx context.Context, id string) (dto.MutationOutput, error) {
	return h.usecase.Complete(ctx, id)
}

func (h CLIHandler) SetProgress(ctx context.Context, id string, value float64) (dto.MutationOutput, error) {
	return h.usecase.UpdateProgress(ctx, dto.ProgressInput{GoalID: id, Value: value})
}

func (h CLIHandler) Increment(ctx context.Context, id string, amount float64) (dto.MutationOutput, error) {
	return h.usecase.IncrementProgress(ctx, dto.ProgressInput{GoalID: id, Value: amount})
}

func (h CLIHandler) List(ctx context.Context, state string) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx, dto.ListFilter{State: state})
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatisticsOutput, error) {
	return h.usecase.Statistics(ctx)
}

func (h CLIHandler) Reset(ctx context.Context, frequency string) (dto.ResetOutput, error) {
	return h.usecase.Reset(ctx, dto.ResetInput{Frequency: frequency})
}

func (h CLIHandler) Templates(ctx context.Context) ([]dto.TemplateOutput, error) {
	return h.usecase.Templates(ctx)
}

func (h CLIHandler) Suggest(ctx context.Context) ([]dto.TemplateOutput, error) {
	return h.usecase.Suggestions(ctx)
}
