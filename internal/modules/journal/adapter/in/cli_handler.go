package in

import (
	"context"

	"healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Log(ctx context.Context, input dto.LogInput) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, input)
}

func (h CLIHandler) Food(ctx context.Context, food dto.FoodInput) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "food", Food: &food})
}

func (h CLIHandler) Exercise(ctx context.Context, exercise dto.ExerciseInput) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "exercise", Exercise: &exercise})
}

func (h CLIHandler) Water(ctx context.Context, amount float64, unit string) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "water", Water: &dto.WaterInput{Amount: amount, Unit: unit}})
}

func (h CLIHandler) Weight(ctx context.Context, weight float64, unit string) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "weight", Weight: &dto.WeightInput{Weight: weight, Unit: unit}})
}

func (h CLIHandler) Supplement(ctx context.Context, name string, nutrients map[string]float64) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "supplement", Supplement: &dto.SupplementInput{Name: name, Nutrients: nutrients}})
}

func (h CLIHandler) Steps(ctx context.Context, count float64) (dto.LogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Kind: "steps", Steps: &dto.StepsInput{Count: count}})
}

func (h CLIHandler) Events(ctx context.Context, day string) (dto.EventsOutput, error) {
	return h.usecase.Events(ctx, dto.EventsQuery{Day: day})
}
