package in

import (
	"context"

	"healthtrack/internal/modules/nutrition/dto"
	nutritionin "healthtrack/internal/modules/nutrition/port/in"
)

type CLIHandler struct {
	usecase nutritionin.Usecase
}

func NewCLIHandler(usecase nutritionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Breakdown(ctx context.Context, day string) (dto.BreakdownOutput, error) {
	return h.usecase.Breakdown(ctx, dto.BreakdownQuery{Day: day})
}

func (h CLIHandler) Reference(ctx context.Context, nutrientID string) (dto.ReferenceOutput, error) {
	return h.usecase.Reference(ctx, dto.ReferenceQuery{NutrientID: nutrientID})
}
