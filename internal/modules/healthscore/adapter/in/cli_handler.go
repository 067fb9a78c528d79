package in

import (
	"context"

	"healthtrack/internal/modules/healthscore/dto"
	healthscorein "healthtrack/internal/modules/healthscore/port/in"
)

type CLIHandler struct {
	usecase healthscorein.Usecase
}

func NewCLIHandler(usecase healthscorein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Score(ctx context.Context, day string) (dto.ScoreOutput, error) {
	return h.usecase.Score(ctx, dto.ScoreQuery{Day: day})
}
