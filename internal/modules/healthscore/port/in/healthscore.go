package in

import (
	"context"

	"healthtrack/internal/modules/healthscore/dto"
)

type Usecase interface {
	Score(ctx context.Context, query dto.ScoreQuery) (dto.ScoreOutput, error)
}
