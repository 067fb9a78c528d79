package in

import (
	"context"

	"healthtrack/internal/modules/journal/dto"
)

type Usecase interface {
	Log(ctx context.Context, input dto.LogInput) (dto.LogOutput, error)
	Events(ctx context.Context, query dto.EventsQuery) (dto.EventsOutput, error)
	LatestWeight(ctx context.Context) (dto.WeightOutput, error)
}
