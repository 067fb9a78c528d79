package in

import (
	"context"

	"healthtrack/internal/modules/nutrition/dto"
)

type Usecase interface {
	Breakdown(ctx context.Context, query dto.BreakdownQuery) (dto.BreakdownOutput, error)
	Reference(ctx context.Context, query dto.ReferenceQuery) (dto.ReferenceOutput, error)
}
