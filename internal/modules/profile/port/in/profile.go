package in

import (
	"context"

	"healthtrack/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.ProfileOutput, error)
	Save(ctx context.Context, input dto.SaveProfileInput) (dto.ProfileOutput, error)
}
