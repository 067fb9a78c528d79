package in

import (
	"context"

	"healthtrack/internal/modules/profile/dto"
	profilein "healthtrack/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveProfileInput) (dto.ProfileOutput, error) {
	return h.usecase.Save(ctx, input)
}
