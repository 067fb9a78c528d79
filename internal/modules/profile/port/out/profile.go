package out

import (
	"context"

	"healthtrack/internal/modules/profile/domain"
)

type ProfileStore interface {
	// Load reports found=false when no profile has been saved yet.
	Load(ctx context.Context) (domain.Profile, bool, error)
	Save(ctx context.Context, profile domain.Profile) error
}
