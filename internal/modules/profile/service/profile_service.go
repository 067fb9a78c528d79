package service

import (
	"context"
	"strings"
	"time"

	"healthtrack/internal/modules/profile/domain"
	profileout "healthtrack/internal/modules/profile/port/out"
	"healthtrack/internal/platform/clock"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/id"
)

type ProfileService struct {
	clock clock.Clock
	idGen id.Generator
	store profileout.ProfileStore
}

func NewProfileService(clock clock.Clock, idGen id.Generator, store profileout.ProfileStore) *ProfileService {
	return &ProfileService{clock: clock, idGen: idGen, store: store}
}

func (s *ProfileService) Current(ctx context.Context) (domain.Profile, bool, error) {
	return s.store.Load(ctx)
}

// Save replaces the stored profile, keeping its id when one exists.
func (s *ProfileService) Save(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	existing, found, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if found {
		profile.ID = existing.ID
	} else {
		profile.ID = s.idGen.New()
	}
	if strings.TrimSpace(profile.WeightUnit) == "" {
		profile.WeightUnit = "lbs"
	}
	if profile.ActivityLevel == "" {
		profile.ActivityLevel = domain.ActivityModerate
	}
	profile.UpdatedAt = s.clock.Now()
	if err := profile.Validate(); err != nil {
		return domain.Profile{}, apperrors.Validation("%v", err)
	}
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) Now() time.Time {
	return s.clock.Now()
}
