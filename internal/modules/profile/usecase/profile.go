package usecase

import (
	"context"
	"time"

	"healthtrack/internal/modules/profile/domain"
	"healthtrack/internal/modules/profile/dto"
	profilein "healthtrack/internal/modules/profile/port/in"
	"healthtrack/internal/modules/profile/service"
	apperrors "healthtrack/internal/platform/errors"
)

const dateLayout = "2006-01-02"

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.ProfileOutput, error) {
	profile, found, err := i.svc.Current(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	if !found {
		return dto.ProfileOutput{}, nil
	}
	return toOutput(profile, i.svc.Now()), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveProfileInput) (dto.ProfileOutput, error) {
	birth, err := time.Parse(dateLayout, input.BirthDate)
	if err != nil {
		return dto.ProfileOutput{}, apperrors.Validation("birth date must be YYYY-MM-DD: %v", err)
	}
	saved, err := i.svc.Save(ctx, domain.Profile{
		Name:                input.Name,
		BirthDate:           birth,
		Sex:                 domain.Sex(input.Sex),
		ActivityLevel:       domain.ActivityLevel(input.ActivityLevel),
		StartingWeight:      input.StartingWeight,
		TargetWeight:        input.TargetWeight,
		WeightUnit:          input.WeightUnit,
		DietaryRestrictions: input.DietaryRestrictions,
		HealthConditions:    input.HealthConditions,
		Pregnant:            input.Pregnant,
		Trimester:           input.Trimester,
		Breastfeeding:       input.Breastfeeding,
	})
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(saved, i.svc.Now()), nil
}

func toOutput(p domain.Profile, now time.Time) dto.ProfileOutput {
	demo := p.Demographic(now)
	return dto.ProfileOutput{
		Found:               true,
		ID:                  p.ID,
		Name:                p.Name,
		BirthDate:           p.BirthDate.Format(dateLayout),
		Age:                 demo.Age,
		AgeGroup:            string(demo.AgeGroup),
		Sex:                 string(p.Sex),
		LifeStage:           string(demo.LifeStage),
		Trimester:           p.Trimester,
		ActivityLevel:       string(p.ActivityLevel),
		StartingWeight:      p.StartingWeight,
		TargetWeight:        p.TargetWeight,
		WeightUnit:          p.WeightUnit,
		DietaryRestrictions: p.DietaryRestrictions,
		HealthConditions:    p.HealthConditions,
	}
}
