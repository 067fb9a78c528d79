package usecase

import (
	"context"
	"sort"
	"strings"

	journaldto "healthtrack/internal/modules/journal/dto"
	journalin "healthtrack/internal/modules/journal/port/in"
	"healthtrack/internal/modules/nutrition/domain"
	"healthtrack/internal/modules/nutrition/dto"
	nutritionin "healthtrack/internal/modules/nutrition/port/in"
	profiledomain "healthtrack/internal/modules/profile/domain"
	profiledto "healthtrack/internal/modules/profile/dto"
	profilein "healthtrack/internal/modules/profile/port/in"
	apperrors "healthtrack/internal/platform/errors"
	"healthtrack/internal/platform/slug"
)

type Interactor struct {
	journal  journalin.Usecase
	profiles profilein.Usecase
	targets  domain.MacroTargets
}

func NewInteractor(journal journalin.Usecase, profiles profilein.Usecase, targets domain.MacroTargets) nutritionin.Usecase {
	return &Interactor{journal: journal, profiles: profiles, targets: targets}
}

func (i *Interactor) Breakdown(ctx context.Context, query dto.BreakdownQuery) (dto.BreakdownOutput, error) {
	day, err := i.journal.Events(ctx, journaldto.EventsQuery{Day: query.Day})
	if err != nil {
		return dto.BreakdownOutput{}, err
	}
	profile, err := i.profiles.Get(ctx)
	if err != nil {
		return dto.BreakdownOutput{}, err
	}
	totals := domain.Aggregate(day.Events)
	out := dto.BreakdownOutput{
		Day:          day.From.Format("2006-01-02"),
		ProfileFound: profile.Found,
		EventCount:   len(day.Events),
		Macros:       i.macroLines(totals),
	}

	referenced := map[string]bool{}
	if profile.Found {
		demo := demographic(profile)
		for _, p := range domain.Percentages(totals, demo) {
			status := domain.Classify(p.Percentage, p.Amount, p.RDA)
			out.Micronutrients = append(out.Micronutrients, dto.NutrientLine{
				ID:             p.ID,
				Name:           p.Name,
				Current:        p.Amount,
				Goal:           p.RDA.Amount,
				Percentage:     p.Percentage,
				Unit:           string(p.RDA.Unit),
				UpperLimit:     p.RDA.UpperLimit,
				Status:         string(status),
				Recommendation: domain.Recommendation(p.ID, status, demo),
			})
			referenced[p.ID] = true
		}
	}
	for id, amount := range totals.Nutrients {
		if referenced[id] {
			continue
		}
		unit, _ := domain.UnitOf(id)
		out.Untracked = append(out.Untracked, dto.NutrientLine{ID: id, Name: domain.DisplayName(id), Current: amount, Unit: string(unit)})
	}
	sort.Slice(out.Untracked, func(a, b int) bool { return out.Untracked[a].ID < out.Untracked[b].ID })
	return out, nil
}

func (i *Interactor) Reference(ctx context.Context, query dto.ReferenceQuery) (dto.ReferenceOutput, error) {
	id := domain.Canonical(slug.Key(strings.TrimSpace(query.NutrientID)))
	if id == "" {
		return dto.ReferenceOutput{}, apperrors.Validation("nutrient id is required")
	}
	profile, err := i.profiles.Get(ctx)
	if err != nil {
		return dto.ReferenceOutput{}, err
	}
	if !profile.Found {
		return dto.ReferenceOutput{}, apperrors.Validation("reference intakes depend on the profile; set one first")
	}
	demo := demographic(profile)
	rda, ok := domain.LookupRDA(id, demo)
	if !ok {
		return dto.ReferenceOutput{}, apperrors.NotFound("reference intake", id)
	}
	return dto.ReferenceOutput{
		ID:         id,
		Name:       domain.DisplayName(id),
		Amount:     rda.Amount,
		Unit:       string(rda.Unit),
		UpperLimit: rda.UpperLimit,
		AgeGroup:   string(demo.AgeGroup),
		Sex:        string(demo.Sex),
		LifeStage:  string(demo.LifeStage),
	}, nil
}

func (i *Interactor) macroLines(t domain.Totals) []dto.NutrientLine {
	candidates := []dto.NutrientLine{
		{ID: "calories", Name: "Calories", Current: t.Calories, Goal: i.targets.Calories, Unit: "kcal"},
		{ID: "protein", Name: "Protein", Current: t.Protein, Goal: i.targets.Protein, Unit: "g"},
		{ID: "carbs", Name: "Carbohydrates", Current: t.Carbs, Goal: i.targets.Carbs, Unit: "g"},
		{ID: "fat", Name: "Fat", Current: t.Fat, Goal: i.targets.Fat, Unit: "g"},
	}
	out := make([]dto.NutrientLine, 0, len(candidates))
	for _, line := range candidates {
		if line.Goal <= 0 {
			continue
		}
		line.Percentage = line.Current / line.Goal * 100
		out = append(out, line)
	}
	return out
}

func demographic(p profiledto.ProfileOutput) profiledomain.Demographic {
	return profiledomain.Demographic{
		Age:       p.Age,
		AgeGroup:  profiledomain.AgeGroup(p.AgeGroup),
		Sex:       profiledomain.Sex(p.Sex),
		LifeStage: profiledomain.LifeStage(p.LifeStage),
		Trimester: p.Trimester,
	}
}
