package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func (s Sex) Validate() error {
	switch s {
	case SexMale, SexFemale, SexOther:
		return nil
	default:
		return fmt.Errorf("invalid sex: %s", s)
	}
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Validate() error {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return nil
	default:
		return fmt.Errorf("invalid activity level: %s", a)
	}
}

type AgeGroup string

const (
	AgeGroupChild  AgeGroup = "child"
	AgeGroup19To30 AgeGroup = "adult_19_30"
	AgeGroup31To50 AgeGroup = "adult_31_50"
	AgeGroup51To70 AgeGroup = "adult_51_70"
	AgeGroup71Plus AgeGroup = "adult_71_plus"
)

func AgeGroupFor(age int) AgeGroup {
	switch {
	case age < 19:
		return AgeGroupChild
	case age <= 30:
		return AgeGroup19To30
	case age <= 50:
		return AgeGroup31To50
	case age <= 70:
		return AgeGroup51To70
	default:
		return AgeGroup71Plus
	}
}

type LifeStage string

const (
	LifeStageStandard      LifeStage = "standard"
	LifeStagePregnant      LifeStage = "pregnant"
	LifeStageBreastfeeding LifeStage = "breastfeeding"
)

// Demographic is the slice of a profile that reference intakes depend on.
type Demographic struct {
	Age       int
	AgeGroup  AgeGroup
	Sex       Sex
	LifeStage LifeStage
	Trimester int
}

type Profile struct {
	ID                  string        `yaml:"id" validate:"required"`
	Name                string        `yaml:"name"`
	BirthDate           time.Time     `yaml:"birth_date" validate:"required"`
	Sex                 Sex           `yaml:"sex"`
	ActivityLevel       ActivityLevel `yaml:"activity_level"`
	StartingWeight      float64       `yaml:"starting_weight,omitempty" validate:"gte=0"`
	TargetWeight        float64       `yaml:"target_weight,omitempty" validate:"gte=0"`
	WeightUnit          string        `yaml:"weight_unit" validate:"oneof=lbs kg"`
	DietaryRestrictions []string      `yaml:"dietary_restrictions,omitempty"`
	HealthConditions    []string      `yaml:"health_conditions,omitempty"`
	Pregnant            bool          `yaml:"pregnant,omitempty"`
	Trimester           int           `yaml:"trimester,omitempty" validate:"gte=0,lte=3"`
	Breastfeeding       bool          `yaml:"breastfeeding,omitempty"`
	UpdatedAt           time.Time     `yaml:"updated_at"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (p Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := p.Sex.Validate(); err != nil {
		return err
	}
	if err := p.ActivityLevel.Validate(); err != nil {
		return err
	}
	if p.Trimester > 0 && !p.Pregnant {
		return fmt.Errorf("trimester set without pregnancy")
	}
	return nil
}

// Age is the number of whole years between BirthDate and now.
func (p Profile) Age(now time.Time) int {
	if p.BirthDate.IsZero() {
		return 0
	}
	years := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() || (now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// LifeStage treats pregnancy without a known trimester as standard.
func (p Profile) LifeStage() LifeStage {
	switch {
	case p.Pregnant && p.Trimester > 0:
		return LifeStagePregnant
	case p.Breastfeeding:
		return LifeStageBreastfeeding
	default:
		return LifeStageStandard
	}
}

func (p Profile) Demographic(now time.Time) Demographic {
	age := p.Age(now)
	return Demographic{
		Age:       age,
		AgeGroup:  AgeGroupFor(age),
		Sex:       p.Sex,
		LifeStage: p.LifeStage(),
		Trimester: p.Trimester,
	}
}
