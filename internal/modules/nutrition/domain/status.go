package domain

import profile "healthtrack/internal/modules/profile/domain"

type Status string

const (
	StatusDeficientSevere    Status = "deficient_severe"
	StatusDeficientModerate  Status = "deficient_moderate"
	StatusDeficientMild      Status = "deficient_mild"
	StatusAdequate           Status = "adequate"
	StatusSlightlyHigh       Status = "slightly_high"
	StatusConcerning         Status = "concerning"
	StatusDangerous          Status = "dangerous"
	StatusPotentiallyHarmful Status = "potentially_harmful"
)

func (s Status) Deficient() bool {
	return s == StatusDeficientSevere || s == StatusDeficientModerate || s == StatusDeficientMild
}

func (s Status) Excessive() bool {
	return s == StatusSlightlyHigh || s == StatusConcerning || s == StatusDangerous
}

// Classify grades an intake. Reaching the upper limit wins over the percentage bands.
func Classify(percentage, intake float64, rda RDA) Status {
	if rda.HasUpperLimit() && intake >= rda.UpperLimit {
		return StatusPotentiallyHarmful
	}
	switch {
	case percentage < 25:
		return StatusDeficientSevere
	case percentage < 50:
		return StatusDeficientModerate
	case percentage < 75:
		return StatusDeficientMild
	case percentage < 125:
		return StatusAdequate
	case percentage < 150:
		return StatusSlightlyHigh
	case percentage < 200:
		if rda.HasUpperLimit() && intake > rda.UpperLimit*0.8 {
			return StatusDangerous
		}
		return StatusConcerning
	default:
		return StatusDangerous
	}
}

// Recommendation returns advice for a classified nutrient, or "" when none applies.
func Recommendation(nutrientID string, status Status, demo profile.Demographic) string {
	id := Canonical(nutrientID)
	female := demo.Sex == profile.SexFemale
	switch {
	case id == "iron" && demo.Sex == profile.SexMale && (status == StatusConcerning || status == StatusDangerous):
		return "High iron intake may be unnecessary for males and could cause oxidative stress. Consider reducing iron-rich supplements."
	case id == "iron" && status.Deficient() && female && demo.Age < 51:
		return "Pre-menopausal women have higher iron needs. Consider iron-rich foods like red meat, spinach, or fortified cereals."
	case id == "calcium" && status.Deficient() && female && demo.Age >= 51:
		return "Post-menopausal women need extra calcium (1200mg) for bone health. Consider dairy products or calcium supplements."
	case id == "folate" && status.Deficient() && female && demo.Age >= 19 && demo.Age <= 45:
		return "Women of childbearing age need adequate folate. Consider leafy greens or a folic acid supplement."
	case id == "vitamin_d" && status.Deficient() && demo.Age >= 71:
		return "Older adults need more vitamin D (800 IU). Consider supplements as skin synthesis decreases with age."
	}
	switch status {
	case StatusDeficientSevere:
		return "Severely low intake. Consult with a healthcare provider about supplementation."
	case StatusDeficientModerate:
		return "Moderately low intake. Increase food sources or consider a supplement."
	case StatusDeficientMild:
		return "Slightly below recommended levels. Try to include more food sources."
	case StatusDangerous:
		return "Dangerously high intake. Reduce supplementation immediately and consult a healthcare provider."
	case StatusConcerning:
		return "Intake is quite high. Consider reducing supplements to avoid potential adverse effects."
	case StatusPotentiallyHarmful:
		return "Exceeds safe upper limit. Stop supplementation and consult a healthcare provider immediately."
	default:
		return ""
	}
}
