package domain

import (
	"sort"

	profile "healthtrack/internal/modules/profile/domain"
)

type Unit string

const (
	UnitMg  Unit = "mg"
	UnitMcg Unit = "mcg"
	UnitG   Unit = "g"
)

// RDA is a reference intake. UpperLimit is zero when no tolerable upper
// intake level is established.
type RDA struct {
	Amount     float64
	Unit       Unit
	UpperLimit float64
}

func (r RDA) HasUpperLimit() bool {
	return r.UpperLimit > 0
}

// byAge holds values for the 19-30, 31-50, 51-70 and 71+ groups.
type byAge [4]float64

func flat(v float64) byAge { return byAge{v, v, v, v} }

type reference struct {
	name          string
	unit          Unit
	male, female  byAge
	ul            byAge
	pregnancy     float64
	pregnancyLate float64 // trimesters 2 and 3, when it differs
	pregnancyUL   float64
	lactation     float64
	lactationUL   float64
}

// ul values are shared by sex; pregnancy and lactation limits default to the
// 19-30 limit unless set.
var references = map[string]reference{
	"vitamin_a":   {name: "Vitamin A", unit: UnitMcg, male: flat(900), female: flat(700), ul: flat(3000), pregnancy: 770, lactation: 1300},
	"vitamin_c":   {name: "Vitamin C", unit: UnitMg, male: flat(90), female: flat(75), ul: flat(2000), pregnancy: 85, lactation: 120},
	"vitamin_d":   {name: "Vitamin D", unit: UnitMcg, male: byAge{15, 15, 15, 20}, female: byAge{15, 15, 15, 20}, ul: flat(100), pregnancy: 15, lactation: 15},
	"vitamin_e":   {name: "Vitamin E", unit: UnitMg, male: flat(15), female: flat(15), ul: flat(1000), pregnancy: 15, lactation: 19},
	"vitamin_k":   {name: "Vitamin K", unit: UnitMcg, male: flat(120), female: flat(90), pregnancy: 90, lactation: 90},
	"thiamin":     {name: "Thiamin (B1)", unit: UnitMg, male: flat(1.2), female: flat(1.1), pregnancy: 1.4, lactation: 1.4},
	"riboflavin":  {name: "Riboflavin (B2)", unit: UnitMg, male: flat(1.3), female: flat(1.1), pregnancy: 1.4, lactation: 1.6},
	"niacin":      {name: "Niacin (B3)", unit: UnitMg, male: flat(16), female: flat(14), ul: flat(35), pregnancy: 18, lactation: 17},
	"vitamin_b6":  {name: "Vitamin B6", unit: UnitMg, male: byAge{1.3, 1.3, 1.7, 1.7}, female: byAge{1.3, 1.3, 1.5, 1.5}, ul: flat(100), pregnancy: 1.9, lactation: 2.0},
	"folate":      {name: "Folate", unit: UnitMcg, male: flat(400), female: flat(400), ul: flat(1000), pregnancy: 600, lactation: 500},
	"vitamin_b12": {name: "Vitamin B12", unit: UnitMcg, male: flat(2.4), female: flat(2.4), pregnancy: 2.6, lactation: 2.8},
	"calcium":     {name: "Calcium", unit: UnitMg, male: byAge{1000, 1000, 1000, 1200}, female: byAge{1000, 1000, 1200, 1200}, ul: byAge{2500, 2500, 2000, 2000}, pregnancy: 1000, lactation: 1000},
	"iron":        {name: "Iron", unit: UnitMg, male: flat(8), female: byAge{18, 18, 8, 8}, ul: flat(45), pregnancy: 27, lactation: 9},
	"magnesium":   {name: "Magnesium", unit: UnitMg, male: byAge{400, 420, 420, 420}, female: byAge{310, 320, 320, 320}, ul: flat(350), pregnancy: 350, pregnancyLate: 360, lactation: 310},
	"zinc":        {name: "Zinc", unit: UnitMg, male: flat(11), female: flat(8), ul: flat(40), pregnancy: 11, lactation: 12},
	"potassium":   {name: "Potassium", unit: UnitMg, male: flat(3400), female: flat(2600), pregnancy: 2900, lactation: 2800},
	"selenium":    {name: "Selenium", unit: UnitMcg, male: flat(55), female: flat(55), ul: flat(400), pregnancy: 60, lactation: 70},
	"copper":      {name: "Copper", unit: UnitMcg, male: flat(900), female: flat(900), ul: flat(10000), pregnancy: 1000, lactation: 1300},
	"manganese":   {name: "Manganese", unit: UnitMg, male: flat(2.3), female: flat(1.8), ul: flat(11), pregnancy: 2.0, lactation: 2.6},
	"phosphorus":  {name: "Phosphorus", unit: UnitMg, male: flat(700), female: flat(700), ul: byAge{4000, 4000, 4000, 3000}, pregnancy: 700, pregnancyUL: 3500, lactation: 700},
	"iodine":      {name: "Iodine", unit: UnitMcg, male: flat(150), female: flat(150), ul: flat(1100), pregnancy: 220, lactation: 290},
	"chromium":    {name: "Chromium", unit: UnitMcg, male: byAge{35, 35, 30, 30}, female: byAge{25, 25, 20, 20}, pregnancy: 30, lactation: 45},
	"omega_3":     {name: "Omega-3 (EPA+DHA)", unit: UnitMg, male: flat(1600), female: flat(1100), pregnancy: 1400, lactation: 1300},
	"choline":     {name: "Choline", unit: UnitMg, male: flat(550), female: flat(425), ul: flat(3500), pregnancy: 450, lactation: 550},
}

func ageIndex(g profile.AgeGroup) (int, bool) {
	switch g {
	case profile.AgeGroup19To30:
		return 0, true
	case profile.AgeGroup31To50:
		return 1, true
	case profile.AgeGroup51To70:
		return 2, true
	case profile.AgeGroup71Plus:
		return 3, true
	default:
		return 0, false
	}
}

// LookupRDA returns the reference intake for a nutrient and demographic.
// Alias ids are accepted. Children have no reference values here.
func LookupRDA(nutrientID string, demo profile.Demographic) (RDA, bool) {
	ref, ok := references[Canonical(nutrientID)]
	if !ok {
		return RDA{}, false
	}
	switch demo.LifeStage {
	case profile.LifeStagePregnant:
		ul := ref.pregnancyUL
		if ul == 0 {
			ul = ref.ul[0]
		}
		amount := ref.pregnancy
		if demo.Trimester >= 2 && ref.pregnancyLate > 0 {
			amount = ref.pregnancyLate
		}
		return RDA{Amount: amount, Unit: ref.unit, UpperLimit: ul}, true
	case profile.LifeStageBreastfeeding:
		ul := ref.lactationUL
		if ul == 0 {
			ul = ref.ul[0]
		}
		return RDA{Amount: ref.lactation, Unit: ref.unit, UpperLimit: ul}, true
	}
	idx, ok := ageIndex(demo.AgeGroup)
	if !ok {
		return RDA{}, false
	}
	values := ref.female
	if demo.Sex == profile.SexMale {
		values = ref.male
	}
	return RDA{Amount: values[idx], Unit: ref.unit, UpperLimit: ref.ul[idx]}, true
}

// DisplayName returns the human name for a nutrient id, or the id itself.
func DisplayName(nutrientID string) string {
	if ref, ok := references[Canonical(nutrientID)]; ok {
		return ref.name
	}
	return nutrientID
}

// UnitOf returns the reference unit for a nutrient id.
func UnitOf(nutrientID string) (Unit, bool) {
	ref, ok := references[Canonical(nutrientID)]
	return ref.unit, ok
}

// ReferenceIDs lists every nutrient with reference values, sorted.
func ReferenceIDs() []string {
	ids := make([]string, 0, len(references))
	for id := range references {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
