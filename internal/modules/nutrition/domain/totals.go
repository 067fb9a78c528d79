package domain

import (
	"sort"

	journal "healthtrack/internal/modules/journal/domain"
	profile "healthtrack/internal/modules/profile/domain"
)

var aliases = map[string]string{
	"vitamin_b1": "thiamin",
	"vitamin_b2": "riboflavin",
	"vitamin_b3": "niacin",
	"vitamin_b5": "pantothenic_acid",
	"vitamin_b9": "folate",
	"omega3":     "omega_3",
}

// Canonical maps alias nutrient ids onto the id used by the reference table.
func Canonical(id string) string {
	if c, ok := aliases[id]; ok {
		return c
	}
	return id
}

// Totals is the sum of everything eaten or supplemented in a window.
type Totals struct {
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Nutrients map[string]float64
}

func (t *Totals) addNutrients(in map[string]float64) {
	for id, amount := range in {
		if t.Nutrients == nil {
			t.Nutrients = map[string]float64{}
		}
		t.Nutrients[Canonical(id)] += amount
	}
}

// Aggregate sums food and supplement events. Other kinds are ignored and the
// result does not depend on event order.
func Aggregate(events []journal.Event) Totals {
	totals := Totals{Nutrients: map[string]float64{}}
	for _, e := range events {
		switch {
		case e.Kind == journal.KindFood && e.Food != nil:
			totals.Calories += e.Food.Calories
			totals.Protein += e.Food.Protein
			totals.Carbs += e.Food.Carbs
			totals.Fat += e.Food.Fat
			totals.addNutrients(e.Food.Nutrients)
		case e.Kind == journal.KindSupplement && e.Supplement != nil:
			totals.addNutrients(e.Supplement.Nutrients)
		}
	}
	return totals
}

type Percentage struct {
	ID         string
	Name       string
	Amount     float64
	RDA        RDA
	Percentage float64
}

// Percentages compares totals with the demographic's reference intakes.
// Nutrients without a reference value, or with a zero one, are left out.
func Percentages(totals Totals, demo profile.Demographic) []Percentage {
	out := make([]Percentage, 0, len(totals.Nutrients))
	for id, amount := range totals.Nutrients {
		rda, ok := LookupRDA(id, demo)
		if !ok || rda.Amount <= 0 {
			continue
		}
		out = append(out, Percentage{
			ID:         id,
			Name:       DisplayName(id),
			Amount:     amount,
			RDA:        rda,
			Percentage: amount / rda.Amount * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MacroTargets are the configured daily macro goals; a zero target is not shown.
type MacroTargets struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
