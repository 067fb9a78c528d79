package domain

import "strings"

const MillilitersPerOunce = 29.5735

// ConvertVolume converts between ml, l and oz. Unknown target units are treated
// as ounces, which is how hydration goals have historically been denominated.
func ConvertVolume(amount float64, from, to string) float64 {
	ml := amount
	switch strings.ToLower(from) {
	case "oz":
		ml = amount * MillilitersPerOunce
	case "l":
		ml = amount * 1000
	}
	switch strings.ToLower(to) {
	case "ml":
		return ml
	case "l":
		return ml / 1000
	default:
		return ml / MillilitersPerOunce
	}
}

const PoundsPerKilogram = 2.20462

func ConvertWeight(amount float64, from, to string) float64 {
	from, to = strings.ToLower(from), strings.ToLower(to)
	switch {
	case from == to:
		return amount
	case from == "kg" && to == "lbs":
		return amount * PoundsPerKilogram
	case from == "lbs" && to == "kg":
		return amount / PoundsPerKilogram
	default:
		return amount
	}
}
