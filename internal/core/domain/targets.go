package domain

import "time"

const (
	// DefaultWeightKg is used when a client has no weight history yet.
	DefaultWeightKg = 70.0

	kgToLb          = 2.2
	kcalPerGramProt = 4.0
	kcalPerGramCarb = 4.0
	kcalPerGramFat  = 9.0
	waterMlPerKg    = 30.0
	daysPerYear     = 365
)

// macroRatios holds grams per lb of body weight for each macro.
type macroRatios struct {
	protein float64
	carb    float64
	fat     float64
}

var (
	weightLossRatios = macroRatios{protein: 1.2, carb: 1.0, fat: 0.8}
	weightGainRatios = macroRatios{protein: 1.6, carb: 1.5, fat: 0.9}
	defaultRatios    = macroRatios{protein: 1.5, carb: 1.2, fat: 1.0}
)

func ratiosFor(goal Goal) macroRatios {
	switch goal {
	case GoalWeightLoss:
		return weightLossRatios
	case GoalWeightGain:
		return weightGainRatios
	default: // Muscle Building, Weight Maintenance, unset
		return defaultRatios
	}
}

// Targets are the daily intake goals derived for a client.
type Targets struct {
	Protein float64 `json:"protein_target"` // g
	Carb    float64 `json:"carb_target"`    // g
	Fat     float64 `json:"fat_target"`     // g
	Energy  float64 `json:"energy_target"`  // kcal
	Water   float64 `json:"water_target"`   // mL
}

// CalculateTargets derives macro, energy and water targets from a weight in
// kg. An unset (zero) multiplier is treated as 1; any other value, negative
// included, scales the macros as given.
func CalculateTargets(weightKg float64, goal Goal, multiplier float64) Targets {
	if multiplier == 0 {
		multiplier = 1
	}
	r := ratiosFor(goal)

	protein := weightKg * kgToLb * r.protein * multiplier
	carb := weightKg * kgToLb * r.carb * multiplier
	fat := weightKg * kgToLb * r.fat * multiplier

	return Targets{
		Protein: protein,
		Carb:    carb,
		Fat:     fat,
		Energy:  protein*kcalPerGramProt + carb*kcalPerGramCarb + fat*kcalPerGramFat,
		Water:   weightKg * waterMlPerKg,
	}
}

// AgeAt returns whole years between dob and now, counting 365-day years.
// Both values are truncated to calendar dates first.
func AgeAt(dob, now time.Time) int {
	from := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / daysPerYear
}
