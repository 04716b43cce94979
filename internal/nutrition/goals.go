// Package nutrition holds the goal-derivation math used when a profile is
// saved without explicit calorie or water targets.
package nutrition

import "math"

// The BMR formula assumes a fixed 175 cm reference height and does not model
// sex. This mirrors the product's known approximation; do not "fix" it here.
const referenceHeightCm = 175

// Activity multipliers applied to BMR. Unrecognized levels fall back to
// sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMR returns the basal metabolic rate in kcal for the given weight (kg) and
// age.
func BMR(weightKg float64, age int) float64 {
	return 10*weightKg + 6.25*referenceHeightCm - 5*float64(age) + 5
}

// TDEE scales BMR by the activity multiplier for the given level.
func TDEE(weightKg float64, age int, activityLevel string) float64 {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.2
	}
	return BMR(weightKg, age) * multiplier
}

// CalorieGoal derives a daily kcal target from TDEE and the weight goal.
// The TDEE product is rounded before the deficit is subtracted.
func CalorieGoal(weightKg float64, age int, activityLevel, weightGoal string) int {
	tdee := int(math.Round(TDEE(weightKg, age, activityLevel)))
	switch weightGoal {
	case "lose_steady":
		return tdee - 500
	case "lose_aggressive":
		return tdee - 750
	default:
		return tdee
	}
}

// WaterGoal derives a daily hydration target in ml: 35 ml per kg of body
// weight, adjusted upward past age 65.
func WaterGoal(weightKg float64, age int) int {
	adjustment := 1.0
	if age > 65 {
		adjustment = 1.1
	}
	return int(math.Round(weightKg * 35 * adjustment))
}
