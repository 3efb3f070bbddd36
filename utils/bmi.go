package utils

import (
	"fmt"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the BMI rounded to one decimal place. Non-positive input yields 0
// rather than an error so callers can render "no data" instead of failing.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// HealthyWeightRange is the weight band keeping BMI within [18.5, 24.9] at
// the given height, formatted as "min kg - max kg" in whole kilograms.
func HealthyWeightRange(heightCm float64) string {
	if heightCm <= 0 {
		return ""
	}
	h := heightCm / 100.0
	min := math.Round(18.5 * h * h)
	max := math.Round(24.9 * h * h)
	return fmt.Sprintf("%.0f kg - %.0f kg", min, max)
}
