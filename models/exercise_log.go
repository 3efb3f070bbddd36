package models

import "gorm.io/gorm"

// Activity types for exercise entries.
const (
	ActivityCardio      = "Cardio"
	ActivityStrength    = "Strength"
	ActivityFlexibility = "Flexibility"
	ActivityOther       = "Other"
)

var ActivityTypes = []string{ActivityCardio, ActivityStrength, ActivityFlexibility, ActivityOther}

func ValidActivityType(s string) bool {
	for _, a := range ActivityTypes {
		if s == a {
			return true
		}
	}
	return false
}

type ExerciseLogEntry struct {
	gorm.Model
	SessionID      string `gorm:"index;not null"`
	Activity       string `gorm:"size:16;not null"` // one of ActivityTypes
	Details        string
	CaloriesBurned float64
}
