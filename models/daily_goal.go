package models

import "gorm.io/gorm"

// DailyGoal holds a session's daily nutrient-intake targets. Zero targets
// are allowed and simply produce no progress ratio.
type DailyGoal struct {
	gorm.Model
	SessionID string  `gorm:"uniqueIndex;not null"`
	Calories  float64 // e.g. 2200 kcal
	Protein   float64 // g
	Carbs     float64 // g
	Fat       float64 // g
	Sodium    float64 // mg
	Sugar     float64 // g
}
