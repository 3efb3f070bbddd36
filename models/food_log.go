package models

import "gorm.io/gorm"

// Meal slots a food entry can be logged under.
const (
	SlotBreakfast = "Breakfast"
	SlotLunch     = "Lunch"
	SlotDinner    = "Dinner"
	SlotSnacks    = "Snacks"
	SlotDessert   = "Dessert"
)

var MealSlots = []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks, SlotDessert}

func ValidMealSlot(s string) bool {
	for _, slot := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// One consumed item in the session ledger. Nutrient values are a snapshot
// taken at logging time; editing later does not re-run any analysis.
type FoodLogEntry struct {
	gorm.Model
	SessionID   string `gorm:"index;not null"`
	Meal        string `gorm:"size:16;not null"` // one of MealSlots
	Item        string `gorm:"not null"`
	PortionSize string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Sodium      float64 // mg
	Sugar       float64 // g
}
