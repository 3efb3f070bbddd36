package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghada1234/nutritrack/models"
)

// FieldErrors maps a form field name to its human-readable error messages.
// An empty map means the input validated cleanly.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Ok() bool { return len(e) == 0 }

// Raw form values arrive as strings; validators coerce them into typed
// inputs. On failure no partial object is returned.

type FoodLogInput struct {
	Meal        string
	Item        string
	PortionSize string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Sodium      float64
	Sugar       float64
}

type ExerciseLogInput struct {
	Activity       string
	Details        string
	CaloriesBurned float64
}

type SuggestionInput struct {
	Nationality         string
	DietaryRestrictions string
	Preferences         string
	CalorieGoal         float64
	MacroRatio          string
	PlanDuration        string // Daily | Weekly | Monthly
}

type AdviceInput struct {
	Height float64 // cm
	Weight float64 // kg
	Age    float64 // years
	Goal   string
}

type GoalsInput struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Sodium   float64
	Sugar    float64
}

var planDurations = []string{"Daily", "Weekly", "Monthly"}

func ValidateFoodLog(raw map[string]string) (*FoodLogInput, FieldErrors) {
	errs := FieldErrors{}
	in := &FoodLogInput{
		Meal:        strings.TrimSpace(raw["meal"]),
		Item:        strings.TrimSpace(raw["item"]),
		PortionSize: strings.TrimSpace(raw["portion_size"]),
	}
	if in.Item == "" {
		errs.add("item", "item name is required")
	}
	if !models.ValidMealSlot(in.Meal) {
		errs.add("meal", fmt.Sprintf("meal must be one of: %s", strings.Join(models.MealSlots, ", ")))
	}
	in.Calories = number(raw, "calories", errs, nonNegative)
	in.Protein = number(raw, "protein", errs, nonNegative)
	in.Carbs = number(raw, "carbs", errs, nonNegative)
	in.Fat = number(raw, "fat", errs, nonNegative)
	in.Sodium = number(raw, "sodium", errs, nonNegative)
	in.Sugar = number(raw, "sugar", errs, nonNegative)
	if !errs.Ok() {
		return nil, errs
	}
	return in, errs
}

func ValidateExerciseLog(raw map[string]string) (*ExerciseLogInput, FieldErrors) {
	errs := FieldErrors{}
	in := &ExerciseLogInput{
		Activity: strings.TrimSpace(raw["activity"]),
		Details:  strings.TrimSpace(raw["details"]),
	}
	if !models.ValidActivityType(in.Activity) {
		errs.add("activity", fmt.Sprintf("activity must be one of: %s", strings.Join(models.ActivityTypes, ", ")))
	}
	in.CaloriesBurned = number(raw, "calories_burned", errs, nonNegative)
	if !errs.Ok() {
		return nil, errs
	}
	return in, errs
}

func ValidateSuggestion(raw map[string]string) (*SuggestionInput, FieldErrors) {
	errs := FieldErrors{}
	in := &SuggestionInput{
		Nationality:         strings.TrimSpace(raw["nationality"]),
		DietaryRestrictions: strings.TrimSpace(raw["dietary_restrictions"]),
		Preferences:         strings.TrimSpace(raw["preferences"]),
		MacroRatio:          strings.TrimSpace(raw["macro_ratio"]),
		PlanDuration:        strings.TrimSpace(raw["plan_duration"]),
	}
	if in.Nationality == "" {
		errs.add("nationality", "nationality is required")
	}
	if in.DietaryRestrictions == "" {
		errs.add("dietary_restrictions", "dietary restrictions are required")
	}
	if in.Preferences == "" {
		errs.add("preferences", "preferences are required")
	}
	if in.MacroRatio == "" {
		errs.add("macro_ratio", "macro ratio is required")
	}
	in.CalorieGoal = number(raw, "calorie_goal", errs, positive)
	if !oneOf(in.PlanDuration, planDurations) {
		errs.add("plan_duration", fmt.Sprintf("plan duration must be one of: %s", strings.Join(planDurations, ", ")))
	}
	if !errs.Ok() {
		return nil, errs
	}
	return in, errs
}

func ValidateAdvice(raw map[string]string) (*AdviceInput, FieldErrors) {
	errs := FieldErrors{}
	in := &AdviceInput{Goal: strings.TrimSpace(raw["goal"])}
	in.Height = number(raw, "height", errs, positive)
	in.Weight = number(raw, "weight", errs, positive)
	in.Age = number(raw, "age", errs, positive)
	if in.Goal == "" {
		errs.add("goal", "goal cannot be empty")
	}
	if !errs.Ok() {
		return nil, errs
	}
	return in, errs
}

func ValidateGoals(raw map[string]string) (*GoalsInput, FieldErrors) {
	errs := FieldErrors{}
	in := &GoalsInput{}
	in.Calories = number(raw, "calories", errs, positive)
	in.Protein = number(raw, "protein", errs, nonNegative)
	in.Carbs = number(raw, "carbs", errs, nonNegative)
	in.Fat = number(raw, "fat", errs, nonNegative)
	in.Sodium = number(raw, "sodium", errs, nonNegative)
	in.Sugar = number(raw, "sugar", errs, nonNegative)
	if !errs.Ok() {
		return nil, errs
	}
	return in, errs
}

type numberRule int

const (
	nonNegative numberRule = iota
	positive
)

// number coerces raw[field] to a float64 and records any failure. A missing
// field is treated as 0 under nonNegative and rejected under positive.
func number(raw map[string]string, field string, errs FieldErrors, rule numberRule) float64 {
	s := strings.TrimSpace(raw[field])
	if s == "" {
		if rule == positive {
			errs.add(field, field+" is required")
		}
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		errs.add(field, field+" must be a number")
		return 0
	}
	switch rule {
	case positive:
		if v <= 0 {
			errs.add(field, field+" must be positive")
			return 0
		}
	case nonNegative:
		if v < 0 {
			errs.add(field, field+" cannot be negative")
			return 0
		}
	}
	return v
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
