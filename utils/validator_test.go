package utils

import "testing"

func TestValidateFoodLogAcceptsTypicalEntry(t *testing.T) {
	t.Parallel()

	in, errs := ValidateFoodLog(map[string]string{
		"meal":         "Lunch",
		"item":         " Chicken Shawarma ",
		"portion_size": "1 wrap",
		"calories":     "520",
		"protein":      "32",
		"carbs":        "45",
		"fat":          "21",
		"sodium":       "980",
		"sugar":        "4",
	})
	if !errs.Ok() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Item != "Chicken Shawarma" {
		t.Errorf("item not trimmed: %q", in.Item)
	}
	if in.Calories != 520 || in.Sodium != 980 {
		t.Errorf("numbers not coerced: %+v", in)
	}
}

func TestValidateFoodLogRejectsBadInput(t *testing.T) {
	t.Parallel()

	in, errs := ValidateFoodLog(map[string]string{
		"meal":     "Brunch",
		"item":     "",
		"calories": "-12",
		"protein":  "lots",
	})
	if in != nil {
		t.Fatalf("expected nil input on validation failure, got %+v", in)
	}
	for _, field := range []string{"meal", "item", "calories", "protein"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected an error for %q, got none", field)
		}
	}
}

func TestValidateFoodLogTreatsMissingNumbersAsZero(t *testing.T) {
	t.Parallel()

	in, errs := ValidateFoodLog(map[string]string{
		"meal": "Snacks",
		"item": "Apple",
	})
	if !errs.Ok() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Calories != 0 || in.Protein != 0 {
		t.Errorf("missing nutrients should read as zero: %+v", in)
	}
}

func TestValidateExerciseLogRejectsUnknownActivity(t *testing.T) {
	t.Parallel()

	_, errs := ValidateExerciseLog(map[string]string{
		"activity":        "Parkour",
		"calories_burned": "300",
	})
	if len(errs["activity"]) == 0 {
		t.Fatal("expected an activity error")
	}
}

func TestValidateSuggestionRequiresPositiveCalorieGoal(t *testing.T) {
	t.Parallel()

	base := map[string]string{
		"nationality":          "Lebanese",
		"dietary_restrictions": "none",
		"preferences":          "grilled food",
		"macro_ratio":          "30/40/30",
		"plan_duration":        "Weekly",
	}

	base["calorie_goal"] = "-5"
	if _, errs := ValidateSuggestion(base); len(errs["calorie_goal"]) == 0 {
		t.Fatal("expected a calorie_goal error for -5")
	}

	base["calorie_goal"] = "2000"
	in, errs := ValidateSuggestion(base)
	if !errs.Ok() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.CalorieGoal != 2000 {
		t.Errorf("calorie goal = %v, want 2000", in.CalorieGoal)
	}
}

func TestValidateSuggestionRejectsUnknownPlanDuration(t *testing.T) {
	t.Parallel()

	_, errs := ValidateSuggestion(map[string]string{
		"nationality":          "Italian",
		"dietary_restrictions": "vegetarian",
		"preferences":          "pasta",
		"macro_ratio":          "25/50/25",
		"calorie_goal":         "1800",
		"plan_duration":        "Fortnightly",
	})
	if len(errs["plan_duration"]) == 0 {
		t.Fatal("expected a plan_duration error")
	}
}

func TestValidateAdvice(t *testing.T) {
	t.Parallel()

	in, errs := ValidateAdvice(map[string]string{
		"height": "170",
		"weight": "65",
		"age":    "30",
		"goal":   "maintain weight",
	})
	if !errs.Ok() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Height != 170 || in.Weight != 65 || in.Age != 30 {
		t.Errorf("numbers not coerced: %+v", in)
	}

	_, errs = ValidateAdvice(map[string]string{"goal": "bulk"})
	for _, field := range []string{"height", "weight", "age"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected a required error for %q", field)
		}
	}
}

func TestValidateGoalsRequiresPositiveCalories(t *testing.T) {
	t.Parallel()

	_, errs := ValidateGoals(map[string]string{"calories": "0"})
	if len(errs["calories"]) == 0 {
		t.Fatal("expected a calories error for 0")
	}

	in, errs := ValidateGoals(map[string]string{"calories": "2200", "protein": "140"})
	if !errs.Ok() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Calories != 2200 || in.Protein != 140 {
		t.Errorf("goals not coerced: %+v", in)
	}
}
