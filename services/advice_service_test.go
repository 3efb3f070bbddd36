package services

import (
	"context"
	"testing"

	"github.com/ghada1234/nutritrack/utils"
)

func TestGetAdviceOverwritesModelBMI(t *testing.T) {
	t.Parallel()

	// the model reports a wrong BMI; the locally computed one must win
	gem, ts := fakeGemini(t, `{
  "bmi": 31.7,
  "bmiCategory": "Normal weight",
  "healthyWeightRange": "53 kg - 72 kg",
  "macroNutrients": {"protein": "100-130g", "carbs": "180-220g", "fat": "50-70g"},
  "microNutrients": [
    {"name": "Iron", "recommendation": "Supports oxygen transport during training."},
    {"name": "Vitamin D", "recommendation": "Needed for bone health."}
  ]
}`)
	defer ts.Close()

	advice, err := NewAdviceService(gem).GetAdvice(context.Background(), &utils.AdviceInput{
		Height: 170, Weight: 65, Age: 30, Goal: "maintain weight",
	})
	if err != nil {
		t.Fatalf("advice: %v", err)
	}
	if advice.BMI != 22.5 {
		t.Errorf("bmi = %v, want locally computed 22.5", advice.BMI)
	}
	if advice.MacroNutrients.Protein != "100-130g" {
		t.Errorf("macro targets lost: %+v", advice.MacroNutrients)
	}
	if len(advice.MicroNutrients) != 2 {
		t.Errorf("micronutrient tips lost: %+v", advice.MicroNutrients)
	}
}

func TestGetAdviceFillsMissingCategoryAndRange(t *testing.T) {
	t.Parallel()

	gem, ts := fakeGemini(t, `{
  "macroNutrients": {"protein": "90g", "carbs": "200g", "fat": "60g"},
  "microNutrients": [{"name": "Calcium", "recommendation": "Bone density."}]
}`)
	defer ts.Close()

	advice, err := NewAdviceService(gem).GetAdvice(context.Background(), &utils.AdviceInput{
		Height: 170, Weight: 65, Age: 28, Goal: "tone up",
	})
	if err != nil {
		t.Fatalf("advice: %v", err)
	}
	if advice.BMICategory != "Normal weight" {
		t.Errorf("category = %q, want filled from the local BMI", advice.BMICategory)
	}
	if advice.HealthyWeightRange != "53 kg - 72 kg" {
		t.Errorf("range = %q, want locally computed", advice.HealthyWeightRange)
	}
}

func TestGetAdviceRejectsEmptyMicronutrients(t *testing.T) {
	t.Parallel()

	gem, ts := fakeGemini(t, `{"bmi": 22.5, "bmiCategory": "Normal weight", "microNutrients": []}`)
	defer ts.Close()

	_, err := NewAdviceService(gem).GetAdvice(context.Background(), &utils.AdviceInput{
		Height: 170, Weight: 65, Age: 30, Goal: "maintain weight",
	})
	if err == nil {
		t.Fatal("expected an error for a reply without micronutrient tips")
	}
}
