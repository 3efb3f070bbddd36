package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghada1234/nutritrack/utils"
)

// AdviceService produces BMI-anchored nutrient advice. The BMI is always
// computed locally and injected into the prompt; the model's own arithmetic
// is never trusted, and the reported BMI is overwritten with the local
// value after parsing.
type AdviceService struct {
	gem *GeminiService
}

func NewAdviceService(gem *GeminiService) *AdviceService {
	return &AdviceService{gem: gem}
}

type MacroTargets struct {
	Protein string `json:"protein"` // e.g. "120-150g"
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
}

type MicronutrientTip struct {
	Name           string `json:"name"`
	Recommendation string `json:"recommendation"`
}

type NutrientAdvice struct {
	BMI                float64            `json:"bmi"`
	BMICategory        string             `json:"bmi_category"`
	HealthyWeightRange string             `json:"healthy_weight_range"`
	MacroNutrients     MacroTargets       `json:"macro_nutrients"`
	MicroNutrients     []MicronutrientTip `json:"micro_nutrients"`
}

func (s *AdviceService) GetAdvice(ctx context.Context, in *utils.AdviceInput) (*NutrientAdvice, error) {
	bmi := utils.CalculateBMI(in.Height, in.Weight)

	prompt := fmt.Sprintf(`You are an expert nutritionist. A user has provided their health data and goal.
Your task is to:
1. Use the provided BMI. The BMI has been pre-calculated.
2. Determine their BMI category (Underweight, Normal weight, Overweight, Obesity) based on the provided BMI.
3. Calculate their healthy weight range based on a BMI of 18.5 to 24.9. Format it as "min kg - max kg".
4. Provide personalized macronutrient recommendations (protein, carbs, fat) as a range in grams based on their goal.
5. Provide 3-4 key micronutrient recommendations (e.g. Iron, Vitamin D, Calcium, B12) with a brief explanation of why each matters for their goal.

User Data:
- Age: %.0f years
- Height: %.0f cm
- Weight: %.0f kg
- Goal: %s
- BMI: %.1f

Respond with a single JSON object using exactly these keys:
"bmi" (number), "bmiCategory" (string), "healthyWeightRange" (string),
"macroNutrients" (object with string keys "protein", "carbs", "fat"),
"microNutrients" (array of objects with string keys "name" and "recommendation").
Do not include any other text.`, in.Age, in.Height, in.Weight, in.Goal, bmi)

	raw, err := s.gem.Prompt(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out struct {
		BMI                float64            `json:"bmi"`
		BMICategory        string             `json:"bmiCategory"`
		HealthyWeightRange string             `json:"healthyWeightRange"`
		MacroNutrients     MacroTargets       `json:"macroNutrients"`
		MicroNutrients     []MicronutrientTip `json:"microNutrients"`
	}
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("advice response did not match the expected schema: %w", err)
	}
	if len(out.MicroNutrients) == 0 {
		return nil, fmt.Errorf("advice response missing micronutrient recommendations")
	}

	advice := &NutrientAdvice{
		BMI:                bmi, // local value wins
		BMICategory:        out.BMICategory,
		HealthyWeightRange: out.HealthyWeightRange,
		MacroNutrients:     out.MacroNutrients,
		MicroNutrients:     out.MicroNutrients,
	}
	if advice.BMICategory == "" {
		advice.BMICategory = utils.BMICategory(bmi)
	}
	if advice.HealthyWeightRange == "" {
		advice.HealthyWeightRange = utils.HealthyWeightRange(in.Height)
	}
	return advice, nil
}
