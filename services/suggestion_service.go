package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghada1234/nutritrack/utils"
)

var ErrNoSuggestions = errors.New("no meal suggestions returned")

type SuggestionService struct {
	gem *GeminiService
}

func NewSuggestionService(gem *GeminiService) *SuggestionService {
	return &SuggestionService{gem: gem}
}

type MealSuggestion struct {
	MealName    string  `json:"mealName"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

// Suggest generates meal ideas honoring the user's restrictions,
// preferences, calorie goal and macro ratio over the requested plan span.
func (s *SuggestionService) Suggest(ctx context.Context, in *utils.SuggestionInput) ([]MealSuggestion, error) {
	prompt := fmt.Sprintf(`You are a nutritional expert. Generate a list of 3 meal suggestions based on the user's nationality, dietary restrictions, preferences, calorie goal and macro ratio.

Nationality / cuisine: %s
Dietary Restrictions: %s
Preferences: %s
Daily Calorie Goal for all meals: %.0f
Target Macro Ratio (Protein/Carbs/Fat): %s
Plan Duration: %s

Provide 3 diverse suggestions for breakfast, lunch, or dinner. For each suggestion, provide the meal name, a short description, and an estimated calorie count.
Respond with a single JSON object using exactly this shape:
{"mealSuggestions": [{"mealName": string, "description": string, "calories": number}]}
Do not include any other text.`,
		in.Nationality, in.DietaryRestrictions, in.Preferences, in.CalorieGoal, in.MacroRatio, in.PlanDuration)

	raw, err := s.gem.Prompt(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out struct {
		MealSuggestions []MealSuggestion `json:"mealSuggestions"`
	}
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("suggestion response did not match the expected schema: %w", err)
	}
	if len(out.MealSuggestions) == 0 {
		return nil, ErrNoSuggestions
	}
	return out.MealSuggestions, nil
}
