package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghada1234/nutritrack/models"
)

// SourceAdapter maps one kind of user input (photo, barcode, text) to the
// canonical nutrient record. Adapters never touch the ledger; the caller
// decides what to do with the record.
type SourceAdapter interface {
	Identify(ctx context.Context, input string) (models.NutrientRecord, error)
}

// AnalyzeService owns the three adapters, selected by the user-chosen mode.
type AnalyzeService struct {
	Photo   SourceAdapter
	Barcode SourceAdapter
	Text    SourceAdapter
}

func NewAnalyzeService(gem *GeminiService, off *OpenFoodFactsService) *AnalyzeService {
	return &AnalyzeService{
		Photo:   &photoAdapter{gem: gem},
		Barcode: &barcodeAdapter{off: off},
		Text:    &textAdapter{gem: gem},
	}
}

// DishEstimate is the declared shape of the model's structured output for
// the photo and text flows. Calories is a pointer so a reply that omits it
// entirely is distinguishable from a genuine zero and rejected.
type DishEstimate struct {
	DishName    string   `json:"dishName"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Sodium      *float64 `json:"sodium"`
	Sugar       *float64 `json:"sugar"`
	PortionSize string   `json:"portionSize"`
}

// parseDishEstimate enforces the output contract: if the reply does not
// parse against the declared shape the call fails, it is never passed on
// as a malformed record.
func parseDishEstimate(raw string) (*DishEstimate, error) {
	var est DishEstimate
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &est); err != nil {
		return nil, fmt.Errorf("model response did not match the expected schema: %w", err)
	}
	if strings.TrimSpace(est.DishName) == "" || est.Calories == nil {
		return nil, fmt.Errorf("model response missing dish name or calories")
	}
	return &est, nil
}

const estimateSchemaNote = `Respond with a single JSON object using exactly these keys:
"dishName" (string), "calories" (number), "protein" (grams, number), "carbs" (grams, number), "fat" (grams, number), "sodium" (milligrams, number), "sugar" (grams, number), "portionSize" (string, e.g. "1 cup" or "100g").
Do not include any other text.`

// ---- photo ----

type photoAdapter struct {
	gem *GeminiService
}

func (a *photoAdapter) Identify(ctx context.Context, dataURI string) (models.NutrientRecord, error) {
	mimeType, b64, err := splitImageDataURI(dataURI)
	if err != nil {
		return models.NutrientRecord{}, err
	}

	prompt := `You are an expert nutritionist. Analyze the attached photo of a meal and identify the dish.
Provide the most common name for this dish, and estimate the total calories, protein, carbs, fat, sodium and sugar for the portion shown, along with the portion size.
` + estimateSchemaNote

	raw, err := a.gem.PromptWithImage(ctx, prompt, mimeType, b64)
	if err != nil {
		return models.NutrientRecord{}, err
	}
	est, err := parseDishEstimate(raw)
	if err != nil {
		return models.NutrientRecord{}, err
	}
	return NormalizeEstimate(est), nil
}

// splitImageDataURI unpacks "data:<mimetype>;base64,<data>" and verifies the
// payload actually decodes before it is sent anywhere.
func splitImageDataURI(dataURI string) (mimeType, b64 string, err error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return "", "", fmt.Errorf("invalid image data URI")
	}
	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid image data URI")
	}
	meta := strings.TrimPrefix(parts[0], "data:") // "image/jpeg;base64"
	mimeType = strings.SplitN(meta, ";", 2)[0]
	b64 = parts[1]
	if _, err := base64.StdEncoding.DecodeString(b64); err != nil {
		return "", "", fmt.Errorf("image payload is not valid base64: %w", err)
	}
	return mimeType, b64, nil
}

// ---- barcode ----

type barcodeAdapter struct {
	off *OpenFoodFactsService
}

func (a *barcodeAdapter) Identify(ctx context.Context, barcode string) (models.NutrientRecord, error) {
	product, err := a.off.LookupProduct(ctx, strings.TrimSpace(barcode))
	if err != nil {
		return models.NutrientRecord{}, err
	}
	return NormalizeProduct(product), nil
}

// ---- text ----

type textAdapter struct {
	gem *GeminiService
}

func (a *textAdapter) Identify(ctx context.Context, description string) (models.NutrientRecord, error) {
	prompt := fmt.Sprintf(`You are an expert nutritionist. Analyze the following description of a meal and identify the dish.
Provide the most common name for this dish, and estimate the total calories, protein, carbs, fat, sodium and sugar, along with the portion size for the described meal.
%s

Description: %s`, estimateSchemaNote, description)

	raw, err := a.gem.Prompt(ctx, prompt)
	if err != nil {
		return models.NutrientRecord{}, err
	}
	est, err := parseDishEstimate(raw)
	if err != nil {
		return models.NutrientRecord{}, err
	}
	return NormalizeEstimate(est), nil
}
