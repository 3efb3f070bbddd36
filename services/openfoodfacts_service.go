package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultOFFBaseURL = "https://world.openfoodfacts.org"

// requested explicitly so the payload stays small and the shape predictable
const offFields = "product_name,product_name_en,nutriments,status,status_verbose,serving_size"

// OpenFoodFactsService looks up packaged products by barcode. The API's
// nutriments object is schema-less; only this service reads it, and only
// ProductNutrients leaves it.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	base := os.Getenv("OFF_BASE_URL")
	if base == "" {
		base = defaultOFFBaseURL
	}
	return &OpenFoodFactsService{
		baseURL: base,
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// ProductNutrients carries one product's nutrient values after the
// serving/100g selection has been applied. Found=false means the database
// has no such barcode; the numeric fields are meaningless in that case.
type ProductNutrients struct {
	Found       bool
	Name        string
	ServingSize string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	SodiumMg    float64
	Sugar       float64
}

type offResponse struct {
	Status        int        `json:"status"`
	StatusVerbose string     `json:"status_verbose"`
	Product       offProduct `json:"product"`
}

type offProduct struct {
	ProductName   string         `json:"product_name"`
	ProductNameEn string         `json:"product_name_en"`
	ServingSize   string         `json:"serving_size"`
	Nutriments    map[string]any `json:"nutriments"`
}

// LookupProduct fetches a product by barcode. A "not found" status is a
// normal outcome, not an error; transport problems and non-2xx responses
// are errors.
func (s *OpenFoodFactsService) LookupProduct(ctx context.Context, barcode string) (*ProductNutrients, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json?fields=%s", s.baseURL, barcode, offFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}
	req.Header.Set("User-Agent", "nutritrack/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}
	// the API answers 404 with a status=0 JSON body for unknown barcodes
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return nil, fmt.Errorf("open food facts API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}

	name := strings.TrimSpace(pr.Product.ProductNameEn)
	if name == "" {
		name = strings.TrimSpace(pr.Product.ProductName)
	}
	if pr.Status == 0 || name == "" {
		return &ProductNutrients{Found: false}, nil
	}

	n := pr.Product.Nutriments
	return &ProductNutrients{
		Found:       true,
		Name:        name,
		ServingSize: strings.TrimSpace(pr.Product.ServingSize),
		Calories:    nutrientValue(n, "energy-kcal"),
		Protein:     nutrientValue(n, "proteins"),
		Carbs:       nutrientValue(n, "carbohydrates"),
		Fat:         nutrientValue(n, "fat"),
		SodiumMg:    nutrientValue(n, "sodium") * 1000, // API reports grams
		Sugar:       nutrientValue(n, "sugars"),
	}, nil
}

// nutrientValue prefers the per-serving figure and falls back to per-100g;
// a nutrient absent in both forms reads as 0.
func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
