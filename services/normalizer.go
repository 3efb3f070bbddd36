package services

import (
	"strings"

	"github.com/ghada1234/nutritrack/models"
)

// The normalizer is the single seam where adapter-specific field shapes are
// erased. Nothing enters the ledger without passing through one of these
// functions: missing numerics become 0, negatives are clamped, and the
// display name is resolved from whichever source field is present.

// NormalizeEstimate converts a model-produced dish estimate into the
// canonical record.
func NormalizeEstimate(e *DishEstimate) models.NutrientRecord {
	rec := models.NutrientRecord{
		Name:        strings.TrimSpace(e.DishName),
		PortionSize: strings.TrimSpace(e.PortionSize),
		Calories:    clampNonNegative(deref(e.Calories)),
		Protein:     clampNonNegative(deref(e.Protein)),
		Carbs:       clampNonNegative(deref(e.Carbs)),
		Fat:         clampNonNegative(deref(e.Fat)),
		Sodium:      clampNonNegative(deref(e.Sodium)),
		Sugar:       clampNonNegative(deref(e.Sugar)),
		Found:       true,
	}
	if rec.PortionSize == "" {
		rec.PortionSize = "1 serving"
	}
	return rec
}

// NormalizeProduct converts a barcode lookup result into the canonical
// record. Found=false short-circuits every other field.
func NormalizeProduct(p *ProductNutrients) models.NutrientRecord {
	if !p.Found {
		return models.NutrientRecord{Found: false}
	}
	rec := models.NutrientRecord{
		Name:        strings.TrimSpace(p.Name),
		PortionSize: strings.TrimSpace(p.ServingSize),
		Calories:    clampNonNegative(p.Calories),
		Protein:     clampNonNegative(p.Protein),
		Carbs:       clampNonNegative(p.Carbs),
		Fat:         clampNonNegative(p.Fat),
		Sodium:      clampNonNegative(p.SodiumMg),
		Sugar:       clampNonNegative(p.Sugar),
		Found:       true,
	}
	if rec.PortionSize == "" {
		rec.PortionSize = "100g"
	}
	return rec
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
