package models

// NutrientRecord is the canonical output of every nutrient source adapter
// (photo, barcode, text). Numeric fields are always populated; a source
// that cannot supply a value reports 0. Found=false means the source had
// no usable data and every other field must be ignored.
type NutrientRecord struct {
	Name        string  `json:"name"`
	PortionSize string  `json:"portion_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Sodium      float64 `json:"sodium"` // mg
	Sugar       float64 `json:"sugar"`  // g
	Found       bool    `json:"found"`
}
