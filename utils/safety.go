package utils

import (
	"fmt"
	"math"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding the client can render next to the summary.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric"`
	Value          float64         `json:"value"`
	Limit          float64         `json:"limit"`
	PercentOfLimit float64         `json:"percent_of_limit"`
}

// Daily reference limits for a general adult, per WHO/FDA guidance.
const (
	SodiumLimitMg   = 2300.0
	SugarLimitG     = 50.0
	cautionFraction = 0.8
)

// EvaluateIntake flags daily totals that approach or exceed the reference
// limits for sodium and added sugar. Totals below 80% of a limit produce no
// warning for that metric.
func EvaluateIntake(sodiumMg, sugarG float64) []Warning {
	var warnings []Warning
	if w, ok := limitWarning("sodium", "mg", sodiumMg, SodiumLimitMg); ok {
		warnings = append(warnings, w)
	}
	if w, ok := limitWarning("sugar", "g", sugarG, SugarLimitG); ok {
		warnings = append(warnings, w)
	}
	return warnings
}

func limitWarning(metric, unit string, value, limit float64) (Warning, bool) {
	if limit <= 0 || value < limit*cautionFraction {
		return Warning{}, false
	}
	pct := math.Round(value / limit * 100)
	w := Warning{
		Metric:         metric,
		Value:          value,
		Limit:          limit,
		PercentOfLimit: pct,
	}
	if value >= limit {
		w.Code = metric + "_over_limit"
		w.Severity = High
		w.Message = fmt.Sprintf("Today's %s intake (%.0f %s) exceeds the recommended daily limit of %.0f %s.", metric, value, unit, limit, unit)
	} else {
		w.Code = metric + "_near_limit"
		w.Severity = Caution
		w.Message = fmt.Sprintf("Today's %s intake (%.0f %s) is at %.0f%% of the recommended daily limit.", metric, value, unit, pct)
	}
	return w, true
}
