package utils

import "testing"

func TestEvaluateIntake(t *testing.T) {
	t.Parallel()

	if ws := EvaluateIntake(500, 10); len(ws) != 0 {
		t.Errorf("low intake should produce no warnings, got %+v", ws)
	}

	ws := EvaluateIntake(2000, 60)
	if len(ws) != 2 {
		t.Fatalf("got %d warnings, want 2: %+v", len(ws), ws)
	}
	if ws[0].Metric != "sodium" || ws[0].Severity != Caution || ws[0].Code != "sodium_near_limit" {
		t.Errorf("unexpected sodium warning: %+v", ws[0])
	}
	if ws[1].Metric != "sugar" || ws[1].Severity != High || ws[1].Code != "sugar_over_limit" {
		t.Errorf("unexpected sugar warning: %+v", ws[1])
	}
	if ws[1].PercentOfLimit != 120 {
		t.Errorf("sugar percent = %v, want 120", ws[1].PercentOfLimit)
	}
}
