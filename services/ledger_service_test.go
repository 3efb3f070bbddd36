package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghada1234/nutritrack/models"
	"github.com/ghada1234/nutritrack/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestLedger opens a private in-memory database per test so tests can run
// in parallel without sharing rows.
func newTestLedger(t *testing.T) *LedgerService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.FoodLogEntry{}, &models.ExerciseLogEntry{}, &models.DailyGoal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewLedgerService(db)
}

func sampleFood() *utils.FoodLogInput {
	return &utils.FoodLogInput{
		Meal:        models.SlotLunch,
		Item:        "Grilled Salmon",
		PortionSize: "200g",
		Calories:    412,
		Protein:     40,
		Fat:         26,
		Sodium:      120,
	}
}

func TestLedgerFoodLifecycle(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	entry, err := svc.AddFood("sess-1", sampleFood())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	upd := sampleFood()
	upd.Calories = 380
	got, err := svc.UpdateFood("sess-1", entry.ID, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Calories != 380 {
		t.Errorf("calories = %v, want 380", got.Calories)
	}

	if err := svc.DeleteFood("sess-1", entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	foods, err := svc.ListFood("sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(foods) != 0 {
		t.Errorf("expected empty ledger after delete, got %d entries", len(foods))
	}
}

func TestLedgerSessionIsolation(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	entry, err := svc.AddFood("sess-a", sampleFood())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// another session must neither see nor touch the entry
	foods, _ := svc.ListFood("sess-b")
	if len(foods) != 0 {
		t.Errorf("session sess-b should see no entries, got %d", len(foods))
	}
	if err := svc.DeleteFood("sess-b", entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("cross-session delete = %v, want ErrEntryNotFound", err)
	}
	if _, err := svc.UpdateFood("sess-b", entry.ID, sampleFood()); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("cross-session update = %v, want ErrEntryNotFound", err)
	}
}

func TestDuplicateFoodIsIndependent(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	orig, err := svc.AddFood("sess-1", sampleFood())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	dup, err := svc.DuplicateFood("sess-1", orig.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == orig.ID {
		t.Fatal("duplicate must get a fresh identity")
	}
	if dup.Item != orig.Item || dup.Calories != orig.Calories {
		t.Errorf("duplicate values differ: %+v vs %+v", dup, orig)
	}

	// deleting the original leaves the duplicate intact
	if err := svc.DeleteFood("sess-1", orig.ID); err != nil {
		t.Fatalf("delete original: %v", err)
	}
	foods, _ := svc.ListFood("sess-1")
	if len(foods) != 1 || foods[0].ID != dup.ID {
		t.Errorf("expected the duplicate to survive, got %+v", foods)
	}
}

func TestLedgerExerciseLifecycle(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	in := &utils.ExerciseLogInput{Activity: models.ActivityCardio, Details: "5k run", CaloriesBurned: 320}
	entry, err := svc.AddExercise("sess-1", in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	dup, err := svc.DuplicateExercise("sess-1", entry.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID == entry.ID || dup.CaloriesBurned != 320 {
		t.Errorf("unexpected duplicate: %+v", dup)
	}

	if _, err := svc.UpdateExercise("sess-1", 9999, in); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("update missing = %v, want ErrEntryNotFound", err)
	}
}

func TestUpsertGoalsOverwrites(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	if g, err := svc.GetGoals("sess-1"); err != nil || g != nil {
		t.Fatalf("expected no goals yet, got %+v err=%v", g, err)
	}

	first := &utils.GoalsInput{Calories: 2000, Protein: 120}
	if _, err := svc.UpsertGoals("sess-1", first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second := &utils.GoalsInput{Calories: 1800, Protein: 140}
	if _, err := svc.UpsertGoals("sess-1", second); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	g, err := svc.GetGoals("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Calories != 1800 || g.Protein != 140 {
		t.Errorf("goals not overwritten: %+v", g)
	}
}

func TestSummarizeEntriesNetCalories(t *testing.T) {
	t.Parallel()

	foods := []models.FoodLogEntry{
		{Calories: 500, Protein: 30, Sodium: 600},
		{Calories: 300, Protein: 10, Sugar: 25},
	}
	exercises := []models.ExerciseLogEntry{{CaloriesBurned: 300}}

	sum := SummarizeEntries(foods, exercises, nil)
	if sum.ConsumedCalories != 800 || sum.BurnedCalories != 300 || sum.NetCalories != 500 {
		t.Errorf("unexpected totals: %+v", sum)
	}
	if sum.Protein != 40 || sum.Sodium != 600 || sum.Sugar != 25 {
		t.Errorf("unexpected nutrient totals: %+v", sum)
	}
	if sum.Progress != nil {
		t.Error("progress should be absent without goals")
	}
}

func TestSummarizeEntriesProgressCapsAtOne(t *testing.T) {
	t.Parallel()

	foods := []models.FoodLogEntry{{Calories: 2600, Protein: 60}}
	goal := &models.DailyGoal{Calories: 2000, Protein: 120}

	sum := SummarizeEntries(foods, nil, goal)
	if p := sum.Progress["calories"].Percent; p != 1 {
		t.Errorf("calories progress = %v, want capped at 1", p)
	}
	if p := sum.Progress["protein"].Percent; p != 0.5 {
		t.Errorf("protein progress = %v, want 0.5", p)
	}
	if p := sum.Progress["sugar"].Percent; p != 0 {
		t.Errorf("zero-target progress = %v, want 0", p)
	}
}

func TestSummaryRecomputesFromRows(t *testing.T) {
	t.Parallel()
	svc := newTestLedger(t)

	if _, err := svc.AddFood("sess-1", sampleFood()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddExercise("sess-1", &utils.ExerciseLogInput{Activity: models.ActivityStrength, CaloriesBurned: 100}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}

	sum, err := svc.Summary("sess-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.NetCalories != 312 {
		t.Errorf("net calories = %v, want 312", sum.NetCalories)
	}
}
