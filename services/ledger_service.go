package services

import (
	"errors"

	"github.com/ghada1234/nutritrack/models"
	"github.com/ghada1234/nutritrack/utils"

	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("entry not found")

// LedgerService owns the session ledger: every mutation goes through one of
// these methods, and the summary is always recomputed from the current rows
// so it can never go stale.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// ---- food entries ----

func (s *LedgerService) AddFood(sessionID string, in *utils.FoodLogInput) (*models.FoodLogEntry, error) {
	entry := &models.FoodLogEntry{
		SessionID:   sessionID,
		Meal:        in.Meal,
		Item:        in.Item,
		PortionSize: in.PortionSize,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Sodium:      in.Sodium,
		Sugar:       in.Sugar,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) UpdateFood(sessionID string, id uint, in *utils.FoodLogInput) (*models.FoodLogEntry, error) {
	var entry models.FoodLogEntry
	err := s.db.Where("id = ? AND session_id = ?", id, sessionID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	entry.Meal = in.Meal
	entry.Item = in.Item
	entry.PortionSize = in.PortionSize
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fat = in.Fat
	entry.Sodium = in.Sodium
	entry.Sugar = in.Sugar
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *LedgerService) DeleteFood(sessionID string, id uint) error {
	res := s.db.Where("id = ? AND session_id = ?", id, sessionID).Delete(&models.FoodLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DuplicateFood implements "log again": a fresh entry with a new identity
// and field-for-field equal values. The original is neither mutated nor
// aliased, so deleting it later leaves the duplicate intact.
func (s *LedgerService) DuplicateFood(sessionID string, id uint) (*models.FoodLogEntry, error) {
	var orig models.FoodLogEntry
	err := s.db.Where("id = ? AND session_id = ?", id, sessionID).First(&orig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	dup := &models.FoodLogEntry{
		SessionID:   orig.SessionID,
		Meal:        orig.Meal,
		Item:        orig.Item,
		PortionSize: orig.PortionSize,
		Calories:    orig.Calories,
		Protein:     orig.Protein,
		Carbs:       orig.Carbs,
		Fat:         orig.Fat,
		Sodium:      orig.Sodium,
		Sugar:       orig.Sugar,
	}
	if err := s.db.Create(dup).Error; err != nil {
		return nil, err
	}
	return dup, nil
}

func (s *LedgerService) ListFood(sessionID string) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&entries).Error
	return entries, err
}

// ---- exercise entries ----

func (s *LedgerService) AddExercise(sessionID string, in *utils.ExerciseLogInput) (*models.ExerciseLogEntry, error) {
	entry := &models.ExerciseLogEntry{
		SessionID:      sessionID,
		Activity:       in.Activity,
		Details:        in.Details,
		CaloriesBurned: in.CaloriesBurned,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) UpdateExercise(sessionID string, id uint, in *utils.ExerciseLogInput) (*models.ExerciseLogEntry, error) {
	var entry models.ExerciseLogEntry
	err := s.db.Where("id = ? AND session_id = ?", id, sessionID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	entry.Activity = in.Activity
	entry.Details = in.Details
	entry.CaloriesBurned = in.CaloriesBurned
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *LedgerService) DeleteExercise(sessionID string, id uint) error {
	res := s.db.Where("id = ? AND session_id = ?", id, sessionID).Delete(&models.ExerciseLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *LedgerService) DuplicateExercise(sessionID string, id uint) (*models.ExerciseLogEntry, error) {
	var orig models.ExerciseLogEntry
	err := s.db.Where("id = ? AND session_id = ?", id, sessionID).First(&orig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	dup := &models.ExerciseLogEntry{
		SessionID:      orig.SessionID,
		Activity:       orig.Activity,
		Details:        orig.Details,
		CaloriesBurned: orig.CaloriesBurned,
	}
	if err := s.db.Create(dup).Error; err != nil {
		return nil, err
	}
	return dup, nil
}

func (s *LedgerService) ListExercise(sessionID string) ([]models.ExerciseLogEntry, error) {
	var entries []models.ExerciseLogEntry
	err := s.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&entries).Error
	return entries, err
}

// ---- goals ----

func (s *LedgerService) UpsertGoals(sessionID string, in *utils.GoalsInput) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("session_id = ?", sessionID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	goal.SessionID = sessionID
	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.Sodium = in.Sodium
	goal.Sugar = in.Sugar
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *LedgerService) GetGoals(sessionID string) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("session_id = ?", sessionID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ---- summary ----

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DailySummary is derived, never stored: a pure function of the two entry
// lists plus the optional goals.
type DailySummary struct {
	ConsumedCalories float64 `json:"consumed_calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	Sodium           float64 `json:"sodium"`
	Sugar            float64 `json:"sugar"`
	BurnedCalories   float64 `json:"burned_calories"`
	NetCalories      float64 `json:"net_calories"`

	Progress map[string]MacroProgress `json:"progress,omitempty"`
	Warnings []utils.Warning          `json:"warnings,omitempty"`
}

// SummarizeEntries folds the entry lists into a DailySummary.
func SummarizeEntries(foods []models.FoodLogEntry, exercises []models.ExerciseLogEntry, goal *models.DailyGoal) DailySummary {
	var sum DailySummary
	for _, f := range foods {
		sum.ConsumedCalories += f.Calories
		sum.Protein += f.Protein
		sum.Carbs += f.Carbs
		sum.Fat += f.Fat
		sum.Sodium += f.Sodium
		sum.Sugar += f.Sugar
	}
	for _, e := range exercises {
		sum.BurnedCalories += e.CaloriesBurned
	}
	sum.NetCalories = sum.ConsumedCalories - sum.BurnedCalories
	sum.Warnings = utils.EvaluateIntake(sum.Sodium, sum.Sugar)

	if goal != nil {
		pct := func(consumed, target float64) float64 {
			if target <= 0 {
				return 0
			}
			p := consumed / target
			if p > 1 {
				return 1
			}
			return p
		}
		sum.Progress = map[string]MacroProgress{
			"calories": {Consumed: sum.ConsumedCalories, Goal: goal.Calories, Percent: pct(sum.ConsumedCalories, goal.Calories)},
			"protein":  {Consumed: sum.Protein, Goal: goal.Protein, Percent: pct(sum.Protein, goal.Protein)},
			"carbs":    {Consumed: sum.Carbs, Goal: goal.Carbs, Percent: pct(sum.Carbs, goal.Carbs)},
			"fat":      {Consumed: sum.Fat, Goal: goal.Fat, Percent: pct(sum.Fat, goal.Fat)},
			"sodium":   {Consumed: sum.Sodium, Goal: goal.Sodium, Percent: pct(sum.Sodium, goal.Sodium)},
			"sugar":    {Consumed: sum.Sugar, Goal: goal.Sugar, Percent: pct(sum.Sugar, goal.Sugar)},
		}
	}
	return sum
}

// Summary recomputes the daily totals from the current ledger rows.
func (s *LedgerService) Summary(sessionID string) (*DailySummary, error) {
	foods, err := s.ListFood(sessionID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.ListExercise(sessionID)
	if err != nil {
		return nil, err
	}
	goal, err := s.GetGoals(sessionID)
	if err != nil {
		return nil, err
	}
	sum := SummarizeEntries(foods, exercises, goal)
	return &sum, nil
}
