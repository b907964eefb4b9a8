package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriflow/backend/internal/calc"
	"github.com/nutriflow/backend/internal/models"
	"github.com/nutriflow/backend/internal/types"
)

// DiaryService owns the day's logs: food, exercise, water and steps.
type DiaryService struct {
	db *gorm.DB
}

// Ensure DiaryService implements IDiaryService
var _ IDiaryService = (*DiaryService)(nil)

func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db}
}

// dayWindow returns [midnight, next midnight) around date in its location.
// AddDate keeps the window aligned on DST-transition days.
func dayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func loggedAtOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

// LogFood records one food item.
func (s *DiaryService) LogFood(ctx context.Context, userID uuid.UUID, req *types.LogFoodRequest) (*models.FoodLog, error) {
	entry := models.FoodLog{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     req.Name,
		MealType: req.MealType,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		Sodium:   req.Sodium,
		PhotoKey: req.PhotoKey,
		LoggedAt: loggedAtOrNow(req.LoggedAt),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFood returns the food logged on a given day, oldest first.
func (s *DiaryService) ListFood(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodLog, error) {
	start, end := dayWindow(date)
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteFood removes one food entry owned by the user.
func (s *DiaryService) DeleteFood(ctx context.Context, userID, entryID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LogExercise records one exercise bout.
func (s *DiaryService) LogExercise(ctx context.Context, userID uuid.UUID, req *types.LogExerciseRequest) (*models.ExerciseLog, error) {
	entry := models.ExerciseLog{
		ID:              uuid.New(),
		UserID:          userID,
		ExerciseType:    req.ExerciseType,
		DurationMinutes: req.DurationMinutes,
		LoggedAt:        loggedAtOrNow(req.LoggedAt),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListExercise returns the exercise logged on a given day.
func (s *DiaryService) ListExercise(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.ExerciseLog, error) {
	start, end := dayWindow(date)
	var logs []models.ExerciseLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteExercise removes one exercise entry owned by the user.
func (s *DiaryService) DeleteExercise(ctx context.Context, userID, entryID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.ExerciseLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LogWater records one drink.
func (s *DiaryService) LogWater(ctx context.Context, userID uuid.UUID, req *types.LogWaterRequest) (*models.WaterLog, error) {
	entry := models.WaterLog{
		ID:       uuid.New(),
		UserID:   userID,
		AmountMl: req.AmountMl,
		LoggedAt: loggedAtOrNow(req.LoggedAt),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertSteps stores the day's step total, replacing any earlier reading for
// the same day.
func (s *DiaryService) UpsertSteps(ctx context.Context, userID uuid.UUID, date time.Time, steps int) (*models.StepCount, error) {
	start, _ := dayWindow(date)

	var record models.StepCount
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.StepCount{
			ID:     uuid.New(),
			UserID: userID,
			Date:   start,
			Steps:  steps,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	record.Steps = steps
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DaySummary is everything logged on one day, aggregated for the dashboard.
type DaySummary struct {
	Date      time.Time             `json:"date"`
	Nutrition calc.NutritionData    `json:"nutrition"`
	Exercises []calc.ExerciseEntry  `json:"exercises"`
	WaterMl   float64               `json:"water_ml"`
	Steps     int                   `json:"steps"`
	FoodCount int                   `json:"food_count"`
}

// Summarize aggregates the day's logs into calculator inputs.
func (s *DiaryService) Summarize(ctx context.Context, userID uuid.UUID, date time.Time) (*DaySummary, error) {
	start, end := dayWindow(date)

	foods, err := s.ListFood(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	items := make([]calc.NutritionData, len(foods))
	for i, f := range foods {
		items[i] = calc.NutritionData{
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
			Fiber:    f.Fiber,
			Sodium:   f.Sodium,
		}
	}

	exerciseLogs, err := s.ListExercise(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	exercises := make([]calc.ExerciseEntry, len(exerciseLogs))
	for i, e := range exerciseLogs {
		exercises[i] = calc.ExerciseEntry{
			Type:            calc.ExerciseType(e.ExerciseType),
			DurationMinutes: e.DurationMinutes,
		}
	}

	var water float64
	if err := s.db.WithContext(ctx).
		Model(&models.WaterLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&water).Error; err != nil {
		return nil, err
	}

	var stepRecord models.StepCount
	steps := 0
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		First(&stepRecord).Error
	if err == nil {
		steps = stepRecord.Steps
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return &DaySummary{
		Date:      start,
		Nutrition: calc.SumNutrition(items),
		Exercises: exercises,
		WaterMl:   water,
		Steps:     steps,
		FoodCount: len(foods),
	}, nil
}
