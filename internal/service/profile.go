package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriflow/backend/internal/calc"
	"github.com/nutriflow/backend/internal/models"
	"github.com/nutriflow/backend/internal/types"
)

const targetsCacheTTL = 24 * time.Hour

// ProfileService stores the biometric profile and goal context, and owns the
// daily-target lifecycle: every profile write recomputes the target snapshot
// and refreshes the Redis cache.
type ProfileService struct {
	db    *gorm.DB
	redis *redis.Client // optional; nil disables caching
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB, redisClient *redis.Client) *ProfileService {
	return &ProfileService{
		db:    db,
		redis: redisClient,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetHealthGoals returns the user's health-goal set as calc values.
func (s *ProfileService) GetHealthGoals(ctx context.Context, userID uuid.UUID) ([]calc.HealthGoal, error) {
	var rows []models.UserHealthGoal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	goals := make([]calc.HealthGoal, len(rows))
	for i, r := range rows {
		goals[i] = calc.HealthGoal(r.Goal)
	}
	return goals, nil
}

// GetConditions returns the user's condition set as calc values.
func (s *ProfileService) GetConditions(ctx context.Context, userID uuid.UUID) ([]calc.Condition, error) {
	var rows []models.UserCondition
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	conditions := make([]calc.Condition, len(rows))
	for i, r := range rows {
		conditions[i] = calc.Condition(r.Condition)
	}
	return conditions, nil
}

// UpdateProfile applies the provided fields, replaces the health-goal and
// condition sets when given, recomputes the daily targets and invalidates the
// cached copy.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		profile.Goal = *req.Goal
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	if req.HealthGoals != nil {
		if err := s.replaceHealthGoals(ctx, userID, req.HealthGoals); err != nil {
			return nil, err
		}
	}
	if req.Conditions != nil {
		if err := s.replaceConditions(ctx, userID, req.Conditions); err != nil {
			return nil, err
		}
	}

	if _, err := s.RecalculateTargets(ctx, userID); err != nil {
		return nil, err
	}

	return &profile, nil
}

// RecalculateTargets runs the target calculator for the user's current
// profile state, persists a snapshot and refreshes the cache.
func (s *ProfileService) RecalculateTargets(ctx context.Context, userID uuid.UUID) (*calc.DailyTargets, error) {
	input, err := s.targetInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets := calc.CalculateDailyTargets(*input)

	snapshot := snapshotFromTargets(userID, targets)
	if err := s.db.WithContext(ctx).Create(&snapshot).Error; err != nil {
		return nil, err
	}

	s.cacheTargets(ctx, userID, targets)
	return &targets, nil
}

// GetTargets returns the active daily targets: Redis cache first, then the
// newest persisted snapshot, recomputing from the profile if neither exists.
func (s *ProfileService) GetTargets(ctx context.Context, userID uuid.UUID) (*calc.DailyTargets, error) {
	if cached := s.cachedTargets(ctx, userID); cached != nil {
		return cached, nil
	}

	var snapshot models.DailyTargetSnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&snapshot).Error
	if err == nil {
		targets := targetsFromSnapshot(snapshot)
		s.cacheTargets(ctx, userID, targets)
		return &targets, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return s.RecalculateTargets(ctx, userID)
}

// TargetInput assembles the calculator input from the stored profile state.
func (s *ProfileService) TargetInput(ctx context.Context, userID uuid.UUID) (*calc.TargetInput, error) {
	return s.targetInput(ctx, userID)
}

func (s *ProfileService) targetInput(ctx context.Context, userID uuid.UUID) (*calc.TargetInput, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	healthGoals, err := s.GetHealthGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	conditions, err := s.GetConditions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &calc.TargetInput{
		Profile: calc.ResolveDefaults(calc.BiometricProfile{
			WeightKg:      profile.WeightKg,
			HeightCm:      profile.HeightCm,
			Age:           profile.Age,
			Gender:        calc.Gender(profile.Gender),
			ActivityLevel: calc.ActivityLevel(profile.ActivityLevel),
		}),
		Goal:        calc.Goal(profile.Goal),
		HealthGoals: healthGoals,
		Conditions:  conditions,
	}, nil
}

func (s *ProfileService) replaceHealthGoals(ctx context.Context, userID uuid.UUID, goals []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserHealthGoal{}).Error; err != nil {
		return err
	}
	for _, g := range goals {
		row := models.UserHealthGoal{ID: uuid.New(), UserID: userID, Goal: g}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) replaceConditions(ctx context.Context, userID uuid.UUID, conditions []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserCondition{}).Error; err != nil {
		return err
	}
	for _, c := range conditions {
		row := models.UserCondition{ID: uuid.New(), UserID: userID, Condition: c}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func targetsCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("targets:%s", userID)
}

func (s *ProfileService) cacheTargets(ctx context.Context, userID uuid.UUID, targets calc.DailyTargets) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(targets)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, targetsCacheKey(userID), payload, targetsCacheTTL).Err(); err != nil {
		log.Printf("failed to cache targets for %s: %v", userID, err)
	}
}

func (s *ProfileService) cachedTargets(ctx context.Context, userID uuid.UUID) *calc.DailyTargets {
	if s.redis == nil {
		return nil
	}
	payload, err := s.redis.Get(ctx, targetsCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var targets calc.DailyTargets
	if err := json.Unmarshal(payload, &targets); err != nil {
		return nil
	}
	return &targets
}

func snapshotFromTargets(userID uuid.UUID, t calc.DailyTargets) models.DailyTargetSnapshot {
	return models.DailyTargetSnapshot{
		ID:          uuid.New(),
		UserID:      userID,
		CaloriesMin: t.Calories.Min, CaloriesMax: t.Calories.Max,
		ProteinMin: t.Protein.Min, ProteinMax: t.Protein.Max,
		CarbsMin: t.Carbs.Min, CarbsMax: t.Carbs.Max,
		FatMin: t.Fat.Min, FatMax: t.Fat.Max,
		FiberMin: t.Fiber.Min, FiberMax: t.Fiber.Max,
		SodiumMin: t.Sodium.Min, SodiumMax: t.Sodium.Max,
		WaterMl: t.WaterMl,
		IronMin: t.Iron.Min, IronMax: t.Iron.Max,
		CalciumMin: t.Calcium.Min, CalciumMax: t.Calcium.Max,
	}
}

func targetsFromSnapshot(s models.DailyTargetSnapshot) calc.DailyTargets {
	return calc.DailyTargets{
		Calories: calc.NutrientRange{Min: s.CaloriesMin, Max: s.CaloriesMax},
		Protein:  calc.NutrientRange{Min: s.ProteinMin, Max: s.ProteinMax},
		Carbs:    calc.NutrientRange{Min: s.CarbsMin, Max: s.CarbsMax},
		Fat:      calc.NutrientRange{Min: s.FatMin, Max: s.FatMax},
		Fiber:    calc.NutrientRange{Min: s.FiberMin, Max: s.FiberMax},
		Sodium:   calc.NutrientRange{Min: s.SodiumMin, Max: s.SodiumMax},
		WaterMl:  s.WaterMl,
		Iron:     calc.NutrientRange{Min: s.IronMin, Max: s.IronMax},
		Calcium:  calc.NutrientRange{Min: s.CalciumMin, Max: s.CalciumMax},
	}
}
