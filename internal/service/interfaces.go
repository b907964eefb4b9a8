package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/nutriflow/backend/internal/calc"
	"github.com/nutriflow/backend/internal/models"
	"github.com/nutriflow/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile and target operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	GetHealthGoals(ctx context.Context, userID uuid.UUID) ([]calc.HealthGoal, error)
	GetConditions(ctx context.Context, userID uuid.UUID) ([]calc.Condition, error)
	GetTargets(ctx context.Context, userID uuid.UUID) (*calc.DailyTargets, error)
	RecalculateTargets(ctx context.Context, userID uuid.UUID) (*calc.DailyTargets, error)
	TargetInput(ctx context.Context, userID uuid.UUID) (*calc.TargetInput, error)
}

// IDiaryService defines the interface for the day's logs
type IDiaryService interface {
	LogFood(ctx context.Context, userID uuid.UUID, req *types.LogFoodRequest) (*models.FoodLog, error)
	ListFood(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.FoodLog, error)
	DeleteFood(ctx context.Context, userID, entryID uuid.UUID) error
	LogExercise(ctx context.Context, userID uuid.UUID, req *types.LogExerciseRequest) (*models.ExerciseLog, error)
	ListExercise(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.ExerciseLog, error)
	DeleteExercise(ctx context.Context, userID, entryID uuid.UUID) error
	LogWater(ctx context.Context, userID uuid.UUID, req *types.LogWaterRequest) (*models.WaterLog, error)
	UpsertSteps(ctx context.Context, userID uuid.UUID, date time.Time, steps int) (*models.StepCount, error)
	Summarize(ctx context.Context, userID uuid.UUID, date time.Time) (*DaySummary, error)
}

// IDashboardService defines the interface for the home-screen summary
type IDashboardService interface {
	View(ctx context.Context, userID uuid.UUID, date time.Time) (*DashboardView, error)
}

// IPhotoService defines the interface for meal photo storage
type IPhotoService interface {
	Upload(ctx context.Context, userID uuid.UUID, body io.Reader, contentType string) (string, error)
	URL(ctx context.Context, key string) (string, error)
}
