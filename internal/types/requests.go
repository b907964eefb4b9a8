package types

import "time"

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the onboarding / profile-edit form. Pointer
// fields distinguish "not provided" from zero values; the profile defaults
// documented in internal/calc apply to whatever stays unset.
type UpdateProfileRequest struct {
	HeightCm      *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg      *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	Age           *int     `json:"age" binding:"omitempty,gte=0"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	HealthGoals   []string `json:"health_goals"`
	Conditions    []string `json:"conditions"`
}

// LogFoodRequest is the payload for POST /diary/food.
type LogFoodRequest struct {
	Name     string     `json:"name" binding:"required"`
	MealType string     `json:"meal_type"`
	Calories float64    `json:"calories" binding:"gte=0"`
	Protein  float64    `json:"protein" binding:"gte=0"`
	Carbs    float64    `json:"carbs" binding:"gte=0"`
	Fat      float64    `json:"fat" binding:"gte=0"`
	Fiber    float64    `json:"fiber" binding:"gte=0"`
	Sodium   float64    `json:"sodium" binding:"gte=0"`
	PhotoKey string     `json:"photo_key"`
	LoggedAt *time.Time `json:"logged_at"`
}

// LogExerciseRequest is the payload for POST /diary/exercise.
type LogExerciseRequest struct {
	ExerciseType    string     `json:"exercise_type" binding:"required"`
	DurationMinutes float64    `json:"duration_minutes" binding:"required,gt=0"`
	LoggedAt        *time.Time `json:"logged_at"`
}

// LogWaterRequest is the payload for POST /diary/water.
type LogWaterRequest struct {
	AmountMl float64    `json:"amount_ml" binding:"required,gt=0"`
	LoggedAt *time.Time `json:"logged_at"`
}

// UpdateStepsRequest is the payload for PUT /diary/steps.
type UpdateStepsRequest struct {
	Steps int        `json:"steps" binding:"gte=0"`
	Date  *time.Time `json:"date"`
}

// MacroSplitRequest is the payload for POST /metrics/macro-split.
type MacroSplitRequest struct {
	Protein float64 `json:"protein" binding:"gte=0"`
	Carbs   float64 `json:"carbs" binding:"gte=0"`
	Fat     float64 `json:"fat" binding:"gte=0"`
}
