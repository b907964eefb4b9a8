package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodLog is one logged food item with its nutrition content. LoggedAt is the
// moment the food was eaten, not the moment it was recorded.
type FoodLog struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	MealType    string         `gorm:"size:20" json:"meal_type"` // breakfast, lunch, dinner, snack
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fat         float64        `json:"fat"`
	Fiber       float64        `json:"fiber"`
	Sodium      float64        `json:"sodium"`
	PhotoKey    string         `gorm:"size:255" json:"photo_key,omitempty"`
	LoggedAt    time.Time      `gorm:"index;not null" json:"logged_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ExerciseLog is one logged exercise bout.
type ExerciseLog struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ExerciseType    string         `gorm:"size:50;not null" json:"exercise_type"`
	DurationMinutes float64        `json:"duration_minutes"`
	LoggedAt        time.Time      `gorm:"index;not null" json:"logged_at"`
	CreatedAt       time.Time      `json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// WaterLog is one logged drink in millilitres.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	AmountMl  float64   `json:"amount_ml"`
	LoggedAt  time.Time `gorm:"index;not null" json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

// StepCount is the step total for one calendar day, upserted as the device
// reports new readings.
type StepCount struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_steps_user_date,unique" json:"user_id"`
	Date      time.Time `gorm:"index:idx_steps_user_date,unique;not null" json:"date"`
	Steps     int       `json:"steps"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
