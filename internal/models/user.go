package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// UserProfile holds the biometric and goal data the calculation engine
// consumes. Enumerated fields store the string values defined in
// internal/calc; health goals and conditions live in their own tables so the
// sets can grow without schema churn.
type UserProfile struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	HeightCm      float64        `json:"height_cm"`
	WeightKg      float64        `json:"weight_kg"`
	Age           int            `json:"age"`
	Gender        string         `gorm:"size:30" json:"gender"`
	ActivityLevel string         `gorm:"size:30" json:"activity_level"`
	Goal          string         `gorm:"size:30;default:'maintain'" json:"goal"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserHealthGoal is one entry of a user's health-goal set.
type UserHealthGoal struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Goal      string    `gorm:"size:50;not null" json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCondition is one entry of a user's health-condition set. "none" is a
// valid singleton meaning no modifiers apply.
type UserCondition struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Condition string    `gorm:"size:50;not null" json:"condition"`
	CreatedAt time.Time `json:"created_at"`
}
