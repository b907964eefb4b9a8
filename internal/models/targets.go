package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyTargetSnapshot is the persisted output of the target calculator for
// one profile state. A new row is written whenever the profile or goal
// context changes; the newest row per user is the active prescription.
type DailyTargetSnapshot struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CaloriesMin float64        `json:"calories_min"`
	CaloriesMax float64        `json:"calories_max"`
	ProteinMin  float64        `json:"protein_min"`
	ProteinMax  float64        `json:"protein_max"`
	CarbsMin    float64        `json:"carbs_min"`
	CarbsMax    float64        `json:"carbs_max"`
	FatMin      float64        `json:"fat_min"`
	FatMax      float64        `json:"fat_max"`
	FiberMin    float64        `json:"fiber_min"`
	FiberMax    float64        `json:"fiber_max"`
	SodiumMin   float64        `json:"sodium_min"`
	SodiumMax   float64        `json:"sodium_max"`
	WaterMl     float64        `json:"water_ml"`
	IronMin     float64        `json:"iron_min"`
	IronMax     float64        `json:"iron_max"`
	CalciumMin  float64        `json:"calcium_min"`
	CalciumMax  float64        `json:"calcium_max"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
