// Command seed inserts demo users with filled-in profiles so a fresh
// environment has data to exercise the dashboard against.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nutriflow/backend/internal/calc"
	"github.com/nutriflow/backend/internal/models"
)

type demoUser struct {
	name        string
	email       string
	profile     models.UserProfile
	healthGoals []calc.HealthGoal
	conditions  []calc.Condition
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	password := "demopassword123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	demoUsers := []demoUser{
		{
			name:  "Maya Lindqvist",
			email: "maya@example.com",
			profile: models.UserProfile{
				HeightCm:      168,
				WeightKg:      62,
				Age:           29,
				Gender:        string(calc.GenderFemale),
				ActivityLevel: string(calc.ActivityActive),
				Goal:          string(calc.GoalMaintain),
			},
			healthGoals: []calc.HealthGoal{calc.HealthGoalImproveHydration},
		},
		{
			name:  "Tom Okafor",
			email: "tom@example.com",
			profile: models.UserProfile{
				HeightCm:      182,
				WeightKg:      95,
				Age:           41,
				Gender:        string(calc.GenderMale),
				ActivityLevel: string(calc.ActivitySedentary),
				Goal:          string(calc.GoalLoseWeight),
			},
			conditions: []calc.Condition{calc.ConditionHypertension},
		},
		{
			name:  "Ana Petrova",
			email: "ana@example.com",
			profile: models.UserProfile{
				HeightCm:      175,
				WeightKg:      68,
				Age:           24,
				Gender:        string(calc.GenderFemale),
				ActivityLevel: string(calc.ActivityModerate),
				Goal:          string(calc.GoalBuildMuscle),
			},
			healthGoals: []calc.HealthGoal{calc.HealthGoalMuscleGain},
		},
	}

	for _, du := range demoUsers {
		var existing models.User
		err := db.Where("email = ?", du.email).First(&existing).Error
		if err == nil {
			fmt.Printf("User already exists: %s\n", du.email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", du.email, err)
		}

		user := models.User{
			ID:           uuid.New(),
			Name:         du.name,
			Email:        du.email,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", du.email, err)
		}

		profile := du.profile
		profile.ID = uuid.New()
		profile.UserID = user.ID
		if err := db.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create profile for %s: %v", du.email, err)
		}

		for _, g := range du.healthGoals {
			if err := db.Create(&models.UserHealthGoal{ID: uuid.New(), UserID: user.ID, Goal: string(g)}).Error; err != nil {
				log.Fatalf("Failed to create health goal for %s: %v", du.email, err)
			}
		}
		for _, c := range du.conditions {
			if err := db.Create(&models.UserCondition{ID: uuid.New(), UserID: user.ID, Condition: string(c)}).Error; err != nil {
				log.Fatalf("Failed to create condition for %s: %v", du.email, err)
			}
		}

		fmt.Printf("Created user: %s (password: %s)\n", du.email, password)
	}

	fmt.Println("Seeding complete.")
}
