package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriflow/backend/internal/calc"
)

// NutrientProgress pairs a consumed amount with its target band and
// classification.
type NutrientProgress struct {
	Consumed float64            `json:"consumed"`
	Target   calc.NutrientRange `json:"target"`
	Progress calc.Progress      `json:"progress"`
}

// DashboardView is the day summary served to the app's home screen.
type DashboardView struct {
	Date      time.Time                   `json:"date"`
	Balance   calc.EnergyBalance          `json:"balance"`
	Nutrients map[string]NutrientProgress `json:"nutrients"`
	Macros    calc.MacroPercentages       `json:"macro_split"`
	WaterMl   float64                     `json:"water_ml"`
	WaterGoal float64                     `json:"water_goal_ml"`
	Steps     int                         `json:"steps"`
}

// DashboardService assembles the inputs for the energy balance calculation
// from the profile and diary services and runs the calculators. It holds no
// state of its own.
type DashboardService struct {
	profiles IProfileService
	diary    IDiaryService
}

// Ensure DashboardService implements IDashboardService
var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(profiles IProfileService, diary IDiaryService) *DashboardService {
	return &DashboardService{
		profiles: profiles,
		diary:    diary,
	}
}

// View computes the dashboard for one day: the energy balance plus
// per-nutrient progress against the active targets.
func (s *DashboardService) View(ctx context.Context, userID uuid.UUID, date time.Time) (*DashboardView, error) {
	input, err := s.profiles.TargetInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := s.profiles.GetTargets(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.diary.Summarize(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	balance := calc.CalculateEnergyBalance(
		input.Profile,
		summary.Nutrition.Calories,
		summary.Exercises,
		summary.Steps,
		*targets,
	)

	nutrients := map[string]NutrientProgress{
		"calories": progressFor(summary.Nutrition.Calories, targets.Calories),
		"protein":  progressFor(summary.Nutrition.Protein, targets.Protein),
		"carbs":    progressFor(summary.Nutrition.Carbs, targets.Carbs),
		"fat":      progressFor(summary.Nutrition.Fat, targets.Fat),
		"fiber":    progressFor(summary.Nutrition.Fiber, targets.Fiber),
		"sodium":   progressFor(summary.Nutrition.Sodium, targets.Sodium),
	}

	return &DashboardView{
		Date:      summary.Date,
		Balance:   balance,
		Nutrients: nutrients,
		Macros:    calc.CalculateMacroPercentages(summary.Nutrition),
		WaterMl:   summary.WaterMl,
		WaterGoal: targets.WaterMl,
		Steps:     summary.Steps,
	}, nil
}

func progressFor(consumed float64, target calc.NutrientRange) NutrientProgress {
	return NutrientProgress{
		Consumed: consumed,
		Target:   target,
		Progress: calc.CalculateProgress(consumed, target),
	}
}
