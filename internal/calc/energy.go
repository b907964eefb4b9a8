package calc

import "math"

// ExerciseType identifies a logged activity for MET lookup.
type ExerciseType string

const (
	ExerciseWalking    ExerciseType = "walking"
	ExerciseRunning    ExerciseType = "running"
	ExerciseCycling    ExerciseType = "cycling"
	ExerciseSwimming   ExerciseType = "swimming"
	ExerciseStrength   ExerciseType = "strength"
	ExerciseYoga       ExerciseType = "yoga"
	ExerciseHIIT       ExerciseType = "hiit"
	ExerciseDancing    ExerciseType = "dancing"
	ExerciseHiking     ExerciseType = "hiking"
	ExerciseTeamSports ExerciseType = "team_sports"
)

// defaultMET is used for exercise types not in the table.
const defaultMET = 4.0

// metValues maps exercise types to Metabolic Equivalent of Task constants.
var metValues = map[ExerciseType]float64{
	ExerciseWalking:    3.5,
	ExerciseRunning:    9.8,
	ExerciseCycling:    7.5,
	ExerciseSwimming:   8.0,
	ExerciseStrength:   6.0,
	ExerciseYoga:       2.5,
	ExerciseHIIT:       10.0,
	ExerciseDancing:    5.5,
	ExerciseHiking:     6.0,
	ExerciseTeamSports: 7.0,
}

// MET returns the intensity multiplier for an exercise type, falling back to
// defaultMET for unknown types.
func MET(t ExerciseType) float64 {
	if m, ok := metValues[t]; ok {
		return m
	}
	return defaultMET
}

// ExerciseCalories estimates the energy cost of one exercise bout:
// MET x weight x hours.
func ExerciseCalories(e ExerciseEntry, weightKg float64) float64 {
	return MET(e.Type) * weightKg * (e.DurationMinutes / 60)
}

// StepCalories is a linear per-step estimate scaled by body weight relative
// to a 70 kg reference.
func StepCalories(steps int, weightKg float64) float64 {
	return float64(steps) * 0.04 * (weightKg / 70)
}

// CalculateEnergyBalance combines TDEE, logged exercise and steps against
// consumed calories to produce the day's net energy summary. A nil or empty
// exercise slice simply contributes zero burn. The remaining quota is the
// midpoint of the calorie target minus intake, with activity burn credited
// back.
func CalculateEnergyBalance(
	profile BiometricProfile,
	caloriesConsumed float64,
	exercises []ExerciseEntry,
	steps int,
	targets DailyTargets,
) EnergyBalance {
	p := ResolveDefaults(profile)

	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)

	var exerciseBurn float64
	for _, e := range exercises {
		exerciseBurn += ExerciseCalories(e, p.WeightKg)
	}

	activityBurn := exerciseBurn + StepCalories(steps, p.WeightKg)
	totalBurn := tdee + activityBurn
	netBalance := caloriesConsumed - totalBurn
	remaining := targets.Calories.Midpoint() - caloriesConsumed + activityBurn

	return EnergyBalance{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		Intake:         int(math.Round(caloriesConsumed)),
		ActivityBurn:   int(math.Round(activityBurn)),
		TotalBurn:      int(math.Round(totalBurn)),
		NetBalance:     int(math.Round(netBalance)),
		RemainingQuota: int(math.Round(remaining)),
	}
}
