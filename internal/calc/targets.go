package calc

import "math"

// TargetInput is everything CalculateDailyTargets needs: the biometric
// profile plus the user's goal context. HealthGoals and Conditions are
// order-independent sets and may be empty.
type TargetInput struct {
	Profile     BiometricProfile
	Goal        Goal
	HealthGoals []HealthGoal
	Conditions  []Condition
}

func (in TargetInput) hasHealthGoal(g HealthGoal) bool {
	for _, hg := range in.HealthGoals {
		if hg == g {
			return true
		}
	}
	return false
}

func (in TargetInput) hasCondition(c Condition) bool {
	for _, cond := range in.Conditions {
		if cond == c {
			return true
		}
	}
	return false
}

func (in TargetInput) hasDiabetes() bool {
	return in.hasCondition(ConditionDiabetes) || in.hasCondition(ConditionT1DM) || in.hasCondition(ConditionT2DM)
}

func roundRange(min, max float64) NutrientRange {
	return NutrientRange{Min: math.Round(min), Max: math.Round(max)}
}

// CalculateDailyTargets derives the personalised daily intake prescription
// from a profile and goal context. It is deterministic: identical inputs
// always produce identical outputs.
//
// Condition overrides are applied in a fixed order so that interactions are
// predictable: sodium-affecting conditions first, then the kidney-disease
// protein restriction, then the diabetes carb narrowing. The kidney protein
// cap is a safety override and wins over every goal-based adjustment.
func CalculateDailyTargets(in TargetInput) DailyTargets {
	p := ResolveDefaults(in.Profile)

	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)

	// Calorie band shifted from TDEE by the goal offset.
	var calMin, calMax float64
	switch in.Goal {
	case GoalLoseWeight:
		calMin, calMax = tdee-750, tdee-500
	case GoalGainWeight, GoalBuildMuscle:
		calMin, calMax = tdee+300, tdee+500
	default: // maintain
		calMin, calMax = tdee-200, tdee+200
	}
	// A deficit larger than a small TDEE would prescribe negative intake.
	calMin = math.Max(calMin, 0)
	calMax = math.Max(calMax, 0)
	avgCalories := (calMin + calMax) / 2

	// Sodium: tightened if any cardiovascular or renal condition is present.
	// Multiple qualifying conditions do not stack further.
	sodiumMin, sodiumMax := 1500.0, 2300.0
	if in.hasCondition(ConditionHypertension) ||
		in.hasCondition(ConditionHeartDisease) ||
		in.hasCondition(ConditionCoronaryHeartDisease) ||
		in.hasCondition(ConditionKidneyDisease) {
		sodiumMin, sodiumMax = 1000, 1500
	}

	// Protein: g/kg band, raised for muscle building. Renal protein
	// restriction overrides the goal entirely.
	protMin, protMax := 1.6, 2.2
	if in.Goal == GoalBuildMuscle || in.hasHealthGoal(HealthGoalMuscleGain) {
		protMin, protMax = 1.8, 2.4
	}
	if in.hasCondition(ConditionKidneyDisease) {
		protMin, protMax = 0.6, 0.8
	}

	// Carbs: % of average target calories at 4 kcal/g, narrowed for any
	// diabetes-type condition.
	carbPctMin, carbPctMax := 0.40, 0.50
	if in.hasDiabetes() {
		carbPctMin, carbPctMax = 0.35, 0.45
	}

	// Fiber: raised for bowel health or blood sugar control goals.
	fiberMin, fiberMax := 25.0, 35.0
	if in.hasHealthGoal(HealthGoalHealthyBowels) || in.hasHealthGoal(HealthGoalBloodSugar) {
		fiberMin, fiberMax = 30, 40
	}

	// Water: ml/kg by activity tier, plus a flat bonus for the hydration goal.
	mlPerKg := 35.0
	if p.ActivityLevel == ActivityActive || p.ActivityLevel == ActivityVeryActive {
		mlPerKg = 40
	}
	if in.hasHealthGoal(HealthGoalImproveHydration) {
		mlPerKg += 5
	}

	// Supplementary micronutrients.
	iron := NutrientRange{Min: 8, Max: 11}
	if p.Gender == GenderFemale {
		iron = NutrientRange{Min: 18, Max: 27}
	}
	calcium := NutrientRange{Min: 1000, Max: 1200}
	if p.Age > 50 {
		calcium = NutrientRange{Min: 1200, Max: 1500}
	}

	return DailyTargets{
		Calories: roundRange(calMin, calMax),
		Protein:  roundRange(protMin*p.WeightKg, protMax*p.WeightKg),
		Carbs:    roundRange(avgCalories*carbPctMin/4, avgCalories*carbPctMax/4),
		Fat:      roundRange(avgCalories*0.20/9, avgCalories*0.30/9),
		Fiber:    roundRange(fiberMin, fiberMax),
		Sodium:   roundRange(sodiumMin, sodiumMax),
		WaterMl:  p.WeightKg * mlPerKg,
		Iron:     iron,
		Calcium:  calcium,
	}
}
