package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() TargetInput {
	return TargetInput{
		Profile: BiometricProfile{
			WeightKg:      70,
			HeightCm:      175,
			Age:           30,
			Gender:        GenderMale,
			ActivityLevel: ActivityModerate,
		},
		Goal: GoalMaintain,
	}
}

// assertWellFormed checks the invariants every produced target set must hold:
// min <= max and nothing negative.
func assertWellFormed(t *testing.T, d DailyTargets) {
	t.Helper()
	for name, r := range map[string]NutrientRange{
		"calories": d.Calories, "protein": d.Protein, "carbs": d.Carbs,
		"fat": d.Fat, "fiber": d.Fiber, "sodium": d.Sodium,
		"iron": d.Iron, "calcium": d.Calcium,
	} {
		assert.LessOrEqual(t, r.Min, r.Max, "%s: min must not exceed max", name)
		assert.GreaterOrEqual(t, r.Min, 0.0, "%s: min must be non-negative", name)
	}
	assert.GreaterOrEqual(t, d.WaterMl, 0.0)
}

func TestCalorieRangePerGoal(t *testing.T) {
	in := baseInput()
	bmr := CalculateBMR(70, 175, 30, GenderMale)
	tdee := CalculateTDEE(bmr, ActivityModerate)

	cases := []struct {
		goal     Goal
		min, max float64
	}{
		{GoalLoseWeight, tdee - 750, tdee - 500},
		{GoalGainWeight, tdee + 300, tdee + 500},
		{GoalBuildMuscle, tdee + 300, tdee + 500},
		{GoalMaintain, tdee - 200, tdee + 200},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			in.Goal = tc.goal
			d := CalculateDailyTargets(in)
			assert.Equal(t, math.Round(tc.min), d.Calories.Min)
			assert.Equal(t, math.Round(tc.max), d.Calories.Max)
			assertWellFormed(t, d)
		})
	}
}

func TestProteinRange(t *testing.T) {
	in := baseInput()
	d := CalculateDailyTargets(in)
	assert.Equal(t, math.Round(1.6*70), d.Protein.Min)
	assert.Equal(t, math.Round(2.2*70), d.Protein.Max)

	// Muscle building raises the band.
	in.Goal = GoalBuildMuscle
	d = CalculateDailyTargets(in)
	assert.Equal(t, math.Round(1.8*70), d.Protein.Min)
	assert.Equal(t, math.Round(2.4*70), d.Protein.Max)

	// So does the muscle_gain health goal on its own.
	in = baseInput()
	in.HealthGoals = []HealthGoal{HealthGoalMuscleGain}
	d = CalculateDailyTargets(in)
	assert.Equal(t, math.Round(1.8*70), d.Protein.Min)
}

func TestKidneyDiseaseProteinOverride(t *testing.T) {
	// The renal restriction wins regardless of goal.
	for _, goal := range []Goal{GoalLoseWeight, GoalGainWeight, GoalMaintain, GoalBuildMuscle} {
		in := baseInput()
		in.Goal = goal
		in.Conditions = []Condition{ConditionKidneyDisease}
		d := CalculateDailyTargets(in)
		assert.LessOrEqual(t, d.Protein.Max, 70*0.8, "goal %s must not escape the renal protein cap", goal)
		assertWellFormed(t, d)
	}
}

func TestCarbRangeDiabetesNarrowing(t *testing.T) {
	in := baseInput()
	d := CalculateDailyTargets(in)
	avg := d.Calories.Midpoint()
	// Rounded range midpoints drift by at most 0.5 per bound.
	assert.InDelta(t, avg*0.40/4, d.Carbs.Min, 1)
	assert.InDelta(t, avg*0.50/4, d.Carbs.Max, 1)

	for _, c := range []Condition{ConditionDiabetes, ConditionT1DM, ConditionT2DM} {
		in.Conditions = []Condition{c}
		d = CalculateDailyTargets(in)
		avg = d.Calories.Midpoint()
		assert.InDelta(t, avg*0.35/4, d.Carbs.Min, 1, "condition %s", c)
		assert.InDelta(t, avg*0.45/4, d.Carbs.Max, 1, "condition %s", c)
	}
}

func TestFatRangeFixedShare(t *testing.T) {
	d := CalculateDailyTargets(baseInput())
	avg := d.Calories.Midpoint()
	assert.InDelta(t, avg*0.20/9, d.Fat.Min, 1)
	assert.InDelta(t, avg*0.30/9, d.Fat.Max, 1)
}

func TestFiberRange(t *testing.T) {
	in := baseInput()
	d := CalculateDailyTargets(in)
	assert.Equal(t, NutrientRange{Min: 25, Max: 35}, d.Fiber)

	in.HealthGoals = []HealthGoal{HealthGoalHealthyBowels}
	assert.Equal(t, NutrientRange{Min: 30, Max: 40}, CalculateDailyTargets(in).Fiber)

	in.HealthGoals = []HealthGoal{HealthGoalBloodSugar}
	assert.Equal(t, NutrientRange{Min: 30, Max: 40}, CalculateDailyTargets(in).Fiber)
}

func TestSodiumTightening(t *testing.T) {
	d := CalculateDailyTargets(baseInput())
	assert.Equal(t, NutrientRange{Min: 1500, Max: 2300}, d.Sodium)

	for _, c := range []Condition{
		ConditionHypertension,
		ConditionHeartDisease,
		ConditionCoronaryHeartDisease,
		ConditionKidneyDisease,
	} {
		in := baseInput()
		in.Conditions = []Condition{c}
		d = CalculateDailyTargets(in)
		assert.LessOrEqual(t, d.Sodium.Max, 1500.0, "condition %s must tighten sodium", c)
	}

	// Multiple qualifying conditions do not stack below the tightened band.
	in := baseInput()
	in.Conditions = []Condition{ConditionHypertension, ConditionHeartDisease, ConditionKidneyDisease}
	d = CalculateDailyTargets(in)
	assert.Equal(t, NutrientRange{Min: 1000, Max: 1500}, d.Sodium)
}

func TestCalorieRangeClampedAtZero(t *testing.T) {
	// A small, sedentary, elderly profile has a TDEE under the 750 kcal
	// lose_weight deficit; the band clamps at zero instead of going negative.
	in := TargetInput{
		Profile: BiometricProfile{
			WeightKg:      30,
			HeightCm:      130,
			Age:           80,
			Gender:        GenderFemale,
			ActivityLevel: ActivitySedentary,
		},
		Goal: GoalLoseWeight,
	}

	bmr := CalculateBMR(30, 130, 80, GenderFemale)
	tdee := CalculateTDEE(bmr, ActivitySedentary)
	require.Less(t, tdee, 750.0, "profile must sit below the deficit for this test to bite")

	d := CalculateDailyTargets(in)
	assert.Equal(t, 0.0, d.Calories.Min)
	assert.Equal(t, math.Round(tdee-500), d.Calories.Max)
	assertWellFormed(t, d)
}

func TestWaterTarget(t *testing.T) {
	in := baseInput()
	assert.Equal(t, 70*35.0, CalculateDailyTargets(in).WaterMl)

	in.Profile.ActivityLevel = ActivityActive
	assert.Equal(t, 70*40.0, CalculateDailyTargets(in).WaterMl)

	in.Profile.ActivityLevel = ActivityVeryActive
	assert.Equal(t, 70*40.0, CalculateDailyTargets(in).WaterMl)

	// Hydration goal adds a flat +5 ml/kg on top of whichever base applies.
	in.HealthGoals = []HealthGoal{HealthGoalImproveHydration}
	assert.Equal(t, 70*45.0, CalculateDailyTargets(in).WaterMl)

	in.Profile.ActivityLevel = ActivityModerate
	assert.Equal(t, 70*40.0, CalculateDailyTargets(in).WaterMl)
}

func TestSupplementaryMicronutrients(t *testing.T) {
	in := baseInput()
	d := CalculateDailyTargets(in)
	assert.Equal(t, NutrientRange{Min: 8, Max: 11}, d.Iron)
	assert.Equal(t, NutrientRange{Min: 1000, Max: 1200}, d.Calcium)

	in.Profile.Gender = GenderFemale
	assert.Equal(t, NutrientRange{Min: 18, Max: 27}, CalculateDailyTargets(in).Iron)

	in.Profile.Age = 51
	assert.Equal(t, NutrientRange{Min: 1200, Max: 1500}, CalculateDailyTargets(in).Calcium)
}

func TestTargetsDeterministic(t *testing.T) {
	in := baseInput()
	in.Goal = GoalLoseWeight
	in.HealthGoals = []HealthGoal{HealthGoalImproveHydration, HealthGoalMuscleGain}
	in.Conditions = []Condition{ConditionT2DM, ConditionHypertension}

	first := CalculateDailyTargets(in)
	second := CalculateDailyTargets(in)
	require.Equal(t, first, second, "identical inputs must yield identical targets")
}

func TestTargetsDefaultsApplied(t *testing.T) {
	// Only weight and height supplied: age, gender and activity level take
	// their documented defaults instead of failing.
	in := TargetInput{Profile: BiometricProfile{WeightKg: 70, HeightCm: 175}}
	d := CalculateDailyTargets(in)
	assertWellFormed(t, d)

	resolved := baseInput()
	resolved.Profile.Gender = GenderUnspecified
	assert.Equal(t, CalculateDailyTargets(resolved), d)
}
