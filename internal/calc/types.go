// Package calc implements the energy and nutrition calculation engine.
//
// Everything in this package is a pure function over caller-supplied values:
// no database, no clock, no network. The service layer gathers a user's
// biometric profile and the day's logged intake, calls into this package, and
// persists or serves whatever comes back.
package calc

// Gender as reported during onboarding. Unrecognised values are treated the
// same as GenderUnspecified.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "prefer_not_to_say"
)

// ActivityLevel is the qualitative self-reported activity tier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the primary driver of the calorie offset from TDEE.
type Goal string

const (
	GoalLoseWeight  Goal = "lose_weight"
	GoalGainWeight  Goal = "gain_weight"
	GoalMaintain    Goal = "maintain"
	GoalBuildMuscle Goal = "build_muscle"
)

// HealthGoal is a secondary, order-independent target modifier.
type HealthGoal string

const (
	HealthGoalMuscleGain       HealthGoal = "muscle_gain"
	HealthGoalHealthyBowels    HealthGoal = "healthy_bowels"
	HealthGoalImproveHydration HealthGoal = "improve_hydration"
	HealthGoalBloodSugar       HealthGoal = "blood_sugar_control"
)

// Condition is a safety-relevant health condition. ConditionNone is a valid
// singleton meaning no modifiers apply.
type Condition string

const (
	ConditionNone                 Condition = "none"
	ConditionDiabetes             Condition = "diabetes"
	ConditionT1DM                 Condition = "t1dm"
	ConditionT2DM                 Condition = "t2dm"
	ConditionHypertension         Condition = "hypertension"
	ConditionKidneyDisease        Condition = "kidney_disease"
	ConditionHeartDisease         Condition = "heart_disease"
	ConditionCoronaryHeartDisease Condition = "coronary_heart_disease"
)

// BiometricProfile holds the body metrics a calculation needs. Callers are
// responsible for weight and height being positive; missing optional fields
// should be filled via ResolveDefaults before calling any calculator.
type BiometricProfile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
}

// Default values applied by ResolveDefaults when onboarding left a field blank.
const (
	DefaultAge = 30
)

// ResolveDefaults returns a copy of p with unset optional fields replaced by
// their documented defaults: age 30, gender treated as unspecified, activity
// level moderate. Calculators assume a fully-specified profile, so this is the
// single place fallback logic lives.
func ResolveDefaults(p BiometricProfile) BiometricProfile {
	if p.Age <= 0 {
		p.Age = DefaultAge
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
	default:
		p.Gender = GenderUnspecified
	}
	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
	default:
		p.ActivityLevel = ActivityModerate
	}
	return p
}

// NutrientRange is an inclusive target band. Every range produced by this
// package satisfies 0 <= Min <= Max.
type NutrientRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the centre of the band.
func (r NutrientRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v falls inside the band, inclusive.
func (r NutrientRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DailyTargets is the personalised daily intake prescription produced by
// CalculateDailyTargets. All fields are rounded to the nearest whole unit
// except WaterMl, which is returned as computed.
type DailyTargets struct {
	Calories NutrientRange `json:"calories"`
	Protein  NutrientRange `json:"protein"`
	Carbs    NutrientRange `json:"carbs"`
	Fat      NutrientRange `json:"fat"`
	Fiber    NutrientRange `json:"fiber"`
	Sodium   NutrientRange `json:"sodium"`
	WaterMl  float64       `json:"water_ml"`
	Iron     NutrientRange `json:"iron"`
	Calcium  NutrientRange `json:"calcium"`
}

// NutritionData is the macro/micronutrient content of a single food item or a
// day's total.
type NutritionData struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// SumNutrition aggregates logged items by per-field summation. Zero items
// yields the zero value.
func SumNutrition(items []NutritionData) NutritionData {
	var total NutritionData
	for _, it := range items {
		total.Calories += it.Calories
		total.Protein += it.Protein
		total.Carbs += it.Carbs
		total.Fat += it.Fat
		total.Fiber += it.Fiber
		total.Sodium += it.Sodium
	}
	return total
}

// ExerciseEntry is one logged bout of exercise, consumed transiently by
// CalculateEnergyBalance.
type ExerciseEntry struct {
	Type            ExerciseType
	DurationMinutes float64
}

// EnergyBalance is the day's net energy picture, recomputed fresh on each
// call. All values are rounded to the nearest integer for display.
type EnergyBalance struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	Intake         int `json:"intake"`
	ActivityBurn   int `json:"activity_burn"`
	TotalBurn      int `json:"total_burn"`
	NetBalance     int `json:"net_balance"`
	RemainingQuota int `json:"remaining_quota"`
}
