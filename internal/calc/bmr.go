package calc

// activityMultipliers maps each activity level to its TDEE multiplier. This is
// the single source of truth for valid levels; unknown levels fall back to
// moderate via ActivityMultiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// CalculateBMR computes Basal Metabolic Rate via Mifflin-St Jeor.
// Precondition: weightKg > 0, heightCm > 0, age >= 0.
//
// The sex offset is +5 for male and -161 for female; for other or unspecified
// genders the average of the two (-78) is used.
func CalculateBMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		return base + 5
	case GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

// CalculateBMRHarrisBenedict computes BMR via the revised Harris-Benedict
// equations, kept as a selectable alternative to Mifflin-St Jeor. For other or
// unspecified genders the arithmetic mean of the male and female estimates is
// returned.
func CalculateBMRHarrisBenedict(weightKg, heightCm float64, age int, gender Gender) float64 {
	male := 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	female := 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	switch gender {
	case GenderMale:
		return male
	case GenderFemale:
		return female
	default:
		return (male + female) / 2
	}
}

// ActivityMultiplier returns the TDEE multiplier for a level. Unknown or
// missing levels default to moderate (1.55).
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[ActivityModerate]
}

// CalculateTDEE scales a BMR by the activity multiplier.
func CalculateTDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}
