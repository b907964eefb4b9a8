package calc

import "math"

// MacroPercentages is the share of total macro calories contributed by each
// macronutrient.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// CalculateMacroPercentages converts gram amounts to percentage-of-calories
// using 4 kcal/g for protein and carbs and 9 kcal/g for fat. All-zero macros
// return all-zero percentages rather than dividing by zero.
func CalculateMacroPercentages(n NutritionData) MacroPercentages {
	proteinCal := n.Protein * 4
	carbsCal := n.Carbs * 4
	fatCal := n.Fat * 9
	total := proteinCal + carbsCal + fatCal
	if total == 0 {
		return MacroPercentages{}
	}
	return MacroPercentages{
		Protein: proteinCal / total * 100,
		Carbs:   carbsCal / total * 100,
		Fat:     fatCal / total * 100,
	}
}

// ProgressStatus classifies a current value against a target band.
type ProgressStatus string

const (
	StatusUnder   ProgressStatus = "under"
	StatusOptimal ProgressStatus = "optimal"
	StatusOver    ProgressStatus = "over"
)

// Progress is a current value expressed relative to a target band.
type Progress struct {
	Percentage float64        `json:"percentage"`
	Status     ProgressStatus `json:"status"`
}

// CalculateProgress returns the percentage of the range midpoint reached and
// a classification: under if below Min, over if above Max, optimal otherwise.
// A zero midpoint yields zero percent instead of NaN.
func CalculateProgress(current float64, target NutrientRange) Progress {
	var pct float64
	if mid := target.Midpoint(); mid > 0 {
		pct = current / mid * 100
	}

	status := StatusOptimal
	switch {
	case current < target.Min:
		status = StatusUnder
	case current > target.Max:
		status = StatusOver
	}

	return Progress{Percentage: pct, Status: status}
}

// BMICategory labels a BMI value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// BMIResult is a body mass index value with its category.
type BMIResult struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// CalculateBMI computes weight/height^2 rounded to one decimal.
// Precondition: heightCm > 0.
func CalculateBMI(weightKg, heightCm float64) BMIResult {
	h := heightCm / 100
	bmi := math.Round(weightKg/(h*h)*10) / 10

	var cat BMICategory
	switch {
	case bmi < 18.5:
		cat = BMIUnderweight
	case bmi < 25:
		cat = BMINormal
	case bmi < 30:
		cat = BMIOverweight
	default:
		cat = BMIObese
	}
	return BMIResult{Value: bmi, Category: cat}
}

// CalculateIdealWeightRange solves the healthy BMI band [18.5, 24.9] for
// weight at the given height.
func CalculateIdealWeightRange(heightCm float64) NutrientRange {
	h := heightCm / 100
	return NutrientRange{
		Min: math.Round(18.5*h*h*10) / 10,
		Max: math.Round(24.9*h*h*10) / 10,
	}
}
