package food

import (
	"fmt"
	"math"
)

const (
	caloriesPerGramProteinCarb = 4
	caloriesPerGramFat         = 9

	// DefaultCalorieTolerance is the largest relative error between reported
	// and estimated calories that still counts as plausible.
	DefaultCalorieTolerance = 0.10
)

type Plausibility struct {
	ReportedCalories  float64 `json:"reported_calories"`
	EstimatedCalories float64 `json:"estimated_calories"`
	RelativeError     float64 `json:"relative_error"`
	Plausible         bool    `json:"plausible"`
}

// EstimateCalories derives calories from macros. Fiber grams are excluded from
// the carbohydrate contribution.
func EstimateCalories(f Food) float64 {
	return caloriesPerGramProteinCarb*(f.Protein+f.Carb-f.Fiber) + caloriesPerGramFat*f.Fat
}

// IsPlausible reports whether f's calories are within 10% of the estimate.
func IsPlausible(f Food) (bool, error) {
	p, err := CheckCalories(f)
	if err != nil {
		return false, err
	}
	return p.Plausible, nil
}

func CheckCalories(f Food) (Plausibility, error) {
	estimated := EstimateCalories(f)
	if estimated == 0 {
		return Plausibility{}, fmt.Errorf("check %q: %w", f.Name, ErrZeroEstimate)
	}
	relErr := math.Abs(f.Calories-estimated) / estimated
	return Plausibility{
		ReportedCalories:  f.Calories,
		EstimatedCalories: estimated,
		RelativeError:     relErr,
		Plausible:         relErr <= DefaultCalorieTolerance,
	}, nil
}
