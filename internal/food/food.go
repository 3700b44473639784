// Package food models a food in its canonical per-100g form and the
// arithmetic around it: serving normalization and the calorie sanity check.
package food

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidServing is returned when a serving unit or size cannot be used.
	ErrInvalidServing = errors.New("invalid serving")
	// ErrNumericDomain groups computations that would divide by zero.
	ErrNumericDomain = errors.New("numeric domain error")
	ErrZeroServing   = fmt.Errorf("%w: serving weighs 0 g", ErrNumericDomain)
	ErrZeroEstimate  = fmt.Errorf("%w: macro-derived calorie estimate is 0", ErrNumericDomain)
	// ErrNonFinite is returned when scaling overflows to Inf or NaN.
	ErrNonFinite = fmt.Errorf("%w: result is not a finite number", ErrNumericDomain)
)

// Macronutrients holds the values printed on a label for one serving.
type Macronutrients struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Carb     float64 `json:"carb" yaml:"carb"`
	Fiber    float64 `json:"fiber" yaml:"fiber"`
	Protein  float64 `json:"protein" yaml:"protein"`
}

// Micronutrients is reserved; nothing populates or stores it yet.
type Micronutrients struct{}

// Food is the stored form of a food. Every numeric field is per 100 g.
type Food struct {
	Name     string
	Calories float64
	Fat      float64
	Carb     float64
	Fiber    float64
	Protein  float64

	Micronutrients *Micronutrients
}

// New normalizes macros reported for serving into a per-100g Food.
func New(name string, macros Macronutrients, serving Serving) (Food, error) {
	per100g, err := Normalize(macros, serving)
	if err != nil {
		return Food{}, fmt.Errorf("normalize %q: %w", name, err)
	}
	return Food{
		Name:     name,
		Calories: per100g.Calories,
		Fat:      per100g.Fat,
		Carb:     per100g.Carb,
		Fiber:    per100g.Fiber,
		Protein:  per100g.Protein,
	}, nil
}

// Normalize rescales macros reported for serving to a 100 g basis.
func Normalize(macros Macronutrients, serving Serving) (Macronutrients, error) {
	scale, err := servingScale(serving)
	if err != nil {
		return Macronutrients{}, err
	}
	return macros.scale(scale).finite()
}

// Denormalize expresses f for serving, the inverse of Normalize.
func Denormalize(f Food, serving Serving) (Macronutrients, error) {
	scale, err := servingScale(serving)
	if err != nil {
		return Macronutrients{}, err
	}
	m := f.Macros()
	return Macronutrients{
		Calories: m.Calories / scale,
		Fat:      m.Fat / scale,
		Carb:     m.Carb / scale,
		Fiber:    m.Fiber / scale,
		Protein:  m.Protein / scale,
	}.finite()
}

// servingScale is the factor from serving to 100 g.
func servingScale(serving Serving) (float64, error) {
	grams := serving.Grams()
	if grams == 0 {
		return 0, ErrZeroServing
	}
	scale := 100 / grams
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale == 0 {
		return 0, fmt.Errorf("%w: serving of %s", ErrNonFinite, serving)
	}
	return scale, nil
}

// Macros returns the per-100g values of f.
func (f Food) Macros() Macronutrients {
	return Macronutrients{
		Calories: f.Calories,
		Fat:      f.Fat,
		Carb:     f.Carb,
		Fiber:    f.Fiber,
		Protein:  f.Protein,
	}
}

func (f Food) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", f.Name)
	fmt.Fprintf(&b, "Calories: %g\n", f.Calories)
	fmt.Fprintf(&b, "Fat: %g\n", f.Fat)
	fmt.Fprintf(&b, "Carbs: %g\n", f.Carb)
	fmt.Fprintf(&b, "Fiber: %g\n", f.Fiber)
	fmt.Fprintf(&b, "Protein: %g\n", f.Protein)
	return b.String()
}

func (m Macronutrients) scale(factor float64) Macronutrients {
	return Macronutrients{
		Calories: m.Calories * factor,
		Fat:      m.Fat * factor,
		Carb:     m.Carb * factor,
		Fiber:    m.Fiber * factor,
		Protein:  m.Protein * factor,
	}
}

func (m Macronutrients) finite() (Macronutrients, error) {
	for _, v := range []float64{m.Calories, m.Fat, m.Carb, m.Fiber, m.Protein} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Macronutrients{}, ErrNonFinite
		}
	}
	return m, nil
}
