package service

import (
	"errors"
	"fmt"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

// ErrImplausible is returned when a plausibility check was requested and the
// reported calories disagree with the macros.
var ErrImplausible = errors.New("reported calories do not match macros")

type AddFoodInput struct {
	Name    string
	Macros  food.Macronutrients
	Serving food.Serving
	// Check runs the calorie plausibility check before inserting.
	Check bool
}

type AddFoodResult struct {
	Food         food.Food
	Result       store.InsertResult
	Plausibility *food.Plausibility
}

type UpdateFoodInput struct {
	Name    string
	Macros  food.Macronutrients
	Serving food.Serving
	Check   bool
}

// AddFood normalizes the reported macros and stores the food. A duplicate
// name is reported through AddFoodResult.Result, not as an error.
func AddFood(s store.FoodStore, in AddFoodInput) (AddFoodResult, error) {
	f, p, err := prepareFood(in.Name, in.Macros, in.Serving, in.Check)
	if err != nil {
		return AddFoodResult{Plausibility: p}, err
	}
	res, err := s.Insert(f)
	if err != nil {
		return AddFoodResult{}, err
	}
	return AddFoodResult{Food: f, Result: res, Plausibility: p}, nil
}

// UpdateFood re-normalizes and overwrites a stored food. It returns the number
// of rows changed, 0 when no food has that name.
func UpdateFood(s store.FoodStore, in UpdateFoodInput) (int64, error) {
	f, _, err := prepareFood(in.Name, in.Macros, in.Serving, in.Check)
	if err != nil {
		return 0, err
	}
	return s.Update(f)
}

// LookupFood returns the food named name, or nil when it is not stored.
func LookupFood(s store.FoodStore, name string) (*food.Food, error) {
	foods, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, nil
	}
	return &foods[0], nil
}

func prepareFood(name string, macros food.Macronutrients, serving food.Serving, check bool) (food.Food, *food.Plausibility, error) {
	name, err := normalizeName(name)
	if err != nil {
		return food.Food{}, nil, err
	}
	if err := validateMacros(macros); err != nil {
		return food.Food{}, nil, err
	}
	f, err := food.New(name, macros, serving)
	if err != nil {
		return food.Food{}, nil, err
	}
	if !check {
		return f, nil, nil
	}
	p, err := food.CheckCalories(f)
	if err != nil {
		return food.Food{}, nil, err
	}
	if !p.Plausible {
		return food.Food{}, &p, fmt.Errorf("%w: %q reports %.1f kcal/100g, macros suggest %.1f (off by %.0f%%)",
			ErrImplausible, name, p.ReportedCalories, p.EstimatedCalories, p.RelativeError*100)
	}
	return f, &p, nil
}
