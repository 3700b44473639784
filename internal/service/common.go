package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
)

func validateNonNegativeFloat(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateMacros(m food.Macronutrients) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"calories", m.Calories},
		{"fat", m.Fat},
		{"carb", m.Carb},
		{"fiber", m.Fiber},
		{"protein", m.Protein},
	}
	for _, c := range checks {
		if err := validateNonNegativeFloat(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("food name is required")
	}
	return name, nil
}
