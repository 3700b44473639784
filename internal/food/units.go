package food

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GramsPerOunce is the ounce weight every stored per-100g value was derived
// with: 28, not 28.349523125.
const GramsPerOunce = 28

const (
	ouncesPerPound     = 16
	defaultServingSize = 100
)

type Unit string

const (
	UnitGrams        Unit = "g"
	UnitOunces       Unit = "oz"
	UnitPoundsOunces Unit = "lbs"
)

var unitTable = map[string]Unit{
	"g":   UnitGrams,
	"oz":  UnitOunces,
	"lbs": UnitPoundsOunces,
}

// Units lists the accepted serving units in display order.
func Units() []Unit {
	return []Unit{UnitGrams, UnitOunces, UnitPoundsOunces}
}

// UnitList joins Units for help and error text.
func UnitList() string {
	names := make([]string, 0, len(unitTable))
	for _, u := range Units() {
		names = append(names, string(u))
	}
	return strings.Join(names, ", ")
}

// ParseUnit resolves a unit name case-insensitively.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported unit %q (expected one of %s)", ErrInvalidServing, unit, UnitList())
	}
	return u, nil
}

// Serving is the quantity a set of macronutrients was reported for.
// SecondarySize only applies to UnitPoundsOunces and holds the ounces beyond
// the whole pounds in Size.
type Serving struct {
	Unit          Unit
	Size          float64
	SecondarySize float64
}

// PerHundredGrams is the serving every stored Food is expressed in.
func PerHundredGrams() Serving {
	return Serving{Unit: UnitGrams, Size: defaultServingSize}
}

func NewServing(unit string, size, secondarySize float64) (Serving, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Serving{}, err
	}
	if err := validateNumber("serving size", size); err != nil {
		return Serving{}, err
	}
	if err := validateNumber("secondary serving size", secondarySize); err != nil {
		return Serving{}, err
	}
	return Serving{Unit: u, Size: size, SecondarySize: secondarySize}, nil
}

// ParseServing builds a Serving from textual input. An empty secondary size
// defaults to 0.
func ParseServing(unit, size, secondarySize string) (Serving, error) {
	s, err := parseNumber("serving size", size)
	if err != nil {
		return Serving{}, err
	}
	second := 0.0
	if strings.TrimSpace(secondarySize) != "" {
		second, err = parseNumber("secondary serving size", secondarySize)
		if err != nil {
			return Serving{}, err
		}
	}
	return NewServing(unit, s, second)
}

// Grams converts the serving to its weight in grams.
func (s Serving) Grams() float64 {
	switch s.Unit {
	case UnitGrams:
		return s.Size
	case UnitOunces:
		return s.Size * GramsPerOunce
	default:
		totalOunces := s.Size*ouncesPerPound + s.SecondarySize
		return totalOunces * GramsPerOunce
	}
}

func (s Serving) String() string {
	if s.Unit == UnitPoundsOunces {
		return fmt.Sprintf("%g lbs %g oz", s.Size, s.SecondarySize)
	}
	return fmt.Sprintf("%g %s", s.Size, s.Unit)
}

func parseNumber(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q is out of range", ErrInvalidServing, name, value)
		}
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidServing, name, value)
	}
	return v, validateNumber(name, v)
}

func validateNumber(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidServing, name)
	}
	return nil
}
