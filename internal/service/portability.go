package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", value)
	}
}

// ExportServing describes the serving an exported record's macros are for.
type ExportServing struct {
	Unit          string  `json:"unit" yaml:"unit"`
	Size          float64 `json:"size" yaml:"size"`
	SecondarySize float64 `json:"secondary_size,omitempty" yaml:"secondary_size,omitempty"`
}

// ExportFood is one food in an export file. Macros are as reported for
// Serving; exports always write the per-100g values with a 100 g serving.
type ExportFood struct {
	Name     string         `json:"name" yaml:"name"`
	Calories float64        `json:"calories" yaml:"calories"`
	Fat      float64        `json:"fat" yaml:"fat"`
	Carb     float64        `json:"carb" yaml:"carb"`
	Fiber    float64        `json:"fiber" yaml:"fiber"`
	Protein  float64        `json:"protein" yaml:"protein"`
	Serving  *ExportServing `json:"serving,omitempty" yaml:"serving,omitempty"`
}

type ExportData struct {
	Foods []ExportFood `json:"foods" yaml:"foods"`
}

type ImportOptions struct {
	DryRun bool
	// Check rejects records whose calories fail the plausibility check.
	Check bool
}

type ImportReport struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Warnings []string `json:"warnings,omitempty"`
}

func ExportDataSnapshot(s store.FoodStore) (*ExportData, error) {
	foods, err := s.List()
	if err != nil {
		return nil, err
	}
	per100g := food.PerHundredGrams()
	out := &ExportData{Foods: make([]ExportFood, 0, len(foods))}
	for _, f := range foods {
		out.Foods = append(out.Foods, ExportFood{
			Name:     f.Name,
			Calories: f.Calories,
			Fat:      f.Fat,
			Carb:     f.Carb,
			Fiber:    f.Fiber,
			Protein:  f.Protein,
			Serving:  &ExportServing{Unit: string(per100g.Unit), Size: per100g.Size},
		})
	}
	return out, nil
}

func WriteExport(w io.Writer, data *ExportData, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode export yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush export yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode export json: %w", err)
		}
	}
	return nil
}

func ReadExport(r io.Reader, format Format) (*ExportData, error) {
	var data ExportData
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode import yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("decode import json: %w", err)
		}
	}
	return &data, nil
}

// ImportFoods normalizes and inserts every record. A record that fails
// validation or normalization is counted as failed and the import carries
// on; existing names are skipped.
func ImportFoods(s store.FoodStore, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, nil
	}
	target := s
	if opts.DryRun {
		existing, err := s.List()
		if err != nil {
			return report, err
		}
		dry := store.NewMemory(nil)
		if err := dry.CreateSchema(); err != nil {
			return report, err
		}
		for _, f := range existing {
			if _, err := dry.Insert(f); err != nil {
				return report, err
			}
		}
		target = dry
	}

	for i, rec := range data.Foods {
		serving, err := rec.serving()
		if err != nil {
			report.Failed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("record %d (%s): %v", i+1, rec.Name, err))
			continue
		}
		res, err := AddFood(target, AddFoodInput{
			Name: rec.Name,
			Macros: food.Macronutrients{
				Calories: rec.Calories,
				Fat:      rec.Fat,
				Carb:     rec.Carb,
				Fiber:    rec.Fiber,
				Protein:  rec.Protein,
			},
			Serving: serving,
			Check:   opts.Check,
		})
		if err != nil {
			if errors.Is(err, store.ErrNoSchema) {
				return report, err
			}
			report.Failed++
			report.Warnings = append(report.Warnings, fmt.Sprintf("record %d (%s): %v", i+1, rec.Name, err))
			continue
		}
		switch res.Result {
		case store.Duplicate:
			report.Skipped++
		default:
			report.Inserted++
		}
	}
	return report, nil
}

func (r ExportFood) serving() (food.Serving, error) {
	if r.Serving == nil {
		return food.PerHundredGrams(), nil
	}
	return food.NewServing(r.Serving.Unit, r.Serving.Size, r.Serving.SecondarySize)
}
