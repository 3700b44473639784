package service

import (
	"errors"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

type DoctorFinding struct {
	Name         string             `json:"name"`
	Plausibility *food.Plausibility `json:"plausibility,omitempty"`
	Problem      string             `json:"problem"`
}

type DoctorReport struct {
	Checked     int             `json:"checked"`
	Implausible int             `json:"implausible"`
	Uncheckable int             `json:"uncheckable"`
	Findings    []DoctorFinding `json:"findings,omitempty"`
}

func (r DoctorReport) HasIssues() bool {
	return r.Implausible > 0 || r.Uncheckable > 0
}

// RunDoctor runs the calorie plausibility check over every stored food.
// Foods whose macros yield no calorie estimate are counted as uncheckable.
func RunDoctor(s store.FoodStore) (DoctorReport, error) {
	report := DoctorReport{}
	foods, err := s.List()
	if err != nil {
		return report, err
	}
	for _, f := range foods {
		report.Checked++
		p, err := food.CheckCalories(f)
		if err != nil {
			if !errors.Is(err, food.ErrNumericDomain) {
				return report, err
			}
			report.Uncheckable++
			report.Findings = append(report.Findings, DoctorFinding{Name: f.Name, Problem: "no macro-derived calorie estimate"})
			continue
		}
		if !p.Plausible {
			report.Implausible++
			p := p
			report.Findings = append(report.Findings, DoctorFinding{Name: f.Name, Plausibility: &p, Problem: "calories disagree with macros"})
		}
	}
	return report, nil
}
