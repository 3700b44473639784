package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

// DefaultSuggestThreshold is the minimum similarity for a stored name to be
// offered as a "did you mean" suggestion.
const DefaultSuggestThreshold = 0.6

type Suggestion struct {
	Name       string
	Similarity float64
}

// similarity returns a 0.0-1.0 score: 1 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// SuggestNames ranks stored food names by similarity to name. Lookups stay
// exact; suggestions only help a user retype the name.
func SuggestNames(s store.FoodStore, name string, threshold float64, limit int) ([]Suggestion, error) {
	if threshold <= 0 {
		threshold = DefaultSuggestThreshold
	}
	if limit <= 0 {
		limit = 3
	}
	foods, err := s.List()
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(name))
	out := make([]Suggestion, 0)
	for _, f := range foods {
		if f.Name == name {
			continue
		}
		score := similarity(query, strings.ToLower(f.Name))
		if score >= threshold {
			out = append(out, Suggestion{Name: f.Name, Similarity: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
