package food_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
)

func TestIsPlausible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		food food.Food
		want bool
	}{
		{
			name: "within tolerance",
			food: food.Food{Name: "bar", Calories: 100, Fat: 1, Carb: 20, Fiber: 1, Protein: 5},
			want: true,
		},
		{
			name: "calories far above estimate",
			food: food.Food{Name: "bar", Calories: 200, Fat: 1, Carb: 20, Fiber: 1, Protein: 5},
			want: false,
		},
		{
			name: "exactly ten percent under",
			food: food.Food{Name: "oil", Calories: 81, Fat: 10},
			want: true,
		},
		{
			name: "just over ten percent",
			food: food.Food{Name: "oil", Calories: 79, Fat: 10},
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := food.IsPlausible(tc.food)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckCaloriesReport(t *testing.T) {
	t.Parallel()

	p, err := food.CheckCalories(food.Food{Name: "bar", Calories: 100, Fat: 1, Carb: 20, Fiber: 1, Protein: 5})
	require.NoError(t, err)
	assert.Equal(t, 105.0, p.EstimatedCalories)
	assert.InDelta(t, 5.0/105.0, p.RelativeError, 1e-12)
	assert.True(t, p.Plausible)
}

func TestIsPlausibleZeroEstimate(t *testing.T) {
	t.Parallel()

	_, err := food.IsPlausible(food.Food{Name: "water", Calories: 0})
	assert.ErrorIs(t, err, food.ErrZeroEstimate)
	assert.ErrorIs(t, err, food.ErrNumericDomain)

	_, err = food.IsPlausible(food.Food{Name: "fiber only", Calories: 10, Carb: 3, Fiber: 3})
	assert.ErrorIs(t, err, food.ErrZeroEstimate)
}
