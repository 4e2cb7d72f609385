package models

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrInvalidServing is returned when a serving size is zero or negative, which
// would make macro scaling meaningless (or divide by zero).
var ErrInvalidServing = errors.New("serving size must be greater than zero")

// MealCalories returns the calories of a single logged meal.
func (m Meal) MealCalories() int {
	return m.Calories
}

// TotalDailyCalories sums the calories of every meal in the log. It is always
// computed on demand so the stored document can never drift from its meals.
func (n NutritionLog) TotalDailyCalories() int {
	total := 0
	for _, m := range n.Meals {
		total += m.MealCalories()
	}
	return total
}

// ScaleServing returns a copy of food with every macro scaled by
// newSize/servingSize and the serving size replaced by newSize. Calories are
// rounded to the nearest integer and macros to one decimal place, so a
// scale-then-unscale round trip is stable within rounding tolerance.
func ScaleServing(food SavedFood, newSize float64) (SavedFood, error) {
	if food.ServingSize <= 0 || newSize <= 0 {
		return SavedFood{}, ErrInvalidServing
	}
	factor := newSize / food.ServingSize
	scaled := food
	scaled.Calories = int(math.Round(float64(food.Calories) * factor))
	scaled.Protein = round1(food.Protein * factor)
	scaled.Carbs = round1(food.Carbs * factor)
	scaled.Fat = round1(food.Fat * factor)
	scaled.ServingSize = newSize
	return scaled, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TotalSets counts the sets across all exercises of a plan.
func (p WorkoutPlan) TotalSets() int {
	total := 0
	for _, ex := range p.Exercises {
		total += len(ex.Sets)
	}
	return total
}

// TotalReps sums the prescribed reps across all sets of a plan.
func (p WorkoutPlan) TotalReps() int {
	total := 0
	for _, ex := range p.Exercises {
		for _, s := range ex.Sets {
			total += s.Reps
		}
	}
	return total
}

// AverageOver returns the arithmetic mean of selector over records, or 0 for
// an empty sequence. Callers never see NaN.
func AverageOver[T any](records []T, selector func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = selector(r)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}
