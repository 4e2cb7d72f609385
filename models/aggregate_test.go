package models_test

import (
	"errors"
	"math"
	"testing"

	"fittrack/models"
)

func TestTotalDailyCalories(t *testing.T) {
	t.Parallel()

	empty := models.NutritionLog{}
	if got := empty.TotalDailyCalories(); got != 0 {
		t.Fatalf("empty log: expected 0 calories, got %d", got)
	}

	log := models.NutritionLog{Meals: []models.Meal{
		{Name: "Oatmeal", Calories: 350},
		{Name: "Chicken salad", Calories: 520},
		{Name: "Apple", Calories: 95},
	}}
	if got := log.TotalDailyCalories(); got != 965 {
		t.Fatalf("expected 965 calories, got %d", got)
	}

	sum := 0
	for _, m := range log.Meals {
		sum += m.MealCalories()
	}
	if got := log.TotalDailyCalories(); got != sum {
		t.Fatalf("total %d does not equal sum of meal calories %d", got, sum)
	}
}

func TestScaleServing(t *testing.T) {
	t.Parallel()

	food := models.SavedFood{
		Name:        "Greek Yogurt",
		Calories:    200,
		Protein:     10,
		Carbs:       30,
		Fat:         5,
		ServingSize: 100,
		ServingUnit: "g",
	}

	scaled, err := models.ScaleServing(food, 150)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if scaled.Calories != 300 {
		t.Fatalf("expected 300 calories, got %d", scaled.Calories)
	}
	if scaled.Protein != 15 || scaled.Carbs != 45 || scaled.Fat != 7.5 {
		t.Fatalf("unexpected macros: %+v", scaled)
	}
	if scaled.ServingSize != 150 {
		t.Fatalf("expected serving size 150, got %v", scaled.ServingSize)
	}
	if food.Calories != 200 || food.ServingSize != 100 {
		t.Fatalf("input food was modified: %+v", food)
	}
}

func TestScaleServingRounding(t *testing.T) {
	t.Parallel()

	food := models.SavedFood{
		Name:        "Granola",
		Calories:    333,
		Protein:     7.7,
		Carbs:       61.3,
		Fat:         11.1,
		ServingSize: 100,
		ServingUnit: "g",
	}
	scaled, err := models.ScaleServing(food, 75)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if scaled.Calories != 250 {
		t.Fatalf("expected calories rounded to 250, got %d", scaled.Calories)
	}
	if scaled.Protein != 5.8 {
		t.Fatalf("expected protein rounded to 5.8, got %v", scaled.Protein)
	}
}

func TestScaleServingRoundTrip(t *testing.T) {
	t.Parallel()

	foods := []models.SavedFood{
		{Name: "Granola", Calories: 333, Protein: 7.7, Carbs: 61.3, Fat: 11.1, ServingSize: 100, ServingUnit: "g"},
		{Name: "Milk", Calories: 64, Protein: 3.4, Carbs: 4.8, Fat: 3.6, ServingSize: 100, ServingUnit: "ml"},
		{Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, ServingSize: 100, ServingUnit: "g"},
	}
	sizes := []float64{50, 75, 150, 200}

	for _, food := range foods {
		for _, size := range sizes {
			scaled, err := models.ScaleServing(food, size)
			if err != nil {
				t.Fatalf("%s to %v: %v", food.Name, size, err)
			}
			back, err := models.ScaleServing(scaled, food.ServingSize)
			if err != nil {
				t.Fatalf("%s back to %v: %v", food.Name, food.ServingSize, err)
			}
			if math.Abs(float64(back.Calories-food.Calories)) > 1 {
				t.Fatalf("%s via %v: calories drifted %d -> %d", food.Name, size, food.Calories, back.Calories)
			}
			// One decimal of rounding in each direction.
			if math.Abs(back.Protein-food.Protein) > 0.2 ||
				math.Abs(back.Carbs-food.Carbs) > 0.2 ||
				math.Abs(back.Fat-food.Fat) > 0.2 {
				t.Fatalf("%s via %v: macros drifted %+v -> %+v", food.Name, size, food, back)
			}
			if back.ServingSize != food.ServingSize {
				t.Fatalf("%s: serving size not restored: %v", food.Name, back.ServingSize)
			}
		}
	}
}

func TestScaleServingInvalidInput(t *testing.T) {
	t.Parallel()

	zero := models.SavedFood{Name: "Broken", ServingSize: 0, ServingUnit: "g"}
	if _, err := models.ScaleServing(zero, 100); !errors.Is(err, models.ErrInvalidServing) {
		t.Fatalf("expected ErrInvalidServing for zero serving size, got %v", err)
	}

	ok := models.SavedFood{Name: "Fine", ServingSize: 100, ServingUnit: "g"}
	if _, err := models.ScaleServing(ok, 0); !errors.Is(err, models.ErrInvalidServing) {
		t.Fatalf("expected ErrInvalidServing for zero target size, got %v", err)
	}
	if _, err := models.ScaleServing(ok, -50); !errors.Is(err, models.ErrInvalidServing) {
		t.Fatalf("expected ErrInvalidServing for negative target size, got %v", err)
	}
}

func TestPlanTotals(t *testing.T) {
	t.Parallel()

	plan := models.WorkoutPlan{Exercises: []models.PlannedExercise{
		{Name: "Squat", Sets: []models.PlannedSet{
			{SetNumber: 1, Reps: 5, Weight: 100, WeightUnit: "kg"},
			{SetNumber: 2, Reps: 5, Weight: 100, WeightUnit: "kg"},
			{SetNumber: 3, Reps: 3, Weight: 110, WeightUnit: "kg"},
		}},
		{Name: "Pull-up", Sets: []models.PlannedSet{
			{SetNumber: 1, Reps: 10, WeightUnit: "bw"},
			{SetNumber: 2, Reps: 8, WeightUnit: "bw"},
		}},
	}}

	if got := plan.TotalSets(); got != 5 {
		t.Fatalf("expected 5 sets, got %d", got)
	}
	if got := plan.TotalReps(); got != 31 {
		t.Fatalf("expected 31 reps, got %d", got)
	}

	empty := models.WorkoutPlan{}
	if empty.TotalSets() != 0 || empty.TotalReps() != 0 {
		t.Fatalf("empty plan should total zero")
	}
}

func TestAverageOver(t *testing.T) {
	t.Parallel()

	got := models.AverageOver([]int{2, 4, 6}, func(v int) float64 { return float64(v) })
	if got != 4 {
		t.Fatalf("expected mean 4, got %v", got)
	}

	empty := models.AverageOver(nil, func(v int) float64 { return float64(v) })
	if empty != 0 {
		t.Fatalf("expected 0 for empty input, got %v", empty)
	}
	if math.IsNaN(empty) {
		t.Fatalf("empty input produced NaN")
	}
}
