package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"fittrack/models"

	"go.mongodb.org/mongo-driver/bson"
)

func sampleMeals() []models.Meal {
	return []models.Meal{
		{Name: "Oatmeal", Calories: 500, Protein: 15, Carbs: 80, Fat: 10, ServingSize: 100, ServingUnit: "g"},
		{Name: "Apple", Calories: 95, ServingSize: 1, ServingUnit: "piece"},
	}
}

func TestDayLogUpsertAppendsMeals(t *testing.T) {
	t.Parallel()

	meals := sampleMeals()
	update := dayLogUpsert(meals, nil, "", time.Now())

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("expected $push, got %v", update)
	}
	each, ok := push["meals"].(bson.M)
	if !ok {
		t.Fatalf("expected meals $each, got %v", push)
	}
	if !reflect.DeepEqual(each["$each"], meals) {
		t.Fatalf("meals not appended in submission order: %v", each["$each"])
	}
}

func TestDayLogUpsertWaterProvidedReplaces(t *testing.T) {
	t.Parallel()

	water := &models.WaterIntake{Value: 0, Unit: models.WaterUnitML}
	update := dayLogUpsert(nil, water, "", time.Now())

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set when water is provided, got %v", update)
	}
	if got := set["water"]; !reflect.DeepEqual(got, *water) {
		t.Fatalf("expected explicit water 0 to replace stored value, got %v", got)
	}

	// An explicit value must not also appear in $setOnInsert.
	soi := update["$setOnInsert"].(bson.M)
	if _, present := soi["water"]; present {
		t.Fatalf("water should not be defaulted when explicitly provided: %v", soi)
	}
}

func TestDayLogUpsertWaterOmittedKeepsStored(t *testing.T) {
	t.Parallel()

	update := dayLogUpsert(sampleMeals(), nil, "", time.Now())

	// No $set on water: an omitted field never clobbers the stored value.
	if set, ok := update["$set"].(bson.M); ok {
		if _, present := set["water"]; present {
			t.Fatalf("omitted water must not be written: %v", set)
		}
	}

	// A brand-new log defaults to 0 ml.
	soi := update["$setOnInsert"].(bson.M)
	want := models.WaterIntake{Value: 0, Unit: models.WaterUnitML}
	if got := soi["water"]; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected new-log default %v, got %v", want, got)
	}
}

func TestDayLogUpsertEmptyMeals(t *testing.T) {
	t.Parallel()

	update := dayLogUpsert(nil, nil, "", time.Now())
	each := update["$push"].(bson.M)["meals"].(bson.M)["$each"].([]models.Meal)
	if len(each) != 0 {
		t.Fatalf("expected empty $each for meal-less submission, got %v", each)
	}
}

func TestRemoveMealAt(t *testing.T) {
	t.Parallel()

	meals := sampleMeals()
	got, err := removeMealAt(meals, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Apple" {
		t.Fatalf("expected only Apple to remain, got %v", got)
	}
	if len(meals) != 2 {
		t.Fatalf("input slice was modified: %v", meals)
	}
}

func TestRemoveMealAtOutOfBounds(t *testing.T) {
	t.Parallel()

	meals := sampleMeals()

	for _, index := range []int{-1, 2, 5} {
		if _, err := removeMealAt(meals, index); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("index %d: expected ErrInvalidIndex, got %v", index, err)
		}
	}
	if len(meals) != 2 {
		t.Fatalf("log must be unchanged after a failed delete: %v", meals)
	}
}
