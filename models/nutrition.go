package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Water units. Older clients logged glasses; ml is canonical for new writes.
const (
	WaterUnitML      = "ml"
	WaterUnitGlasses = "glasses"
)

// WaterIntake carries its unit explicitly so records written by old and new
// client versions can coexist without the number silently changing meaning.
type WaterIntake struct {
	Value float64 `bson:"value" json:"value" binding:"min=0"`
	Unit  string  `bson:"unit" json:"unit" binding:"required,oneof=ml glasses"`
}

// mlPerGlass is the conversion used when aggregating over records written by
// clients that logged glasses.
const mlPerGlass = 250

// Milliliters normalizes the intake to ml regardless of the stored unit.
func (w WaterIntake) Milliliters() float64 {
	if w.Unit == WaterUnitGlasses {
		return w.Value * mlPerGlass
	}
	return w.Value
}

// Meal is one logged food: a nutrition snapshot plus the serving it was eaten
// in. Copies from a SavedFood stay valid if the template is later deleted.
type Meal struct {
	Name        string  `bson:"name" json:"name" binding:"required"`
	Calories    int     `bson:"calories" json:"calories" binding:"min=0"`
	Protein     float64 `bson:"protein" json:"protein" binding:"min=0"`
	Carbs       float64 `bson:"carbs" json:"carbs" binding:"min=0"`
	Fat         float64 `bson:"fat" json:"fat" binding:"min=0"`
	ServingSize float64 `bson:"serving_size" json:"servingSize" binding:"required,gt=0"`
	ServingUnit string  `bson:"serving_unit" json:"servingUnit" binding:"required,oneof=g ml piece portion"`
}

// NutritionLog is the single canonical log for one user and one calendar day.
// Date is normalized to UTC midnight; meal order is submission order.
// Daily calorie totals are always computed from Meals, never stored.
type NutritionLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"`
	Meals     []Meal             `bson:"meals" json:"meals"`
	Water     WaterIntake        `bson:"water" json:"waterIntake"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Day strips the time-of-day component so two submissions on the same calendar
// day always resolve to the same log key.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
