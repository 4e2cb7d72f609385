package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Set is one set within an exercise. Reps and weight may be zero (bodyweight
// work, timed holds) but never negative.
type Set struct {
	Reps   int     `bson:"reps" json:"reps" binding:"min=0"`
	Weight float64 `bson:"weight" json:"weight" binding:"min=0"`
}

type Exercise struct {
	Name     string  `bson:"name" json:"name" binding:"required"`
	Sets     []Set   `bson:"sets" json:"sets" binding:"dive"`
	Duration float64 `bson:"duration,omitempty" json:"duration,omitempty" binding:"omitempty,min=0"`
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty" binding:"omitempty,min=0"`
}

// Workout is a single logged session. The exercise order is the order the user
// entered and is preserved as-is through storage and listing.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Date      time.Time          `bson:"date" json:"date" binding:"required"`
	Type      string             `bson:"type" json:"type" binding:"required,oneof=strength cardio flexibility other"`
	Exercises []Exercise         `bson:"exercises" json:"exercises" binding:"dive"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
