package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannedSet is a prescribed set within a plan, as opposed to a logged one.
type PlannedSet struct {
	SetNumber        int     `bson:"set_number" json:"setNumber" binding:"min=0"`
	Weight           float64 `bson:"weight" json:"weight" binding:"min=0"`
	WeightUnit       string  `bson:"weight_unit" json:"weightUnit" binding:"required,oneof=kg lbs bw"`
	Reps             int     `bson:"reps" json:"reps" binding:"min=0"`
	IsPersonalRecord bool    `bson:"is_personal_record" json:"isPersonalRecord"`
	Notes            string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

type PlannedExercise struct {
	Name            string       `bson:"name" json:"name" binding:"required"`
	Sets            []PlannedSet `bson:"sets" json:"sets" binding:"dive"`
	RestBetweenSets int          `bson:"rest_between_sets" json:"restBetweenSets" binding:"omitempty,min=0"`
	Notes           string       `bson:"notes,omitempty" json:"notes,omitempty"`
	MuscleGroups    []string     `bson:"muscle_groups,omitempty" json:"muscleGroups,omitempty" binding:"dive,oneof=chest back shoulders biceps triceps legs core"`
}

// WorkoutPlan is a reusable template, not a log entry. Completing a plan only
// increments TimesCompleted; it deliberately does not create a Workout record.
type WorkoutPlan struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"user_id" json:"userId"`
	Name              string             `bson:"name" json:"name" binding:"required"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	TargetMuscles     []string           `bson:"target_muscles,omitempty" json:"targetMuscles,omitempty" binding:"dive,oneof=chest back shoulders biceps triceps legs core fullBody"`
	EstimatedDuration int                `bson:"estimated_duration" json:"estimatedDuration" binding:"required,gt=0"`
	Difficulty        string             `bson:"difficulty" json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Exercises         []PlannedExercise  `bson:"exercises" json:"exercises" binding:"dive"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	LastModified      time.Time          `bson:"last_modified" json:"lastModified"`
	TimesCompleted    int                `bson:"times_completed" json:"timesCompleted"`
}
