package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "fittrack"

// Collection names, one per entity.
const (
	ColUsers        = "users"
	ColSessions     = "sessions"
	ColWorkouts     = "workouts"
	ColNutrition    = "nutrition"
	ColSavedFoods   = "saved_foods"
	ColWorkoutPlans = "workout_plans"
)

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// Collection returns the named collection in the application database.
func Collection(client *mongo.Client, name string) *mongo.Collection {
	return client.Database(databaseName).Collection(name)
}
