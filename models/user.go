package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Goals holds the user's fitness targets shown on the dashboard.
type Goals struct {
	WeeklyWorkouts int `bson:"weekly_workouts" json:"weeklyWorkouts" binding:"omitempty,min=0"`
	DailyCalories  int `bson:"daily_calories" json:"dailyCalories" binding:"omitempty,min=0"`
	DailyWater     int `bson:"daily_water" json:"dailyWater" binding:"omitempty,min=0"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoogleID string             `bson:"google_id,omitempty" json:"-"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Name     string             `bson:"name,omitempty" json:"name"`
	Goals    Goals              `bson:"goals" json:"goals"`
}
