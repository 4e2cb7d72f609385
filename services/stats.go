package services

import (
	"net/http"
	"time"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsSummary aggregates a user's activity over a symbolic time range. All
// numbers are derived from the stored records at read time.
type StatsSummary struct {
	TimeRange           string  `json:"timeRange"`
	WorkoutCount        int     `json:"workoutCount"`
	AvgExercisesPerWork float64 `json:"avgExercisesPerWorkout"`
	NutritionDayCount   int     `json:"nutritionDayCount"`
	AvgDailyCalories    float64 `json:"avgDailyCalories"`
	AvgWaterML          float64 `json:"avgWaterMl"`
}

func GetStats(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		timeRange := c.DefaultQuery("timeRange", models.RangeWeek)
		start := models.RangeStart(timeRange, time.Now())
		ctx := c.Request.Context()

		filter := bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": start},
		}

		workouts := []models.Workout{}
		cursor, err := db.Collection(client, db.ColWorkouts).
			Find(ctx, filter, options.Find().SetSort(byDateDesc))
		if err != nil {
			respondError(c, err, "Stats")
			return
		}
		if err := cursor.All(ctx, &workouts); err != nil {
			respondError(c, err, "Stats")
			return
		}

		logs := []models.NutritionLog{}
		cursor, err = db.Collection(client, db.ColNutrition).
			Find(ctx, filter, options.Find().SetSort(byDateDesc))
		if err != nil {
			respondError(c, err, "Stats")
			return
		}
		if err := cursor.All(ctx, &logs); err != nil {
			respondError(c, err, "Stats")
			return
		}

		summary := StatsSummary{
			TimeRange:         timeRange,
			WorkoutCount:      len(workouts),
			NutritionDayCount: len(logs),
			AvgExercisesPerWork: models.AverageOver(workouts, func(w models.Workout) float64 {
				return float64(len(w.Exercises))
			}),
			AvgDailyCalories: models.AverageOver(logs, func(l models.NutritionLog) float64 {
				return float64(l.TotalDailyCalories())
			}),
			AvgWaterML: models.AverageOver(logs, func(l models.NutritionLog) float64 {
				return l.Water.Milliliters()
			}),
		}
		c.JSON(http.StatusOK, summary)
	}
}
