package services

import (
	"net/http"
	"time"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type workoutRequest struct {
	Date      time.Time         `json:"date" binding:"required"`
	Type      string            `json:"type" binding:"required,oneof=strength cardio flexibility other"`
	Exercises []models.Exercise `json:"exercises" binding:"dive"`
	Notes     string            `json:"notes"`
}

// byDateDesc sorts newest first; the _id tiebreak keeps same-day records in
// insertion order.
var byDateDesc = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}

// userScopedDateFilter applies the optional symbolic time range from the query
// string as an inclusive lower bound on date.
func userScopedDateFilter(c *gin.Context, userID interface{}) bson.M {
	filter := bson.M{"user_id": userID}
	if timeRange := c.Query("timeRange"); timeRange != "" {
		filter["date"] = bson.M{"$gte": models.RangeStart(timeRange, time.Now())}
	}
	return filter
}

func ListWorkouts(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColWorkouts)
		cursor, err := collection.Find(c.Request.Context(),
			userScopedDateFilter(c, userID),
			options.Find().SetSort(byDateDesc))
		if err != nil {
			respondError(c, err, "Workouts")
			return
		}
		defer cursor.Close(c.Request.Context())

		workouts := []models.Workout{}
		if err := cursor.All(c.Request.Context(), &workouts); err != nil {
			respondError(c, err, "Workouts")
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

func RecentWorkouts(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColWorkouts)
		cursor, err := collection.Find(c.Request.Context(),
			bson.M{"user_id": userID},
			options.Find().SetSort(byDateDesc).SetLimit(5))
		if err != nil {
			respondError(c, err, "Workouts")
			return
		}
		defer cursor.Close(c.Request.Context())

		workouts := []models.Workout{}
		if err := cursor.All(c.Request.Context(), &workouts); err != nil {
			respondError(c, err, "Workouts")
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

func CreateWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req workoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		workout := models.Workout{
			UserID:    userID,
			Date:      req.Date,
			Type:      req.Type,
			Exercises: req.Exercises,
			Notes:     req.Notes,
			CreatedAt: time.Now(),
		}
		result, err := db.Collection(client, db.ColWorkouts).
			InsertOne(c.Request.Context(), workout)
		if err != nil {
			respondError(c, err, "Workout")
			return
		}
		workout.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, workout)
	}
}

func UpdateWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		workoutID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		var req workoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		collection := db.Collection(client, db.ColWorkouts)
		var updated models.Workout
		err := collection.FindOneAndUpdate(c.Request.Context(),
			bson.M{"_id": workoutID, "user_id": userID},
			bson.M{"$set": bson.M{
				"date":      req.Date,
				"type":      req.Type,
				"exercises": req.Exercises,
				"notes":     req.Notes,
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondError(c, err, "Workout")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteWorkout(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		workoutID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColWorkouts)
		result, err := collection.DeleteOne(c.Request.Context(), bson.M{
			"_id":     workoutID,
			"user_id": userID,
		})
		if err != nil {
			respondError(c, err, "Workout")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, ErrNotFound, "Workout")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
	}
}
