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

type workoutPlanRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Description       string                   `json:"description"`
	TargetMuscles     []string                 `json:"targetMuscles" binding:"dive,oneof=chest back shoulders biceps triceps legs core fullBody"`
	EstimatedDuration int                      `json:"estimatedDuration" binding:"required,gt=0"`
	Difficulty        string                   `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Exercises         []models.PlannedExercise `json:"exercises" binding:"dive"`
}

// planView adds the derived set/rep totals to a stored plan.
type planView struct {
	models.WorkoutPlan
	TotalSets int `json:"totalSets"`
	TotalReps int `json:"totalReps"`
}

func viewPlan(p models.WorkoutPlan) planView {
	return planView{WorkoutPlan: p, TotalSets: p.TotalSets(), TotalReps: p.TotalReps()}
}

func ListWorkoutPlans(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColWorkoutPlans)
		cursor, err := collection.Find(c.Request.Context(),
			bson.M{"user_id": userID},
			options.Find().SetSort(bson.D{{Key: "last_modified", Value: -1}}))
		if err != nil {
			respondError(c, err, "Workout plans")
			return
		}
		defer cursor.Close(c.Request.Context())

		plans := []models.WorkoutPlan{}
		if err := cursor.All(c.Request.Context(), &plans); err != nil {
			respondError(c, err, "Workout plans")
			return
		}

		out := make([]planView, len(plans))
		for i, p := range plans {
			out[i] = viewPlan(p)
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetWorkoutPlan(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		planID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		var plan models.WorkoutPlan
		err := db.Collection(client, db.ColWorkoutPlans).FindOne(c.Request.Context(), bson.M{
			"_id":     planID,
			"user_id": userID,
		}).Decode(&plan)
		if err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		c.JSON(http.StatusOK, viewPlan(plan))
	}
}

func CreateWorkoutPlan(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req workoutPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		now := time.Now()
		plan := models.WorkoutPlan{
			UserID:            userID,
			Name:              req.Name,
			Description:       req.Description,
			TargetMuscles:     req.TargetMuscles,
			EstimatedDuration: req.EstimatedDuration,
			Difficulty:        req.Difficulty,
			Exercises:         req.Exercises,
			CreatedAt:         now,
			LastModified:      now,
		}
		result, err := db.Collection(client, db.ColWorkoutPlans).
			InsertOne(c.Request.Context(), plan)
		if err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		plan.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, viewPlan(plan))
	}
}

func UpdateWorkoutPlan(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		planID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		var req workoutPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		var updated models.WorkoutPlan
		err := db.Collection(client, db.ColWorkoutPlans).FindOneAndUpdate(c.Request.Context(),
			bson.M{"_id": planID, "user_id": userID},
			bson.M{"$set": bson.M{
				"name":               req.Name,
				"description":        req.Description,
				"target_muscles":     req.TargetMuscles,
				"estimated_duration": req.EstimatedDuration,
				"difficulty":         req.Difficulty,
				"exercises":          req.Exercises,
				"last_modified":      time.Now(),
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		c.JSON(http.StatusOK, viewPlan(updated))
	}
}

func DeleteWorkoutPlan(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		planID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		result, err := db.Collection(client, db.ColWorkoutPlans).
			DeleteOne(c.Request.Context(), bson.M{"_id": planID, "user_id": userID})
		if err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, ErrNotFound, "Workout plan")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted"})
	}
}

// CompleteWorkoutPlan bumps the completion counter. Completing a plan does not
// create a Workout record; plans and logs are intentionally decoupled.
func CompleteWorkoutPlan(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		planID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		var updated models.WorkoutPlan
		err := db.Collection(client, db.ColWorkoutPlans).FindOneAndUpdate(c.Request.Context(),
			bson.M{"_id": planID, "user_id": userID},
			bson.M{
				"$inc": bson.M{"times_completed": 1},
				"$set": bson.M{"last_modified": time.Now()},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":        "Workout plan marked as completed",
			"timesCompleted": updated.TimesCompleted,
		})
	}
}
