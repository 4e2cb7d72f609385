package services

import (
	"net/http"
	"regexp"
	"time"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type savedFoodRequest struct {
	Name        string  `json:"name" binding:"required"`
	Calories    int     `json:"calories" binding:"min=0"`
	Protein     float64 `json:"protein" binding:"min=0"`
	Carbs       float64 `json:"carbs" binding:"min=0"`
	Fat         float64 `json:"fat" binding:"min=0"`
	ServingSize float64 `json:"servingSize" binding:"required,gt=0"`
	ServingUnit string  `json:"servingUnit" binding:"required,oneof=g ml piece portion"`
}

// ListSavedFoods lists the caller's templates alphabetically. An optional ?q=
// parameter narrows by case-insensitive name substring for quick-add lookups.
func ListSavedFoods(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		filter := bson.M{"user_id": userID}
		if q := c.Query("q"); q != "" {
			filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		}

		collection := db.Collection(client, db.ColSavedFoods)
		cursor, err := collection.Find(c.Request.Context(), filter,
			options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			respondError(c, err, "Saved foods")
			return
		}
		defer cursor.Close(c.Request.Context())

		foods := []models.SavedFood{}
		if err := cursor.All(c.Request.Context(), &foods); err != nil {
			respondError(c, err, "Saved foods")
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func CreateSavedFood(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req savedFoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		food := models.SavedFood{
			UserID:      userID,
			Name:        req.Name,
			Calories:    req.Calories,
			Protein:     req.Protein,
			Carbs:       req.Carbs,
			Fat:         req.Fat,
			ServingSize: req.ServingSize,
			ServingUnit: req.ServingUnit,
			CreatedAt:   time.Now(),
		}
		result, err := db.Collection(client, db.ColSavedFoods).
			InsertOne(c.Request.Context(), food)
		if err != nil {
			respondError(c, err, "Saved food")
			return
		}
		food.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, food)
	}
}

func DeleteSavedFood(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		foodID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColSavedFoods)
		result, err := collection.DeleteOne(c.Request.Context(), bson.M{
			"_id":     foodID,
			"user_id": userID,
		})
		if err != nil {
			respondError(c, err, "Saved food")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, ErrNotFound, "Saved food")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Saved food deleted"})
	}
}

// ScaleSavedFood previews a template scaled to a different serving size. The
// template itself is not modified.
func ScaleSavedFood(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		foodID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		var req struct {
			ServingSize float64 `json:"servingSize" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		var food models.SavedFood
		if err := db.Collection(client, db.ColSavedFoods).FindOne(c.Request.Context(), bson.M{
			"_id":     foodID,
			"user_id": userID,
		}).Decode(&food); err != nil {
			respondError(c, err, "Saved food")
			return
		}

		scaled, err := models.ScaleServing(food, req.ServingSize)
		if err != nil {
			respondError(c, err, "Saved food")
			return
		}
		c.JSON(http.StatusOK, scaled)
	}
}
