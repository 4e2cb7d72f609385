package services

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type nutritionRequest struct {
	Date  time.Time           `json:"date" binding:"required"`
	Meals []models.Meal       `json:"meals" binding:"dive"`
	Water *models.WaterIntake `json:"waterIntake" binding:"omitempty"`
	Notes string              `json:"notes"`
}

// nutritionLogView is the wire shape of a log: the stored document plus the
// calorie total, computed at read time.
type nutritionLogView struct {
	models.NutritionLog
	TotalDailyCalories int `json:"totalDailyCalories"`
}

func viewLog(l models.NutritionLog) nutritionLogView {
	return nutritionLogView{NutritionLog: l, TotalDailyCalories: l.TotalDailyCalories()}
}

func viewLogs(logs []models.NutritionLog) []nutritionLogView {
	out := make([]nutritionLogView, len(logs))
	for i, l := range logs {
		out[i] = viewLog(l)
	}
	return out
}

// dayLogUpsert builds the atomic update for one day-log submission. Meals are
// appended after any already stored; water intake, when provided, replaces the
// stored value rather than adding to it. A missing water field leaves the
// stored value alone and only defaults a brand-new log to 0 ml.
func dayLogUpsert(meals []models.Meal, water *models.WaterIntake, notes string, now time.Time) bson.M {
	if meals == nil {
		meals = []models.Meal{}
	}
	setOnInsert := bson.M{"created_at": now}
	update := bson.M{
		"$push":        bson.M{"meals": bson.M{"$each": meals}},
		"$setOnInsert": setOnInsert,
	}

	set := bson.M{}
	if water != nil {
		set["water"] = *water
	} else {
		setOnInsert["water"] = models.WaterIntake{Value: 0, Unit: models.WaterUnitML}
	}
	if notes != "" {
		set["notes"] = notes
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}

// CreateNutritionLog appends the submission to the caller's log for that
// calendar day, creating the log if it does not exist yet. The find-or-insert
// and the meal append happen in a single atomic upsert, so two concurrent
// submissions for the same day cannot produce two logs or lose meals.
func CreateNutritionLog(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req nutritionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			// Any invalid meal aborts the whole submission; nothing is appended.
			respondBindError(c, err)
			return
		}

		day := models.Day(req.Date)
		collection := db.Collection(client, db.ColNutrition)

		var saved models.NutritionLog
		err := collection.FindOneAndUpdate(c.Request.Context(),
			bson.M{"user_id": userID, "date": day},
			dayLogUpsert(req.Meals, req.Water, req.Notes, time.Now()),
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		).Decode(&saved)
		if err != nil {
			respondError(c, err, "Nutrition log")
			return
		}
		c.JSON(http.StatusCreated, viewLog(saved))
	}
}

type quickAddRequest struct {
	SavedFoodID string    `json:"savedFoodId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	ServingSize float64   `json:"servingSize" binding:"required,gt=0"`
}

// QuickAddSavedFood logs a saved food into the caller's day log, scaling its
// macros to the requested serving. The meal stores a copy of the template's
// values, so deleting the template later leaves the log intact.
func QuickAddSavedFood(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req quickAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		foodID, err := primitive.ObjectIDFromHex(req.SavedFoodID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid saved food id"})
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
		meal := models.Meal{
			Name:        scaled.Name,
			Calories:    scaled.Calories,
			Protein:     scaled.Protein,
			Carbs:       scaled.Carbs,
			Fat:         scaled.Fat,
			ServingSize: scaled.ServingSize,
			ServingUnit: scaled.ServingUnit,
		}
		if err := models.Validate(meal); err != nil {
			respondError(c, err, "Saved food")
			return
		}

		var saved models.NutritionLog
		err = db.Collection(client, db.ColNutrition).FindOneAndUpdate(c.Request.Context(),
			bson.M{"user_id": userID, "date": models.Day(req.Date)},
			dayLogUpsert([]models.Meal{meal}, nil, "", time.Now()),
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		).Decode(&saved)
		if err != nil {
			respondError(c, err, "Nutrition log")
			return
		}
		c.JSON(http.StatusCreated, viewLog(saved))
	}
}

func ListNutritionLogs(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColNutrition)
		cursor, err := collection.Find(c.Request.Context(),
			userScopedDateFilter(c, userID),
			options.Find().SetSort(byDateDesc))
		if err != nil {
			respondError(c, err, "Nutrition logs")
			return
		}
		defer cursor.Close(c.Request.Context())

		logs := []models.NutritionLog{}
		if err := cursor.All(c.Request.Context(), &logs); err != nil {
			respondError(c, err, "Nutrition logs")
			return
		}
		c.JSON(http.StatusOK, viewLogs(logs))
	}
}

func RecentNutritionLogs(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColNutrition)
		cursor, err := collection.Find(c.Request.Context(),
			bson.M{"user_id": userID},
			options.Find().SetSort(byDateDesc).SetLimit(5))
		if err != nil {
			respondError(c, err, "Nutrition logs")
			return
		}
		defer cursor.Close(c.Request.Context())

		logs := []models.NutritionLog{}
		if err := cursor.All(c.Request.Context(), &logs); err != nil {
			respondError(c, err, "Nutrition logs")
			return
		}
		c.JSON(http.StatusOK, viewLogs(logs))
	}
}

func DeleteNutritionLog(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		logID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}

		collection := db.Collection(client, db.ColNutrition)
		result, err := collection.DeleteOne(c.Request.Context(), bson.M{
			"_id":     logID,
			"user_id": userID,
		})
		if err != nil {
			respondError(c, err, "Nutrition log")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, ErrNotFound, "Nutrition log")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Nutrition log deleted"})
	}
}

// removeMealAt returns meals without the element at index, or ErrInvalidIndex
// when the index is out of bounds. The input slice is not modified.
func removeMealAt(meals []models.Meal, index int) ([]models.Meal, error) {
	if index < 0 || index >= len(meals) {
		return nil, ErrInvalidIndex
	}
	out := make([]models.Meal, 0, len(meals)-1)
	out = append(out, meals[:index]...)
	out = append(out, meals[index+1:]...)
	return out, nil
}

func DeleteMealFromLog(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		logID, ok := pathObjectID(c, "id")
		if !ok {
			return
		}
		index, err := strconv.Atoi(c.Param("mealIndex"))
		if err != nil {
			respondError(c, ErrInvalidIndex, "Nutrition log")
			return
		}

		collection := db.Collection(client, db.ColNutrition)
		var nlog models.NutritionLog
		if err := collection.FindOne(c.Request.Context(), bson.M{
			"_id":     logID,
			"user_id": userID,
		}).Decode(&nlog); err != nil {
			respondError(c, err, "Nutrition log")
			return
		}

		remaining, err := removeMealAt(nlog.Meals, index)
		if err != nil {
			respondError(c, err, "Nutrition log")
			return
		}

		var updated models.NutritionLog
		if err := collection.FindOneAndUpdate(c.Request.Context(),
			bson.M{"_id": nlog.ID, "user_id": userID},
			bson.M{"$set": bson.M{"meals": remaining}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated); err != nil {
			respondError(c, err, "Nutrition log")
			return
		}
		c.JSON(http.StatusOK, viewLog(updated))
	}
}
