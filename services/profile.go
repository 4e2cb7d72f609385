package services

import (
	"net/http"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type profileRequest struct {
	Name  string       `json:"name" binding:"required"`
	Email string       `json:"email" binding:"required,email"`
	Goals models.Goals `json:"goals"`
}

func GetProfile(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var user models.User
		err := db.Collection(client, db.ColUsers).
			FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user)
		if err != nil {
			respondError(c, err, "User")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func UpdateProfile(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		var updated models.User
		err := db.Collection(client, db.ColUsers).FindOneAndUpdate(c.Request.Context(),
			bson.M{"_id": userID},
			bson.M{"$set": bson.M{
				"name":  req.Name,
				"email": req.Email,
				"goals": req.Goals,
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondError(c, err, "User")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
