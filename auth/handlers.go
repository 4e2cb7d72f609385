package auth

import (
	"context"
	"net/http"
	"time"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func publicUser(u models.User) gin.H {
	return gin.H{"id": u.ID.Hex(), "name": u.Name, "email": u.Email, "goals": u.Goals}
}

func (a *Auth) Register(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		users := db.Collection(client, db.ColUsers)
		var existing models.User
		err := users.FindOne(c.Request.Context(), bson.M{"email": req.Email}).Decode(&existing)
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
		}
		result, err := users.InsertOne(c.Request.Context(), user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}
		user.ID = result.InsertedID.(primitive.ObjectID)

		token, err := a.GenerateJWT(user.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		a.storeSession(c.Request.Context(), client, user.ID, token)

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": publicUser(user)})
	}
}

func (a *Auth) Login(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		users := db.Collection(client, db.ColUsers)
		var user models.User
		err := users.FindOne(c.Request.Context(), bson.M{"email": creds.Email}).Decode(&user)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Use Google login for this account"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := a.GenerateJWT(user.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		a.storeSession(c.Request.Context(), client, user.ID, token)

		c.JSON(http.StatusOK, gin.H{"token": token, "user": publicUser(user)})
	}
}

func (a *Auth) storeSession(ctx context.Context, client *mongo.Client, userID primitive.ObjectID, token string) {
	session := models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	// Session bookkeeping is best-effort; login still succeeds if it fails.
	db.Collection(client, db.ColSessions).InsertOne(ctx, session)
}
