package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
)

const tokenTTL = 24 * time.Hour

// ContextUserID is the gin context key under which Middleware stores the
// authenticated user's id (hex ObjectID string).
const ContextUserID = "user_id"

// Auth issues and verifies bearer tokens. All state comes from the injected
// configuration; nothing here reads the environment.
type Auth struct {
	secret    []byte
	google    *oauth2.Config
	clientURL string
}

func New(secret string, google *oauth2.Config, clientURL string) *Auth {
	return &Auth{secret: []byte(secret), google: google, clientURL: clientURL}
}

func (a *Auth) GenerateJWT(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		log.Println("JWT SIGNING ERROR:", err)
		return "", err
	}
	return tokenString, nil
}

func (a *Auth) ValidateJWT(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
}

// Middleware validates the Authorization header and stores the user id in the
// request context for the handlers behind it.
func (a *Auth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := a.ValidateJWT(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid user ID in token"})
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
