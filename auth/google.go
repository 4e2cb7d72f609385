package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"fittrack/db"
	"fittrack/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

func (a *Auth) GoogleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := generateStateOauthCookie(c)
		url := a.google.AuthCodeURL(state, oauth2.AccessTypeOffline,
			oauth2.SetAuthURLParam("prompt", "consent select_account"))
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

func (a *Auth) GoogleCallback(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		cookie, err := c.Cookie("oauthstate")
		if err != nil || state != cookie {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid state parameter"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code parameter"})
			return
		}

		token, err := a.google.Exchange(c.Request.Context(), code)
		if err != nil {
			log.Println("TOKEN EXCHANGE ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange token"})
			return
		}

		googleUser, err := fetchGoogleUser(token.AccessToken)
		if err != nil {
			log.Println("USER INFO ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user info"})
			return
		}
		if googleUser.Sub == "" || googleUser.Email == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user info: missing ID or email"})
			return
		}

		users := db.Collection(client, db.ColUsers)
		var user models.User
		err = users.FindOne(c.Request.Context(), bson.M{"email": googleUser.Email}).Decode(&user)
		if err != nil {
			user = models.User{
				GoogleID: googleUser.Sub,
				Email:    googleUser.Email,
				Name:     googleUser.Name,
			}
			if user.Name == "" {
				user.Name = googleUser.GivenName
			}
			result, err := users.InsertOne(c.Request.Context(), user)
			if err != nil {
				log.Println("INSERT USER ERROR:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
				return
			}
			user.ID = result.InsertedID.(primitive.ObjectID)
		} else if user.GoogleID == "" {
			c.JSON(http.StatusConflict, gin.H{"error": "Email registered with password. Use email login."})
			return
		}

		tokenString, err := a.GenerateJWT(user.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		a.storeSession(c.Request.Context(), client, user.ID, tokenString)

		c.Redirect(http.StatusFound, a.clientURL+"/?token="+tokenString)
	}
}

type googleUserInfo struct {
	Sub       string `json:"sub"`
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
}

func fetchGoogleUser(accessToken string) (googleUserInfo, error) {
	var info googleUserInfo
	req, err := http.NewRequest(http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return info, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return info, err
	}
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

func generateStateOauthCookie(c *gin.Context) string {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthstate", state, 7200, "/", "", false, true)
	return state
}
