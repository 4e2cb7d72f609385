package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

func newTestAuth() *Auth {
	return New("test-secret", nil, "http://localhost:3000")
}

func TestGenerateAndValidateJWT(t *testing.T) {
	a := newTestAuth()

	tokenString, err := a.GenerateJWT("662f0a1b2c3d4e5f60718293")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := a.ValidateJWT(tokenString)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("expected valid token with map claims")
	}
	if claims["user_id"] != "662f0a1b2c3d4e5f60718293" {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	tokenString, err := New("other-secret", nil, "").GenerateJWT("someone")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := newTestAuth().ValidateJWT(tokenString); err == nil {
		t.Fatal("expected validation to fail for token signed with another secret")
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := newTestAuth()

	r := gin.New()
	r.GET("/protected", a.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserID)})
	})

	// No header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", w.Code)
	}

	// Malformed header.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("malformed header: expected 401, got %d", w.Code)
	}

	// Garbage token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", w.Code)
	}

	// Valid token reaches the handler with the user id set.
	token, err := a.GenerateJWT("abc123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}
