package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment. It is resolved once in
// main and passed explicitly to the packages that need it; nothing in this
// repo reads os.Getenv after startup.
type Config struct {
	MongoURI  string
	JWTSecret string
	Port      string
	ClientURL string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := Config{
		MongoURI:           os.Getenv("MONGODB_URI"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		Port:               os.Getenv("PORT"),
		ClientURL:          os.Getenv("CLIENT_URL"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ClientURL == "" {
		cfg.ClientURL = "http://localhost:3000"
	}

	if cfg.MongoURI == "" {
		return cfg, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// GoogleEnabled reports whether the optional Google sign-in routes should be
// mounted.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
