package main

import (
	"context"
	"log"

	"fittrack/auth"
	"fittrack/config"
	"fittrack/db"
	"fittrack/routes"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	log.Println("Connected to MongoDB")

	var googleCfg *oauth2.Config
	if cfg.GoogleEnabled() {
		googleCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		}
	}
	a := auth.New(cfg.JWTSecret, googleCfg, cfg.ClientURL)

	r := routes.SetupRouter(cfg, client, a)

	log.Println("Starting server on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
