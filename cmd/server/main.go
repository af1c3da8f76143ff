package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/arifhn/socialbase/backend/internal/router"
	"github.com/arifhn/socialbase/backend/pkg/config"
	"github.com/arifhn/socialbase/backend/pkg/firebase"
	"github.com/arifhn/socialbase/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize database connections (also loads .env)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	cfg := config.Load()

	// Firebase is optional; without credentials only local JWT auth is served
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseAuthClient, cfg.JWTSecret)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
