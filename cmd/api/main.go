// Package main is the entry point for the trails service.
package main

import (
	"fmt"
	"log"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/authprovider"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/config"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/database"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/handlers"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/middleware"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/repository"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/routes"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Trails Micro-service API
// @version 1.0
// @description CRUD service for trails, features and their associations
// @BasePath /
func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	logger := middleware.NewLogger(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := database.Init(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if cfg.SeedDevData {
		if err := database.SeedDevData(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	trailRepo := repository.NewTrailRepository(db)
	featureRepo := repository.NewFeatureRepository(db)

	// Initialize services
	sessions := session.NewStore()
	verifier := authprovider.NewClient(cfg.AuthProviderURL, cfg.AuthTimeout)
	authService := service.NewAuthService(userRepo, verifier, sessions)
	trailService := service.NewTrailService(trailRepo, userRepo)
	featureService := service.NewFeatureService(featureRepo)

	// Initialize handlers
	cookies := handlers.NewCookieHelper(cfg.CookieSecure)
	authHandler := handlers.NewAuthHandler(authService, cookies)
	trailHandler := handlers.NewTrailHandler(trailService)
	featureHandler := handlers.NewFeatureHandler(featureService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Setup routes
	routes.Setup(router, cfg, authService, authHandler, trailHandler, featureHandler, healthHandler)

	// Start server
	log.Printf("Starting trails service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
