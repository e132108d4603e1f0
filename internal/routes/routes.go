// Package routes defines HTTP routes for the trails service.
package routes

import (
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/config"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/handlers"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/middleware"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/permissions"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handlers.AuthHandler,
	trailHandler *handlers.TrailHandler,
	featureHandler *handlers.FeatureHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(middleware.CSRF(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/auth-status", authHandler.AuthStatus)

	// Trail routes
	trails := router.Group("/trails")
	{
		trails.GET("", middleware.RequirePermission(authService, permissions.ViewTrails), trailHandler.List)
		trails.GET("/:id", middleware.RequirePermission(authService, permissions.ViewIDTrails), trailHandler.GetByID)
		trails.POST("", middleware.RequirePermission(authService, permissions.CreateTrails), trailHandler.Create)
		trails.PUT("/:id", middleware.RequirePermission(authService, permissions.EditTrails), trailHandler.Update)
		trails.PATCH("/:id", middleware.RequirePermission(authService, permissions.EditTrails), trailHandler.Update)
		trails.DELETE("/:id", middleware.RequirePermission(authService, permissions.DeleteTrails), trailHandler.Delete)
		trails.POST("/:id/features", middleware.RequirePermission(authService, permissions.AddFeatureToTrail), trailHandler.AddFeature)
		trails.DELETE("/:id/features", middleware.RequirePermission(authService, permissions.RemoveFeatureFromTrail), trailHandler.RemoveFeature)
	}

	// Feature routes
	features := router.Group("/features")
	{
		features.GET("", middleware.RequirePermission(authService, permissions.ViewAllFeatures), featureHandler.List)
		features.GET("/search", middleware.RequirePermission(authService, permissions.SearchFeatures), featureHandler.Search)
		features.POST("", middleware.RequirePermission(authService, permissions.AddFeature), featureHandler.Add)
		features.PUT("/:name", middleware.RequirePermission(authService, permissions.UpdateFeatureByName), featureHandler.Rename)
		features.DELETE("/:name", middleware.RequirePermission(authService, permissions.DeleteFeature), featureHandler.Delete)
	}
}
