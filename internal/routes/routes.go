// Package routes defines HTTP routes for the accounts service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VistorGiese/accounts-service/internal/config"
	"github.com/VistorGiese/accounts-service/internal/handlers"
	"github.com/VistorGiese/accounts-service/internal/middleware"
	"github.com/VistorGiese/accounts-service/internal/service"
)

// Handlers groups the handler set wired into the router.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Users  *handlers.UserHandler
	Upload *handlers.UploadHandler
	Health *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, cfg *config.Config, metrics *middleware.Metrics) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	if metrics != nil {
		router.Use(metrics.Handler())
	}

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public operations
	router.POST("/register", h.Auth.Register)
	router.POST("/login", h.Auth.Login)
	router.GET("/users", h.Users.List)
	router.GET("/users/:id", h.Users.GetByID)

	// Protected operations
	router.POST("/upload", middleware.RequireAuth(jwtService), h.Upload.Upload)
}
