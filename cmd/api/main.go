// Package main is the entry point for the accounts service.
package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/VistorGiese/accounts-service/internal/config"
	"github.com/VistorGiese/accounts-service/internal/handlers"
	"github.com/VistorGiese/accounts-service/internal/logger"
	"github.com/VistorGiese/accounts-service/internal/middleware"
	"github.com/VistorGiese/accounts-service/internal/repository"
	"github.com/VistorGiese/accounts-service/internal/routes"
	"github.com/VistorGiese/accounts-service/internal/service"
	"github.com/VistorGiese/accounts-service/internal/storage"
	"github.com/VistorGiese/accounts-service/internal/storage/disk"
	"github.com/VistorGiese/accounts-service/internal/storage/miniostore"
)

// @title Accounts Service API
// @version 1.0
// @description User registration, login and authenticated file upload
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := logger.New(0)

	// Load configuration; a missing JWT secret is fatal
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "error", err.Error())
	}
	log = logger.New(cfg.LogLevel)

	// Initialize repository
	userRepo := repository.NewUserRepository()

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	if jwtService == nil {
		log.Fatal("failed to initialize token service")
	}
	hasher := service.NewPasswordHasher(bcrypt.DefaultCost)
	authService := service.NewAuthService(userRepo, hasher, jwtService, log)

	// Initialize file storage
	fileStore, err := newFileStore(cfg)
	if err != nil {
		log.Fatal("failed to initialize file storage", "error", err.Error())
	}

	// Initialize handlers
	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService, log),
		Users:  handlers.NewUserHandler(userRepo, log),
		Upload: handlers.NewUploadHandler(fileStore, cfg.Storage.MaxUploadBytes, log),
		Health: handlers.NewHealthHandler(),
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	routes.Setup(router, h, jwtService, cfg, metrics)

	// Start server
	log.Info("starting accounts service", "port", cfg.Port, "storage", cfg.Storage.Backend)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("server stopped", "error", err.Error())
	}
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	switch cfg.Storage.Backend {
	case "disk":
		return disk.New(cfg.Storage.UploadDir)
	case "minio":
		client, err := minio.New(cfg.Storage.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.Minio.AccessKey, cfg.Storage.Minio.SecretKey, ""),
			Secure: cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return miniostore.NewClient(context.Background(), client, cfg.Storage.Minio.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
