// Package config handles configuration loading for the accounts service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the accounts service.
type Config struct {
	Port           string   `env:"PORT" envDefault:"3000"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel       int      `env:"LOG_LEVEL" envDefault:"0"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	JWT            JWT      `envPrefix:"JWT_"`
	Storage        Storage  `envPrefix:"STORAGE_"`
}

// JWT contains token signing parameters. The secret is process-wide state,
// loaded once at startup and never rotated at runtime.
type JWT struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

// Storage contains file upload parameters.
type Storage struct {
	Backend        string `env:"BACKEND" envDefault:"disk"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	Minio          Minio  `envPrefix:"MINIO_"`
}

// Minio contains object storage connection parameters, used when
// Storage.Backend is "minio".
type Minio struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"accounts-uploads"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. There is no
// usable default for a signing key, so startup must fail.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &cfg, nil
}
