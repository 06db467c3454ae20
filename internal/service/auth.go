package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
	"github.com/VistorGiese/accounts-service/internal/logger"
	"github.com/VistorGiese/accounts-service/internal/models"
	"github.com/VistorGiese/accounts-service/internal/repository"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

// LoginResult carries the bearer token and the public user view returned
// by a successful login.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService orchestrates registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.PublicUser, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     PasswordHasher
	jwtService JWTService
	logger     *logger.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, jwtService JWTService, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register validates input, hashes the password and creates the user.
// Validation happens before the store is touched, so a rejected request
// leaves the store unchanged.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinPasswordLength)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err.Error())
		return nil, fmt.Errorf("%w: password hashing failed", apperrors.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, username, email, passwordHash)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	view := user.Public()
	return &view, nil
}

// Login authenticates the credentials and issues a bearer token. Unknown
// username and wrong password collapse into the same error so the endpoint
// cannot be used to enumerate usernames.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("failed to look up user", "username", username, "error", err.Error())
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.Username)
	if err != nil {
		s.logger.Error("failed to sign token", "user_id", user.ID, "error", err.Error())
		return nil, fmt.Errorf("%w: token signing failed", apperrors.ErrInternal)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return &LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}
