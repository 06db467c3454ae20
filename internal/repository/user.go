// Package repository provides the data access layer for the accounts service.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
	"github.com/VistorGiese/accounts-service/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	ListAll(ctx context.Context) ([]models.PublicUser, error)
	Count(ctx context.Context) (int, error)
}

// userRepository is an in-memory implementation. State lives for the
// lifetime of the process; there is no durability across restarts.
type userRepository struct {
	mu     sync.Mutex
	users  []*models.User
	nextID int64
}

// NewUserRepository creates an empty in-memory UserRepository. Each instance
// carries its own id sequence starting at 1.
func NewUserRepository() UserRepository {
	return &userRepository{}
}

// Create inserts a new user. The uniqueness check and the insert happen
// under one lock acquisition, so concurrent registrations of the same
// username cannot both succeed.
func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, apperrors.ErrConflict
		}
	}

	r.nextID++
	user := &models.User{
		ID:           r.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users = append(r.users, user)

	copied := *user
	return &copied, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListAll returns public views of every user in insertion order.
func (r *userRepository) ListAll(ctx context.Context) ([]models.PublicUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := make([]models.PublicUser, 0, len(r.users))
	for _, u := range r.users {
		views = append(views, u.Public())
	}
	return views, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}
