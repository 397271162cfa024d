package repository

import (
	"context"

	"github.com/Lmsantos89/boat-manager-app/internal/domain"
)

// UserRepository persists username/password-hash pairs. Username uniqueness
// is enforced at creation time.
type UserRepository interface {
	// Create persists a new user and assigns its ID. Returns ErrDuplicate
	// if the username is already taken.
	Create(ctx context.Context, user *domain.User) error
	// FindByUsername returns the user with the given username, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns the user with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}
