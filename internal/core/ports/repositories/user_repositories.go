package repositories

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// UserRepository defines persistence operations for farmer accounts.
type UserRepository interface {
	// CreateUser persists a new user with create-if-absent semantics:
	// a case-insensitive email collision returns apperrors.ErrDuplicate
	// and leaves the store unchanged.
	CreateUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID, apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email (matched case-insensitively),
	// apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdatePasswordHash replaces the stored credential digest. Used for
	// the legacy digest upgrade on login.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}
