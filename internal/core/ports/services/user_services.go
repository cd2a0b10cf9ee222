package services

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// UserSvcFacade exposes read access to user records for handlers and
// middleware. Writes go through the auth and profile services.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserWithProfile retrieves a user together with their farm profile
	// when one exists (profile is nil otherwise).
	GetUserWithProfile(ctx context.Context, userID string) (*domain.User, *domain.FarmProfile, error)
}
