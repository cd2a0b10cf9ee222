package repositories

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// FarmProfileRepository defines persistence operations for farm profiles.
type FarmProfileRepository interface {
	// CreateProfileAndMarkComplete inserts the profile and flips the owning
	// user's has_completed_profile flag and farm_profile_id reference in one
	// database transaction. No reader may observe one write without the other.
	// A second profile for the same user returns apperrors.ErrDuplicate.
	CreateProfileAndMarkComplete(ctx context.Context, profile domain.FarmProfile) error

	// FindProfileByUserID retrieves the profile attached to a user,
	// apperrors.ErrNotFound when none exists.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.FarmProfile, error)

	// UpdateProfile overwrites the mutable fields of an existing profile,
	// apperrors.ErrNotFound when none exists.
	UpdateProfile(ctx context.Context, profile domain.FarmProfile) error
}
