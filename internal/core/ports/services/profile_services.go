package services

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
	"github.com/agrolink/agrolink-backend/internal/dto"
)

// ProfileSvcFacade manages the one-to-one farm profile of a user.
type ProfileSvcFacade interface {
	// CompleteProfile creates the farm profile and atomically marks the user
	// as profile-complete. Returns apperrors.ErrDuplicate if a profile
	// already exists for the user.
	CompleteProfile(ctx context.Context, userID string, req dto.CompleteProfileRequest) (*domain.FarmProfile, error)

	// UpdateProfile applies a partial merge onto the existing profile.
	// Returns apperrors.ErrNotFound when no profile exists yet.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.FarmProfile, error)

	// GetProfile retrieves the user's profile, apperrors.ErrNotFound when absent.
	GetProfile(ctx context.Context, userID string) (*domain.FarmProfile, error)
}
