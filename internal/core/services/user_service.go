package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
)

// userService provides read access to user records.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	profileRepo portsrepo.FarmProfileRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, profileRepo portsrepo.FarmProfileRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserWithProfile(ctx context.Context, userID string) (*domain.User, *domain.FarmProfile, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if !user.HasCompletedProfile {
		return user, nil, nil
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Flag and reference are written in one transaction, so this
			// should not happen; treat as profile-less rather than failing.
			s.LogWarn(ctx, "user marked profile-complete but profile missing")
			return user, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load farm profile: %w", err)
	}

	return user, profile, nil
}
