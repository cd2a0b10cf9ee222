package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/google/uuid"
)

// profileService manages the one-to-one farm profile of a user.
type profileService struct {
	BaseService
	profileRepo portsrepo.FarmProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo portsrepo.FarmProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

func toCropTypes(crops []string) []domain.CropType {
	if len(crops) == 0 {
		return nil
	}
	out := make([]domain.CropType, len(crops))
	for i, c := range crops {
		out[i] = domain.CropType(c)
	}
	return out
}

func (s *profileService) CompleteProfile(ctx context.Context, userID string, req dto.CompleteProfileRequest) (*domain.FarmProfile, error) {
	now := time.Now()
	profile := domain.FarmProfile{
		ProfileID:      uuid.NewString(),
		UserID:         userID,
		FarmName:       req.FarmName,
		FarmSize:       *req.FarmSize,
		SizeUnit:       domain.SizeUnit(req.SizeUnit),
		PrimaryCrop:    domain.CropType(req.PrimaryCrop),
		SecondaryCrops: toCropTypes(req.SecondaryCrops),
		SoilType:       domain.SoilType(req.SoilType),
		IrrigationType: domain.IrrigationType(req.IrrigationType),
		Location:       domain.Location{Lat: *req.Location.Lat, Lng: *req.Location.Lng},
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}

	// Profile insert and the user's completion flag are one transaction in
	// the repository; there is no observable half-completed state.
	if err := s.profileRepo.CreateProfileAndMarkComplete(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	s.LogInfo(ctx, "farm profile completed", "user_id", userID, "profile_id", profile.ProfileID)
	return &profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.FarmProfile, error) {
	existing, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile for update: %w", err)
	}

	if req.FarmName != nil {
		existing.FarmName = *req.FarmName
	}
	if req.FarmSize != nil {
		existing.FarmSize = *req.FarmSize
	}
	if req.SizeUnit != nil {
		existing.SizeUnit = domain.SizeUnit(*req.SizeUnit)
	}
	if req.PrimaryCrop != nil {
		existing.PrimaryCrop = domain.CropType(*req.PrimaryCrop)
	}
	if req.SecondaryCrops != nil {
		existing.SecondaryCrops = toCropTypes(req.SecondaryCrops)
	}
	if req.SoilType != nil {
		existing.SoilType = domain.SoilType(*req.SoilType)
	}
	if req.IrrigationType != nil {
		existing.IrrigationType = domain.IrrigationType(*req.IrrigationType)
	}
	if req.Location != nil {
		existing.Location = domain.Location{Lat: *req.Location.Lat, Lng: *req.Location.Lng}
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.profileRepo.UpdateProfile(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.LogInfo(ctx, "farm profile updated", "user_id", userID)
	return existing, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.FarmProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}
