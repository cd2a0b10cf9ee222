package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/utils"
	"github.com/google/uuid"
)

// authService orchestrates signup and login against the credential store.
type authService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	profileRepo  portsrepo.FarmProfileRepository
	tokenService portssvc.TokenSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepository, profileRepo portsrepo.FarmProfileRepository, tokenService portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		tokenService: tokenService,
	}
}

// Signup creates the account and issues a session token in one operation.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:              uuid.NewString(),
		Name:                req.Name,
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:        passwordHash,
		Country:             req.Country,
		Region:              req.Region,
		HasCompletedProfile: false,
		CreatedAt:           now,
		LastUpdatedAt:       now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, "", apperrors.ErrDuplicate
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := s.tokenService.GenerateAccessToken(ctx, &user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token after signup: %w", err)
	}

	s.LogInfo(ctx, "user signed up", "user_id", user.UserID)
	return &user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *domain.FarmProfile, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, "", apperrors.ErrUnauthorized
		}
		return nil, nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, "", apperrors.ErrUnauthorized
	}

	// Stored digests from the previous system are unsalted SHA-256; upgrade
	// them to bcrypt now that we hold the verified plaintext. Best effort:
	// a failed upgrade must not fail the login.
	if utils.IsLegacyDigest(user.PasswordHash) {
		if newHash, hashErr := utils.HashPassword(req.Password); hashErr == nil {
			if updErr := s.userRepo.UpdatePasswordHash(ctx, user.UserID, newHash); updErr != nil {
				s.LogWarn(ctx, "failed to upgrade legacy credential digest", "user_id", user.UserID)
			} else {
				user.PasswordHash = newHash
			}
		}
	}

	var profile *domain.FarmProfile
	if user.HasCompletedProfile {
		profile, err = s.profileRepo.FindProfileByUserID(ctx, user.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, "", fmt.Errorf("failed to load farm profile: %w", err)
		}
	}

	token, _, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.LogInfo(ctx, "user logged in", "user_id", user.UserID)
	return user, profile, token, nil
}

// LoginWithGoogle finds or creates the account for a verified Google identity.
// Accounts created this way start with empty country/region; the profile gate
// routes them through the completion flow like any other new account.
func (s *authService) LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return nil, "", apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}

		// No local credential for provider-backed accounts; store a random
		// digest so password login can never succeed for them.
		randomSecret, rndErr := utils.GenerateSecureRandomString(32)
		if rndErr != nil {
			return nil, "", fmt.Errorf("failed to generate placeholder credential: %w", rndErr)
		}
		placeholderHash, hashErr := utils.HashPassword(randomSecret)
		if hashErr != nil {
			return nil, "", fmt.Errorf("failed to hash placeholder credential: %w", hashErr)
		}

		now := time.Now()
		newUser := domain.User{
			UserID:         uuid.NewString(),
			Name:           info.Name,
			Email:          email,
			PasswordHash:   placeholderHash,
			AuthProvider:   "google",
			ProviderUserID: info.ID,
			CreatedAt:      now,
			LastUpdatedAt:  now,
		}
		if createErr := s.userRepo.CreateUser(ctx, newUser); createErr != nil {
			return nil, "", fmt.Errorf("failed to create user from google identity: %w", createErr)
		}
		user = &newUser
		s.LogInfo(ctx, "user created via google sign-in", "user_id", user.UserID)
	}

	token, _, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}
