package services

import (
	"context"
	"time"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
	"github.com/agrolink/agrolink-backend/internal/dto"
)

// AuthSvcFacade orchestrates account creation and credential verification.
type AuthSvcFacade interface {
	// Signup validates and persists a new account, then issues a session
	// token in the same operation so no account exists without a usable
	// session. Returns apperrors.ErrDuplicate for an existing email.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, string, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password are indistinguishable to the caller: both return
	// apperrors.ErrUnauthorized. On success the user's farm profile (if any)
	// is returned alongside.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, *domain.FarmProfile, string, error)

	// LoginWithGoogle finds or creates the account matching a verified
	// Google identity and issues a session token.
	LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, string, error)
}

// TokenSvcFacade issues and verifies session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed, time-limited token bound to the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// VerifyAccessToken decodes a token and returns the bound user ID.
	// Any structural, signature or expiry failure returns apperrors.ErrUnauthorized.
	VerifyAccessToken(ctx context.Context, tokenString string) (string, error)
}
