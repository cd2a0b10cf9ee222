package domain

import "time"

// User represents a farmer account in the domain.
// PasswordHash is carried for verification only and must never reach a response body.
type User struct {
	UserID              string  `json:"userID"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	PasswordHash        string  `json:"-"`
	Country             string  `json:"country"`
	Region              string  `json:"region"`
	HasCompletedProfile bool    `json:"hasCompletedProfile"`
	FarmProfileID       *string `json:"farmProfileID,omitempty"`

	AuthProvider   string `json:"-"`
	ProviderUserID string `json:"-"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// GoogleUserInfo mirrors the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
