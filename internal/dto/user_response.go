package dto

import (
	"time"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// UserResponse is the sanitized user view: no credential digest, ever.
// FarmDetails is populated when the user has a completed profile.
type UserResponse struct {
	UserID              string               `json:"userID"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	Country             string               `json:"country"`
	Region              string               `json:"region"`
	HasCompletedProfile bool                 `json:"hasCompletedProfile"`
	FarmDetails         *FarmProfileResponse `json:"farmDetails,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// ToUserResponse converts a domain.User (and optional profile) to the response DTO.
func ToUserResponse(user *domain.User, profile *domain.FarmProfile) UserResponse {
	resp := UserResponse{
		UserID:              user.UserID,
		Name:                user.Name,
		Email:               user.Email,
		Country:             user.Country,
		Region:              user.Region,
		HasCompletedProfile: user.HasCompletedProfile,
		CreatedAt:           user.CreatedAt,
	}
	if profile != nil {
		p := ToFarmProfileResponse(profile)
		resp.FarmDetails = &p
	}
	return resp
}
