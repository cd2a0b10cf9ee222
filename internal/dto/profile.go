package dto

import (
	"time"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// LocationRequest is a coordinate pair with declared bounds.
// Pointers distinguish an omitted coordinate from a zero one.
type LocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

// CompleteProfileRequest carries the full set of farm-profile fields for the
// one-time completion flow.
type CompleteProfileRequest struct {
	FarmName       string           `json:"farmName" binding:"required,min=2"`
	FarmSize       *float64         `json:"farmSize" binding:"required,gte=0"`
	SizeUnit       string           `json:"sizeUnit" binding:"required,oneof=acres hectares"`
	PrimaryCrop    string           `json:"primaryCrop" binding:"required,oneof=rice wheat corn soybeans cotton sugarcane vegetables fruits other"`
	SecondaryCrops []string         `json:"secondaryCrops" binding:"omitempty,dive,oneof=rice wheat corn soybeans cotton sugarcane vegetables fruits other"`
	SoilType       string           `json:"soilType" binding:"required,oneof=clay sandy loamy silt peat chalky other"`
	IrrigationType string           `json:"irrigationType" binding:"required,oneof=drip sprinkler surface center-pivot subsurface manual none other"`
	Location       *LocationRequest `json:"location" binding:"required"`
}

// UpdateProfileRequest carries a partial merge onto an existing profile.
// Only non-nil fields are applied.
type UpdateProfileRequest struct {
	FarmName       *string          `json:"farmName" binding:"omitempty,min=2"`
	FarmSize       *float64         `json:"farmSize" binding:"omitempty,gte=0"`
	SizeUnit       *string          `json:"sizeUnit" binding:"omitempty,oneof=acres hectares"`
	PrimaryCrop    *string          `json:"primaryCrop" binding:"omitempty,oneof=rice wheat corn soybeans cotton sugarcane vegetables fruits other"`
	SecondaryCrops []string         `json:"secondaryCrops" binding:"omitempty,dive,oneof=rice wheat corn soybeans cotton sugarcane vegetables fruits other"`
	SoilType       *string          `json:"soilType" binding:"omitempty,oneof=clay sandy loamy silt peat chalky other"`
	IrrigationType *string          `json:"irrigationType" binding:"omitempty,oneof=drip sprinkler surface center-pivot subsurface manual none other"`
	Location       *LocationRequest `json:"location" binding:"omitempty"`
}

// FarmProfileResponse is the serialized farm profile.
type FarmProfileResponse struct {
	ProfileID      string          `json:"profileID"`
	UserID         string          `json:"userID"`
	FarmName       string          `json:"farmName"`
	FarmSize       float64         `json:"farmSize"`
	SizeUnit       string          `json:"sizeUnit"`
	PrimaryCrop    string          `json:"primaryCrop"`
	SecondaryCrops []string        `json:"secondaryCrops,omitempty"`
	SoilType       string          `json:"soilType"`
	IrrigationType string          `json:"irrigationType"`
	Location       domain.Location `json:"location"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ProfileEnvelope wraps profile mutations with the message the frontend shows.
type ProfileEnvelope struct {
	Message     string              `json:"message"`
	FarmProfile FarmProfileResponse `json:"farmProfile"`
}

// ToFarmProfileResponse converts a domain.FarmProfile to its response DTO.
func ToFarmProfileResponse(p *domain.FarmProfile) FarmProfileResponse {
	secondary := make([]string, len(p.SecondaryCrops))
	for i, c := range p.SecondaryCrops {
		secondary[i] = string(c)
	}
	return FarmProfileResponse{
		ProfileID:      p.ProfileID,
		UserID:         p.UserID,
		FarmName:       p.FarmName,
		FarmSize:       p.FarmSize,
		SizeUnit:       string(p.SizeUnit),
		PrimaryCrop:    string(p.PrimaryCrop),
		SecondaryCrops: secondary,
		SoilType:       string(p.SoilType),
		IrrigationType: string(p.IrrigationType),
		Location:       p.Location,
		CreatedAt:      p.CreatedAt,
		LastUpdatedAt:  p.LastUpdatedAt,
	}
}
