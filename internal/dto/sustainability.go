package dto

import "github.com/agrolink/agrolink-backend/internal/core/domain"

// PredictRequest carries the eight numeric features of the sustainability
// scorer. Pointers keep "missing" distinct from a legitimate zero value.
type PredictRequest struct {
	SoilPH            *float64 `json:"soil_ph" binding:"required"`
	SoilMoisture      *float64 `json:"soil_moisture" binding:"required"`
	TemperatureC      *float64 `json:"temperature_c" binding:"required"`
	RainfallMM        *float64 `json:"rainfall_mm" binding:"required"`
	CropType          *float64 `json:"crop_type" binding:"required"`
	FertilizerUsageKG *float64 `json:"fertilizer_usage_kg" binding:"required"`
	PesticideUsageKG  *float64 `json:"pesticide_usage_kg" binding:"required"`
	CropYieldTon      *float64 `json:"crop_yield_ton" binding:"required"`
}

// ToFeatures converts the request into the domain feature vector.
func (r PredictRequest) ToFeatures() domain.SustainabilityFeatures {
	return domain.SustainabilityFeatures{
		SoilPH:            *r.SoilPH,
		SoilMoisture:      *r.SoilMoisture,
		TemperatureC:      *r.TemperatureC,
		RainfallMM:        *r.RainfallMM,
		CropType:          *r.CropType,
		FertilizerUsageKG: *r.FertilizerUsageKG,
		PesticideUsageKG:  *r.PesticideUsageKG,
		CropYieldTon:      *r.CropYieldTon,
	}
}
