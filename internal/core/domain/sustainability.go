package domain

// SustainabilityFeatures are the eight numeric inputs of the scoring routine,
// in the positional order the routine expects them.
type SustainabilityFeatures struct {
	SoilPH            float64 `json:"soil_ph"`
	SoilMoisture      float64 `json:"soil_moisture"`
	TemperatureC      float64 `json:"temperature_c"`
	RainfallMM        float64 `json:"rainfall_mm"`
	CropType          float64 `json:"crop_type"`
	FertilizerUsageKG float64 `json:"fertilizer_usage_kg"`
	PesticideUsageKG  float64 `json:"pesticide_usage_kg"`
	CropYieldTon      float64 `json:"crop_yield_ton"`
}

// Ordered returns the features as a positional slice for the scorer invocation.
func (f SustainabilityFeatures) Ordered() []float64 {
	return []float64{
		f.SoilPH,
		f.SoilMoisture,
		f.TemperatureC,
		f.RainfallMM,
		f.CropType,
		f.FertilizerUsageKG,
		f.PesticideUsageKG,
		f.CropYieldTon,
	}
}

// SustainabilityReport wraps the raw score with the five-tier rating and
// rule-based advisories.
type SustainabilityReport struct {
	Score           float64  `json:"score"`
	Rating          string   `json:"rating"`
	Recommendations []string `json:"recommendations"`
}
