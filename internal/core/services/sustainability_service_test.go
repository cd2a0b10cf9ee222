package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	"github.com/agrolink/agrolink-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScorer returns a fixed score (or error) and records the feature vector.
type stubScorer struct {
	score    float64
	err      error
	received []float64
}

func (s *stubScorer) Score(_ context.Context, features []float64) (float64, error) {
	s.received = features
	return s.score, s.err
}

func healthyFeatures() domain.SustainabilityFeatures {
	return domain.SustainabilityFeatures{
		SoilPH:            6.8,
		SoilMoisture:      45,
		TemperatureC:      24,
		RainfallMM:        120,
		CropType:          2,
		FertilizerUsageKG: 40,
		PesticideUsageKG:  10,
		CropYieldTon:      60,
	}
}

func TestPredict_PassesFeaturesInOrder(t *testing.T) {
	scorer := &stubScorer{score: 75}
	svc := services.NewSustainabilityService(scorer)

	report, err := svc.Predict(context.Background(), healthyFeatures())

	require.NoError(t, err)
	assert.Equal(t, 75.0, report.Score)
	// The scorer contract is positional: soil pH first, crop yield last.
	assert.Equal(t, []float64{6.8, 45, 24, 120, 2, 40, 10, 60}, scorer.received)
}

func TestPredict_ScorerFailureIsInternal(t *testing.T) {
	scorer := &stubScorer{err: errors.New("model file missing")}
	svc := services.NewSustainabilityService(scorer)

	report, err := svc.Predict(context.Background(), healthyFeatures())

	assert.Nil(t, report)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}

func TestRatingForScore_Tiers(t *testing.T) {
	tests := []struct {
		score  float64
		rating string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Very Good"},
		{80, "Very Good"},
		{75, "Good"},
		{70, "Good"},
		{65, "Fair"},
		{60, "Fair"},
		{59.9, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rating, services.RatingForScore(tt.score), "score %v", tt.score)
	}
}

func TestRecommendationsFor_HealthyFarmGetsNone(t *testing.T) {
	assert.Empty(t, services.RecommendationsFor(healthyFeatures()))
}

func TestRecommendationsFor_Thresholds(t *testing.T) {
	f := healthyFeatures()
	f.SoilPH = 5.5
	f.SoilMoisture = 20
	f.FertilizerUsageKG = 80
	f.PesticideUsageKG = 60
	f.CropYieldTon = 30

	recs := services.RecommendationsFor(f)

	assert.Equal(t, []string{
		"Consider soil pH adjustment for optimal crop growth",
		"Implement better irrigation practices to maintain soil moisture",
		"Consider reducing chemical fertilizer usage and adopt organic alternatives",
		"Look into integrated pest management and organic pest control",
		"Consider crop rotation and soil enrichment to improve yield",
	}, recs)
}

func TestRecommendationsFor_AlkalineSoilAlsoTriggersPHAdvice(t *testing.T) {
	f := healthyFeatures()
	f.SoilPH = 8.2

	recs := services.RecommendationsFor(f)

	require.Len(t, recs, 1)
	assert.Equal(t, "Consider soil pH adjustment for optimal crop growth", recs[0])
}
