package services

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// Scorer is the opaque external scoring routine: eight ordered numeric
// features in, one score in [0,100] out.
type Scorer interface {
	Score(ctx context.Context, features []float64) (float64, error)
}

// SustainabilitySvcFacade wraps the scorer with the five-tier rating and
// rule-based recommendations.
type SustainabilitySvcFacade interface {
	Predict(ctx context.Context, features domain.SustainabilityFeatures) (*domain.SustainabilityReport, error)
}
