package services

import (
	"context"

	"github.com/agrolink/agrolink-backend/internal/core/domain"
)

// WeatherSvcFacade wraps the external weather provider. Provider failures
// surface as apperrors.ErrUpstream; callers never see provider internals.
type WeatherSvcFacade interface {
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error)
}
