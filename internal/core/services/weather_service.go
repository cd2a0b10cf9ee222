package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
)

const defaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// weatherService wraps the OpenWeather current-weather endpoint.
type weatherService struct {
	BaseService
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// WeatherOption customizes the weather service (tests inject a server URL
// and client here).
type WeatherOption func(*weatherService)

func WithWeatherBaseURL(baseURL string) WeatherOption {
	return func(s *weatherService) { s.baseURL = baseURL }
}

func WithWeatherHTTPClient(client *http.Client) WeatherOption {
	return func(s *weatherService) { s.httpClient = client }
}

// NewWeatherService creates a new weather service.
func NewWeatherService(apiKey string, opts ...WeatherOption) portssvc.WeatherSvcFacade {
	s := &weatherService{
		apiKey:     apiKey,
		baseURL:    defaultOpenWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// openWeatherResponse is the subset of the provider payload we consume.
type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error) {
	if s.apiKey == "" {
		return nil, apperrors.NewInternalError("Weather provider not configured", errors.New("openweather api key missing"))
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%g", lat))
	q.Set("lon", fmt.Sprintf("%g", lon))
	q.Set("units", "metric")
	q.Set("appid", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("Failed to fetch weather data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.LogWarn(ctx, "weather provider returned non-200", "status", resp.StatusCode)
		return nil, apperrors.NewUpstreamError("Failed to fetch weather data", fmt.Errorf("provider status %d", resp.StatusCode))
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewUpstreamError("Invalid weather data format", err)
	}
	if len(payload.Weather) == 0 {
		return nil, apperrors.NewUpstreamError("Invalid weather data format", errors.New("missing weather block"))
	}

	return &domain.WeatherReport{
		Temperature: int(math.Round(payload.Main.Temp)),
		FeelsLike:   int(math.Round(payload.Main.FeelsLike)),
		Humidity:    payload.Main.Humidity,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
	}, nil
}
