package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentWeather_Success(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"units": r.URL.Query().Get("units"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":24.6,"feels_like":26.2,"humidity":61},"weather":[{"description":"scattered clouds","icon":"03d"}]}`))
	}))
	defer srv.Close()

	svc := services.NewWeatherService("test-key",
		services.WithWeatherBaseURL(srv.URL),
		services.WithWeatherHTTPClient(srv.Client()),
	)

	report, err := svc.GetCurrentWeather(context.Background(), 23.02, 72.57)

	require.NoError(t, err)
	assert.Equal(t, 25, report.Temperature, "temperature is rounded to the nearest degree")
	assert.Equal(t, 26, report.FeelsLike)
	assert.Equal(t, 61, report.Humidity)
	assert.Equal(t, "scattered clouds", report.Description)
	assert.Equal(t, "03d", report.Icon)
	assert.Equal(t, "metric", gotQuery["units"])
	assert.Equal(t, "test-key", gotQuery["appid"])
}

func TestGetCurrentWeather_ProviderFailureIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := services.NewWeatherService("test-key",
		services.WithWeatherBaseURL(srv.URL),
		services.WithWeatherHTTPClient(srv.Client()),
	)

	report, err := svc.GetCurrentWeather(context.Background(), 23.02, 72.57)

	assert.Nil(t, report)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestGetCurrentWeather_MissingKeyFailsFast(t *testing.T) {
	svc := services.NewWeatherService("")

	report, err := svc.GetCurrentWeather(context.Background(), 23.02, 72.57)

	assert.Nil(t, report)
	assert.Error(t, err)
}
