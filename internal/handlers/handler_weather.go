package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// WeatherHandler exposes current conditions for the user's coordinates.
type WeatherHandler struct {
	weatherService portssvc.WeatherSvcFacade
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(ws portssvc.WeatherSvcFacade) *WeatherHandler {
	return &WeatherHandler{weatherService: ws}
}

func registerWeatherRoutes(rg *gin.RouterGroup, weatherService portssvc.WeatherSvcFacade) {
	h := NewWeatherHandler(weatherService)

	rg.GET("/weather", h.GetCurrentWeather)
}

// GetCurrentWeather godoc
// @Summary Current weather at a coordinate
// @Description Returns temperature, humidity and conditions for the given latitude/longitude.
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude (-90..90)"
// @Param lon query number true "Longitude (-180..180)"
// @Success 200 {object} domain.WeatherReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Weather provider unavailable"
// @Security BearerAuth
// @Router /weather [get]
func (h *WeatherHandler) GetCurrentWeather(c *gin.Context) {
	var query dto.WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Valid lat and lon query parameters are required"})
		return
	}

	report, err := h.weatherService.GetCurrentWeather(c.Request.Context(), *query.Lat, *query.Lon)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Weather lookup failed", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
