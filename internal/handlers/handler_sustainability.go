package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SustainabilityHandler scores farm practices and returns advisories.
type SustainabilityHandler struct {
	sustainabilityService portssvc.SustainabilitySvcFacade
}

// NewSustainabilityHandler creates a new SustainabilityHandler.
func NewSustainabilityHandler(ss portssvc.SustainabilitySvcFacade) *SustainabilityHandler {
	return &SustainabilityHandler{sustainabilityService: ss}
}

func registerSustainabilityRoutes(rg *gin.RouterGroup, sustainabilityService portssvc.SustainabilitySvcFacade) {
	h := NewSustainabilityHandler(sustainabilityService)

	sustainability := rg.Group("/sustainability")
	{
		sustainability.POST("/predict", h.Predict)
	}
}

// Predict godoc
// @Summary Score farm sustainability
// @Description Runs the scoring model on eight farm metrics and returns a score, a rating tier and rule-based recommendations.
// @Tags sustainability
// @Accept json
// @Produce json
// @Param features body dto.PredictRequest true "Farm metrics"
// @Success 200 {object} domain.SustainabilityReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Scorer failed"
// @Security BearerAuth
// @Router /sustainability/predict [post]
func (h *SustainabilityHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err, "All eight farm metrics are required")})
		return
	}

	report, err := h.sustainabilityService.Predict(c.Request.Context(), req.ToFeatures())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Sustainability prediction failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate sustainability prediction"})
		return
	}

	c.JSON(http.StatusOK, report)
}
