package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles farm profile creation, updates and reads.
type ProfileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps portssvc.ProfileSvcFacade) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := NewProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.POST("/complete", h.CompleteProfile)
		profile.PUT("/update", h.UpdateProfile)
	}
}

// CompleteProfile godoc
// @Summary Complete the farm profile
// @Description Creates the farm profile and marks the account profile-complete in one step. A second call fails: the profile can only be completed once.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.CompleteProfileRequest true "Farm profile"
// @Success 200 {object} dto.ProfileEnvelope
// @Failure 400 {object} ErrorResponse "Validation failure or profile already completed"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/complete [post]
func (h *ProfileHandler) CompleteProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err, "Invalid farm profile data")})
		return
	}

	profile, err := h.profileService.CompleteProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile already completed"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to complete profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileEnvelope{
		Message:     "Profile completed successfully",
		FarmProfile: dto.ToFarmProfileResponse(profile),
	})
}

// UpdateProfile godoc
// @Summary Update the farm profile
// @Description Applies a partial update to the existing farm profile. Fields omitted from the body are left unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No profile exists yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/update [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err, "Invalid farm profile data")})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Farm profile not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileEnvelope{
		Message:     "Profile updated successfully",
		FarmProfile: dto.ToFarmProfileResponse(profile),
	})
}

// GetProfile godoc
// @Summary Get the farm profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.FarmProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Farm profile not found"})
			return
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFarmProfileResponse(profile))
}
