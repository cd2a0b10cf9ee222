package handlers

import (
	"errors"
	"net/http"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps a service error onto an HTTP status and JSON body.
// AppErrors carry their own status code; bare sentinels get a sensible default.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// bindingErrorMessage turns a gin binding failure into a user-facing message.
// Missing required fields get the generic "all fields" message; anything else
// (malformed JSON, out-of-range values) falls back to the provided default.
func bindingErrorMessage(err error, fallback string) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			if fe.Tag() == "required" {
				return "All fields are required"
			}
		}
		return fallback
	}
	return fallback
}
