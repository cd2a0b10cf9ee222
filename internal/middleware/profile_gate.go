package middleware

import (
	"errors"
	"net/http"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/gate"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ProfileGate enforces the profile-completion policy on endpoints that back
// protected areas (dashboard data, weather, chat, sustainability). The user
// record is re-read on every request; the client-held snapshot is never
// trusted for this decision.
func ProfileGate(userService portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to load user for profile gate", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		session := &gate.Session{UserID: user.UserID, HasCompletedProfile: user.HasCompletedProfile}
		if decision := gate.Decide(gate.RouteDashboard, session); decision.Act == gate.Redirect {
			logger.Warn("Profile gate redirecting incomplete profile")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Complete your farm profile to access this resource",
				"redirect": decision.Target,
			})
			return
		}

		c.Next()
	}
}
