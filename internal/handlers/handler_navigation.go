package handlers

import (
	"net/http"
	"strings"

	"github.com/agrolink/agrolink-backend/internal/core/gate"
	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// NavigationHandler answers "may the client go to this route" questions.
// The endpoint is public: an absent or invalid token simply yields an
// unauthenticated decision, it is never an error.
type NavigationHandler struct {
	tokenService portssvc.TokenSvcFacade
	userService  portssvc.UserSvcFacade
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(ts portssvc.TokenSvcFacade, us portssvc.UserSvcFacade) *NavigationHandler {
	return &NavigationHandler{tokenService: ts, userService: us}
}

func registerNavigationRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewNavigationHandler(services.Token, services.User)

	nav := rg.Group("/api/navigation")
	{
		nav.GET("/decide", h.Decide)
	}
}

// Decide godoc
// @Summary Navigation gating decision
// @Description Evaluates the profile-gate policy for a client route. The session is taken from the optional bearer token and revalidated against the stored user on every call, so a stale client-side completion flag never bypasses the gate.
// @Tags navigation
// @Produce json
// @Param route query string true "Client route, e.g. /dashboard"
// @Success 200 {object} gate.Decision
// @Failure 400 {object} ErrorResponse
// @Router /navigation/decide [get]
func (h *NavigationHandler) Decide(c *gin.Context) {
	var query dto.NavigationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "route query parameter is required"})
		return
	}

	session := h.sessionFromRequest(c)
	c.JSON(http.StatusOK, gate.Decide(query.Route, session))
}

// sessionFromRequest resolves the bearer token, if any, into a fresh user
// snapshot. Every failure mode collapses to "no session".
func (h *NavigationHandler) sessionFromRequest(c *gin.Context) *gate.Session {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	ctx := c.Request.Context()
	userID, err := h.tokenService.VerifyAccessToken(ctx, parts[1])
	if err != nil {
		return nil
	}

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil
	}

	return &gate.Session{
		UserID:              user.UserID,
		HasCompletedProfile: user.HasCompletedProfile,
	}
}
