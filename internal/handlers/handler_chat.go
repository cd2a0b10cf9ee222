package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrolink/agrolink-backend/internal/core/ports/services"
	"github.com/agrolink/agrolink-backend/internal/dto"
	"github.com/agrolink/agrolink-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ChatHandler forwards farming questions to the LLM advisor service.
type ChatHandler struct {
	chatService portssvc.ChatSvcFacade
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(cs portssvc.ChatSvcFacade) *ChatHandler {
	return &ChatHandler{chatService: cs}
}

func registerChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvcFacade) {
	h := NewChatHandler(chatService)

	rg.POST("/chat", h.Ask)
}

// Ask godoc
// @Summary Ask the farming assistant
// @Description Sends a free-text question to the AI advisor. Calls are throttled process-wide; a rapid second call returns 429.
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Throttled"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
		return
	}

	reply, err := h.chatService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Chat request failed", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Message: reply})
}
