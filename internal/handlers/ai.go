package handlers

import (
	"errors"

	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AIHandler relays chat requests to the configured completion service.
type AIHandler struct {
	chatService service.ChatService
}

// NewAIHandler creates a new AIHandler instance.
func NewAIHandler(chatService service.ChatService) *AIHandler {
	return &AIHandler{chatService: chatService}
}

// ChatRequest represents the chat request payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Send a chat message to the AI service
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} response.Result
// @Router /api/ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			response.Error(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("ai chat failed")
		response.Error(c, "ai service call failed: "+err.Error())
		return
	}

	response.Success(c, "ai reply", resp)
}

// Status godoc
// @Summary Check whether the AI service is reachable
// @Tags ai
// @Produce json
// @Success 200 {object} response.Result
// @Router /api/ai/status [get]
func (h *AIHandler) Status(c *gin.Context) {
	if err := h.chatService.Status(c.Request.Context()); err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Message(c, "ai service is running")
}

// Models godoc
// @Summary List the models available on the AI service
// @Tags ai
// @Produce json
// @Success 200 {object} response.Result
// @Router /api/ai/models [get]
func (h *AIHandler) Models(c *gin.Context) {
	models, err := h.chatService.Models(c.Request.Context())
	if err != nil {
		response.Error(c, err.Error())
		return
	}
	response.Success(c, "model list fetched", models)
}
