package handler

import (
	"chatmint-studio/internal/adapter/http/dto"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChatHandler forwards ideation prompts to the chat model.
type ChatHandler struct {
	svc ports.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc ports.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Reply handles POST /api/v1/chat.
func (h *ChatHandler) Reply(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid message"))
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChatResponse{Reply: reply})
}
