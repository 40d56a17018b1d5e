package handlers

import (
	"context"
	"errors"
	"log"

	"pykids-service/internal/chat"
	"pykids-service/internal/service"
	"pykids-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

// POST /public/pykids/chat/session
func (h *ChatHandler) CreateChatSession(c *gin.Context) {
	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		log.Printf("JWT parse error: %v", err)
		userID = "anonymous"
	}
	if userID == "" {
		userID = "anonymous"
	}

	sessionID, messages := h.Service.StartSession()

	utils.SuccessResponse(c, "Chat session created successfully", gin.H{
		"sessionId": sessionID,
		"userId":    userID,
		"messages":  messages,
	})
}

// POST /public/pykids/chat/:sessionId/message
func (h *ChatHandler) SendMessage(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var request struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	result, err := h.Service.SendMessage(context.Background(), sessionID, request.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			utils.NotFoundResponse(c, "Chat session not found")
		case errors.Is(err, chat.ErrEmptyMessage):
			utils.BadRequestResponse(c, "Message is empty")
		case errors.Is(err, chat.ErrReplyPending):
			utils.ConflictResponse(c, "A reply is already pending for this session")
		default:
			utils.InternalErrorResponse(c, "Failed to process chat message", err)
		}
		return
	}

	utils.SuccessResponse(c, "Chat message processed", result)
}

// GET /public/pykids/chat/:sessionId/history
func (h *ChatHandler) GetChatHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")

	messages, err := h.Service.History(sessionID)
	if err != nil {
		utils.NotFoundResponse(c, "Chat session not found")
		return
	}

	utils.SuccessResponse(c, "Chat history retrieved", gin.H{
		"sessionId": sessionID,
		"messages":  messages,
		"count":     len(messages),
	})
}
