package handlers

import (
	"context"
	"net/http"

	"pykids-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	profile, err := h.Service.GetProfile(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
