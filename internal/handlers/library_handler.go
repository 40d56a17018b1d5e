package handlers

import (
	"context"
	"net/http"

	"pykids-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	Service *service.LibraryService
}

func NewLibraryHandler(s *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{Service: s}
}

func (h *LibraryHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListItems(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load library items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// OpenItem records that the user opened a library item.
func (h *LibraryHandler) OpenItem(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	itemID := c.Param("id")

	var req struct {
		ProgressPercentage int `json:"progress_percentage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := h.Service.OpenItem(context.Background(), userID, itemID, req.ProgressPercentage); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Library item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress updated"})
}

func (h *LibraryHandler) GetProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	progress, err := h.Service.GetProgress(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load library progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress, "count": len(progress)})
}
