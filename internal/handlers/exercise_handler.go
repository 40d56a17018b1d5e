package handlers

import (
	"context"
	"errors"
	"net/http"

	"pykids-service/internal/quiz"
	"pykids-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	Service *service.ExerciseService
}

func NewExerciseHandler(s *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{Service: s}
}

// ListExercises returns the full exercise catalog.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.Service.ListExercises(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exercises"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "count": len(exercises)})
}

// StartSession opens a new quiz session for the authenticated user.
func (h *ExerciseHandler) StartSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	view, err := h.Service.StartSession(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load exercises",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession returns the current renderable session state.
func (h *ExerciseHandler) GetSession(c *gin.Context) {
	view, err := h.Service.Status(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectOption records a tentative answer for the current question.
func (h *ExerciseHandler) SelectOption(c *gin.Context) {
	var req struct {
		OptionIndex int `json:"option_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	view, err := h.Service.SelectOption(c.Param("id"), req.OptionIndex)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitAnswer locks in the selection and reveals the result.
func (h *ExerciseHandler) SubmitAnswer(c *gin.Context) {
	result, err := h.Service.SubmitAnswer(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Advance acknowledges the revealed result and moves on. The answer record
// write behind it is best-effort; this endpoint does not fail on storage
// trouble.
func (h *ExerciseHandler) Advance(c *gin.Context) {
	view, err := h.Service.Advance(context.Background(), c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Restart resets the session for another pass over the same set.
func (h *ExerciseHandler) Restart(c *gin.Context) {
	view, err := h.Service.Restart(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Summary returns the completion screen payload.
func (h *ExerciseHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ExerciseHandler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrNotPresenting),
		errors.Is(err, quiz.ErrNotRevealed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
