package handlers

import (
	"net/http"

	"quiz-api/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Quiz *service.QuizService
}

func NewHealthHandler(quiz *service.QuizService) *HealthHandler {
	return &HealthHandler{Quiz: quiz}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether a usable quiz is loaded. A missing or empty quiz is
// a 500 so external pollers can wait on the pipeline.
func (h *HealthHandler) Ready(c *gin.Context) {
	count, err := h.Quiz.QuizCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "reason": err.Error()})
		return
	}
	if count == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "reason": "empty quiz"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "quiz_count": count})
}
