package handlers

import (
	"net/http"

	"quiz-api/internal/models"
	"quiz-api/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// SendQuiz stores a quiz pushed by the generation pipeline or a client.
func (h *QuizHandler) SendQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	total, err := h.Service.AddQuiz(c.Request.Context(), quiz)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "quiz received",
		"total_quizzes": total,
	})
}

// GetQuiz returns the last received quiz; an empty quiz when none exists.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.LastQuiz(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
