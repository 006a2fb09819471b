package handlers

import (
	"net/http"
	"strconv"

	"quiz-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *service.QuizService
}

func NewAdminHandler(s *service.QuizService) *AdminHandler {
	return &AdminHandler{Service: s}
}

// Clear wipes all stored quizzes. User ledgers are left alone; counters are
// only reset by process restart.
func (h *AdminHandler) Clear(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quiz state cleared"})
}

// History lists the most recently received quizzes.
func (h *AdminHandler) History(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}
	quizzes, err := h.Service.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": quizzes})
}
