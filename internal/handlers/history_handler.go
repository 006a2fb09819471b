package handlers

import (
	"net/http"
	"strconv"

	"quiz-api/internal/ledger"
	"quiz-api/internal/models"
	"quiz-api/internal/selection"
	"quiz-api/internal/service"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	History *service.HistoryService
	Quiz    *service.QuizService
}

func NewHistoryHandler(history *service.HistoryService, quiz *service.QuizService) *HistoryHandler {
	return &HistoryHandler{History: history, Quiz: quiz}
}

// SaveAnswer records a single answered-question event.
func (h *HistoryHandler) SaveAnswer(c *gin.Context) {
	var answer models.UserAnswer
	if err := c.ShouldBindJSON(&answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.History.SaveAnswer(userID(c), answer)
	c.JSON(http.StatusOK, gin.H{"message": "answer saved"})
}

// SaveSession archives a completed quiz summary.
func (h *HistoryHandler) SaveSession(c *gin.Context) {
	var session models.QuizSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored := h.History.SaveSession(userID(c), session)
	c.JSON(http.StatusOK, gin.H{
		"message":    "session saved",
		"session_id": stored.SessionID,
	})
}

// UserHistory dumps the caller's sessions and performance counters.
func (h *HistoryHandler) UserHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.History.UserHistory(userID(c)))
}

type cleanupRequest struct {
	MaxSessions *int `json:"max_sessions"`
}

// CleanupHistory trims the caller's session log to an explicit cap,
// defaulting to the archive-time retention cap.
func (h *HistoryHandler) CleanupHistory(c *gin.Context) {
	var req cleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxSessions := ledger.RetentionCap
	if req.MaxSessions != nil {
		maxSessions = *req.MaxSessions
	}
	removed := h.History.CleanupHistory(userID(c), maxSessions)
	c.JSON(http.StatusOK, gin.H{"sessions_removed": removed})
}

// HistoryStats reports aggregate progression statistics.
func (h *HistoryHandler) HistoryStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.History.Stats(userID(c)))
}

// WeightedQuestions weighs the last received quiz against the caller's
// history and returns an adaptively ordered sample.
func (h *HistoryHandler) WeightedQuestions(c *gin.Context) {
	maxQuestions := selection.DefaultMaxQuestions
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be an integer"})
			return
		}
		maxQuestions = n
	}

	quiz, err := h.Quiz.LastQuiz(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	selected := h.History.WeightedQuestions(userID(c), quiz.Quiz, maxQuestions)
	c.JSON(http.StatusOK, gin.H{"quiz": selected})
}
