// Package ledger tracks per-user quiz performance: a bounded log of
// completed sessions plus unbounded per-question and per-theme tallies.
// The two aggregates are owned independently; evicting a session never
// rolls its answers out of the counters.
package ledger

import "quiz-api/internal/models"

// keyPrefixRunes is how much of the prompt text participates in a
// question's identity. Two questions sharing a theme and the same first 50
// characters are treated as the same question.
const keyPrefixRunes = 50

// QuestionKey derives the composite identity used to look up history.
func QuestionKey(theme, text string) string {
	runes := []rune(text)
	if len(runes) > keyPrefixRunes {
		runes = runes[:keyPrefixRunes]
	}
	return theme + "_" + string(runes)
}

// PerformanceCounter is a correct/incorrect tally for one question key or
// one theme. Counts only ever increase.
type PerformanceCounter struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

func (c *PerformanceCounter) Total() int {
	return c.Correct + c.Incorrect
}

// SuccessRate returns the fraction of correct answers. Callers must check
// Total() > 0 first; a zero-total counter reports 0.
func (c *PerformanceCounter) SuccessRate() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(total)
}

// UserLedger holds one user's history. Not internally synchronized: the
// caller serializes mutations per user (see LedgerStore and the service
// layer).
type UserLedger struct {
	Sessions            []models.QuizSession           `json:"sessions"`
	QuestionPerformance map[string]*PerformanceCounter `json:"question_performance"`
	ThemePerformance    map[string]*PerformanceCounter `json:"theme_performance"`
}

func NewUserLedger() *UserLedger {
	return &UserLedger{
		QuestionPerformance: make(map[string]*PerformanceCounter),
		ThemePerformance:    make(map[string]*PerformanceCounter),
	}
}
