package selection

import (
	"quiz-api/internal/ledger"
	"quiz-api/internal/models"
)

const (
	// neutralWeight applies when there is no ledger at all (anonymous or
	// cold-start user).
	neutralWeight = 1.0
	// unseenWeight ranks never-attempted questions above mastered ones but
	// below historically hard ones.
	unseenWeight = 1.2
	// untalliedWeight covers the degenerate case of a counter that exists
	// with zero attempts.
	untalliedWeight = 1.5
	// maxPenalty is the weight of a question (or theme factor) at 0%
	// success; 2.0 - successRate keeps per-question weight in (1.0, 2.0].
	maxPenalty = 2.0
)

// ComputeWeights scores every pool entry against the user's history. The
// result keeps pool order and is never truncated; capping is the selector's
// job. A nil ledger yields neutralWeight for everything.
func ComputeWeights(pool []models.QuizItem, l *ledger.UserLedger) []WeightedQuestion {
	weighted := make([]WeightedQuestion, 0, len(pool))
	for _, item := range pool {
		w := questionWeight(item.Question, l)
		weighted = append(weighted, WeightedQuestion{
			Question:        item,
			Weight:          w,
			DifficultyScore: w,
		})
	}
	return weighted
}

func questionWeight(q models.Question, l *ledger.UserLedger) float64 {
	if l == nil {
		return neutralWeight
	}

	theme := q.Metadata.Theme
	key := ledger.QuestionKey(theme, q.LlmResponse.Text)

	weight := unseenWeight
	if perf, ok := l.QuestionPerformance[key]; ok {
		if perf.Total() > 0 {
			weight = maxPenalty - perf.SuccessRate()
		} else {
			weight = untalliedWeight
		}
	}

	// Weak themes compound with the per-question factor, so a hard question
	// in a hard theme can reach maxPenalty * maxPenalty.
	if tperf, ok := l.ThemePerformance[theme]; ok && tperf.Total() > 0 {
		weight *= maxPenalty - tperf.SuccessRate()
	}

	return weight
}
