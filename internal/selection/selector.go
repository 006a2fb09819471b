package selection

import (
	"math/rand"
	"time"

	"quiz-api/internal/ledger"
	"quiz-api/internal/models"
)

// passingRate splits poorly-answered from well-answered questions.
const passingRate = 0.5

// AdaptiveSelector orders a weighted pool into priority tiers: never-seen
// first, then poorly-answered, then well-answered. Order within a tier is a
// uniform shuffle, so unseen and weak material always comes before mastered
// material without the sequence being memorizable.
type AdaptiveSelector struct {
	rand *rand.Rand
}

func NewAdaptiveSelector() *AdaptiveSelector {
	return &AdaptiveSelector{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededSelector pins the shuffle order for deterministic tests.
func NewSeededSelector(seed int64) *AdaptiveSelector {
	return &AdaptiveSelector{rand: rand.New(rand.NewSource(seed))}
}

// Select returns min(maxQuestions, len(weighted)) questions. Any global
// weight ordering computed earlier is discarded here in favor of
// tier-then-shuffle. An empty pool or non-positive cap yields an empty
// slice, never an error. Duplicate pool entries are kept as-is;
// deduplication belongs to the caller.
func (s *AdaptiveSelector) Select(weighted []WeightedQuestion, l *ledger.UserLedger, maxQuestions int) []models.QuizItem {
	if maxQuestions <= 0 || len(weighted) == 0 {
		return []models.QuizItem{}
	}

	var neverSeen, poorlyAnswered, wellAnswered []models.QuizItem
	for _, wq := range weighted {
		q := wq.Question.Question
		var perf *ledger.PerformanceCounter
		if l != nil {
			perf = l.QuestionPerformance[ledger.QuestionKey(q.Metadata.Theme, q.LlmResponse.Text)]
		}
		switch {
		// A counter with zero attempts lands here too; the weigher treats
		// that case differently on purpose.
		case perf == nil || perf.Total() == 0:
			neverSeen = append(neverSeen, wq.Question)
		case perf.SuccessRate() < passingRate:
			poorlyAnswered = append(poorlyAnswered, wq.Question)
		default:
			wellAnswered = append(wellAnswered, wq.Question)
		}
	}

	s.shuffle(neverSeen)
	s.shuffle(poorlyAnswered)
	s.shuffle(wellAnswered)

	ordered := make([]models.QuizItem, 0, len(weighted))
	ordered = append(ordered, neverSeen...)
	ordered = append(ordered, poorlyAnswered...)
	ordered = append(ordered, wellAnswered...)

	if len(ordered) > maxQuestions {
		ordered = ordered[:maxQuestions]
	}
	return ordered
}

func (s *AdaptiveSelector) shuffle(items []models.QuizItem) {
	s.rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
