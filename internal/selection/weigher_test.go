package selection

import (
	"math"
	"testing"

	"quiz-api/internal/ledger"
	"quiz-api/internal/models"
)

const epsilon = 1e-9

func poolItem(theme, text string) models.QuizItem {
	return models.QuizItem{
		Question: models.Question{
			LlmResponse: models.LlmResponse{Text: text},
			Metadata:    models.Metadata{Theme: theme},
		},
	}
}

func ledgerWith(key string, correct, incorrect int) *ledger.UserLedger {
	l := ledger.NewUserLedger()
	l.QuestionPerformance[key] = &ledger.PerformanceCounter{Correct: correct, Incorrect: incorrect}
	return l
}

func TestComputeWeightsColdStart(t *testing.T) {
	pool := []models.QuizItem{
		poolItem("rome", "Quel empereur ?"),
		poolItem("grèce", "Quelle cité ?"),
		poolItem("rome", "Quelle bataille ?"),
	}

	weighted := ComputeWeights(pool, nil)
	if len(weighted) != len(pool) {
		t.Fatalf("got %d weighted questions, want %d", len(weighted), len(pool))
	}
	for i, wq := range weighted {
		if wq.Weight != 1.0 {
			t.Errorf("question %d: weight = %v, want 1.0 without a ledger", i, wq.Weight)
		}
		if wq.DifficultyScore != wq.Weight {
			t.Errorf("question %d: difficulty score must mirror weight", i)
		}
	}
}

func TestComputeWeightsEmptyPool(t *testing.T) {
	weighted := ComputeWeights(nil, ledger.NewUserLedger())
	if len(weighted) != 0 {
		t.Errorf("got %d weighted questions for an empty pool, want 0", len(weighted))
	}
}

func TestQuestionWeightHistory(t *testing.T) {
	item := poolItem("rome", "Quel")
	key := ledger.QuestionKey("rome", "Quel")

	testCases := []struct {
		name     string
		ledger   *ledger.UserLedger
		expected float64
	}{
		{"never seen with ledger present", ledger.NewUserLedger(), 1.2},
		{"counter exists with zero attempts", ledgerWith(key, 0, 0), 1.5},
		{"success rate 0.25", ledgerWith(key, 1, 3), 1.75},
		{"success rate 1.0", ledgerWith(key, 4, 0), 1.0},
		{"success rate 0.0", ledgerWith(key, 0, 5), 2.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weighted := ComputeWeights([]models.QuizItem{item}, tc.ledger)
			if got := weighted[0].Weight; math.Abs(got-tc.expected) > epsilon {
				t.Errorf("weight = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestThemePenaltyCompounds(t *testing.T) {
	item := poolItem("rome", "Quel")
	key := ledger.QuestionKey("rome", "Quel")

	// Question at 0% success in a theme at 0% success: both factors max out.
	l := ledgerWith(key, 0, 4)
	l.ThemePerformance["rome"] = &ledger.PerformanceCounter{Correct: 0, Incorrect: 10}

	weighted := ComputeWeights([]models.QuizItem{item}, l)
	if got := weighted[0].Weight; math.Abs(got-4.0) > epsilon {
		t.Errorf("weight = %v, want 4.0 (2.0 question factor * 2.0 theme factor)", got)
	}
}

func TestThemePenaltyAppliesToUnseenQuestion(t *testing.T) {
	item := poolItem("rome", "Jamais vue")

	l := ledger.NewUserLedger()
	l.ThemePerformance["rome"] = &ledger.PerformanceCounter{Correct: 1, Incorrect: 3}

	// Unseen question (1.2) in a weak theme (2.0 - 0.25 = 1.75).
	weighted := ComputeWeights([]models.QuizItem{item}, l)
	if got := weighted[0].Weight; math.Abs(got-1.2*1.75) > epsilon {
		t.Errorf("weight = %v, want %v", got, 1.2*1.75)
	}
}

func TestZeroTotalThemeCounterIgnored(t *testing.T) {
	item := poolItem("rome", "Quel")
	key := ledger.QuestionKey("rome", "Quel")

	l := ledgerWith(key, 1, 1)
	l.ThemePerformance["rome"] = &ledger.PerformanceCounter{}

	weighted := ComputeWeights([]models.QuizItem{item}, l)
	if got := weighted[0].Weight; math.Abs(got-1.5) > epsilon {
		t.Errorf("weight = %v, want 1.5 (no theme factor for a zero-total counter)", got)
	}
}

func TestWeightBounds(t *testing.T) {
	items := []models.QuizItem{
		poolItem("rome", "q1"),
		poolItem("rome", "q2"),
		poolItem("grèce", "q3"),
	}

	l := ledger.NewUserLedger()
	l.QuestionPerformance[ledger.QuestionKey("rome", "q1")] = &ledger.PerformanceCounter{Correct: 2, Incorrect: 5}
	l.ThemePerformance["rome"] = &ledger.PerformanceCounter{Correct: 2, Incorrect: 9}
	l.ThemePerformance["grèce"] = &ledger.PerformanceCounter{Correct: 0, Incorrect: 1}

	for _, wq := range ComputeWeights(items, l) {
		if wq.Weight < 1.0 || wq.Weight > 4.0 {
			t.Errorf("weight %v out of [1.0, 4.0]", wq.Weight)
		}
	}
}
