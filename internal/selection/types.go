package selection

import "quiz-api/internal/models"

// WeightedQuestion is an ephemeral scored view of a pool entry, recomputed
// on every quiz-start request. DifficultyScore mirrors Weight on the wire.
type WeightedQuestion struct {
	Question        models.QuizItem `json:"question"`
	Weight          float64         `json:"weight"`
	DifficultyScore float64         `json:"difficulty_score"`
}

// DefaultMaxQuestions caps a quiz when the caller does not ask for a
// specific size.
const DefaultMaxQuestions = 10
