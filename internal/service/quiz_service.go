package service

import (
	"context"

	"quiz-api/internal/models"

	"go.uber.org/zap"
)

// QuizStore abstracts quiz persistence. repository.QuizRepository (Mongo)
// and repository.MemoryQuizStore both satisfy it; the ledger never lives
// behind this interface.
type QuizStore interface {
	Add(ctx context.Context, quiz models.Quiz) error
	Last(ctx context.Context) (models.Quiz, bool, error)
	History(ctx context.Context, limit int) ([]models.Quiz, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type QuizService struct {
	store QuizStore
	log   *zap.Logger
}

func NewQuizService(store QuizStore, log *zap.Logger) *QuizService {
	return &QuizService{store: store, log: log}
}

// AddQuiz stores an incoming quiz and returns the total stored so far.
func (s *QuizService) AddQuiz(ctx context.Context, quiz models.Quiz) (int, error) {
	if err := s.store.Add(ctx, quiz); err != nil {
		return 0, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info("quiz received",
		zap.Int("questions", len(quiz.Quiz)),
		zap.Int("total_quizzes", total))
	return total, nil
}

// LastQuiz returns the most recent quiz, or an empty one when nothing has
// been received yet. Missing state is "empty", not an error.
func (s *QuizService) LastQuiz(ctx context.Context) (models.Quiz, error) {
	quiz, ok, err := s.store.Last(ctx)
	if err != nil {
		return models.Quiz{}, err
	}
	if !ok || quiz.Quiz == nil {
		return models.Quiz{Quiz: []models.QuizItem{}}, nil
	}
	return quiz, nil
}

func (s *QuizService) History(ctx context.Context, limit int) ([]models.Quiz, error) {
	quizzes, err := s.store.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return quizzes, nil
}

// QuizCount reports how many non-empty questions the last quiz holds, for
// the readiness probe.
func (s *QuizService) QuizCount(ctx context.Context) (int, error) {
	quiz, ok, err := s.store.Last(ctx)
	if err != nil || !ok {
		return 0, err
	}
	return len(quiz.Quiz), nil
}

func (s *QuizService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("quiz state cleared")
	return nil
}
