package repository

import (
	"context"
	"sync"

	"quiz-api/internal/models"
)

// MemoryQuizStore keeps received quizzes in process memory. It is the
// default store when Mongo is not configured and mirrors QuizRepository's
// behavior method for method.
type MemoryQuizStore struct {
	mu      sync.RWMutex
	quizzes []models.Quiz
	hasLast bool
	last    models.Quiz
}

func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{}
}

func (s *MemoryQuizStore) Add(_ context.Context, quiz models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes = append(s.quizzes, quiz)
	s.last = quiz
	s.hasLast = true
	return nil
}

func (s *MemoryQuizStore) Last(_ context.Context) (models.Quiz, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast, nil
}

func (s *MemoryQuizStore) History(_ context.Context, limit int) ([]models.Quiz, error) {
	if limit <= 0 {
		return []models.Quiz{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.quizzes) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.Quiz, len(s.quizzes)-start)
	copy(out, s.quizzes[start:])
	return out, nil
}

func (s *MemoryQuizStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes), nil
}

func (s *MemoryQuizStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes = nil
	s.last = models.Quiz{}
	s.hasLast = false
	return nil
}
