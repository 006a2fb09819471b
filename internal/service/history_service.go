package service

import (
	"sync"
	"time"

	"quiz-api/internal/id"
	"quiz-api/internal/ledger"
	"quiz-api/internal/models"
	"quiz-api/internal/selection"

	"go.uber.org/zap"
)

// HistorySnapshot is a copy-safe view of one user's ledger, built under the
// user's lock so readers never observe a half-applied mutation.
type HistorySnapshot struct {
	Sessions            []models.QuizSession                 `json:"sessions"`
	QuestionPerformance map[string]ledger.PerformanceCounter `json:"question_performance"`
	ThemePerformance    map[string]ledger.PerformanceCounter `json:"theme_performance"`
}

// ThemeStat is one theme's aggregate accuracy.
type ThemeStat struct {
	Correct     int     `json:"correct"`
	Incorrect   int     `json:"incorrect"`
	Total       int     `json:"total"`
	SuccessRate float64 `json:"success_rate"`
}

// HistoryStats summarizes a user's progression across sessions and themes.
type HistoryStats struct {
	TotalSessions    int                  `json:"total_sessions"`
	AverageScore     float64              `json:"average_score"`
	QuestionsTracked int                  `json:"questions_tracked"`
	Themes           map[string]ThemeStat `json:"themes"`
}

// HistoryService owns the performance ledgers and serializes mutations per
// user, which the ledger package itself deliberately does not do. Distinct
// users never contend.
type HistoryService struct {
	ledgers  *ledger.LedgerStore
	selector *selection.AdaptiveSelector
	log      *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewHistoryService(store *ledger.LedgerStore, selector *selection.AdaptiveSelector, log *zap.Logger) *HistoryService {
	return &HistoryService{
		ledgers:  store,
		selector: selector,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *HistoryService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[userID] = l
	return l
}

// SaveAnswer records one answered-question event against the user's
// tallies. The question key is taken as sent; unknown keys are fine.
func (s *HistoryService) SaveAnswer(userID string, answer models.UserAnswer) {
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now().UTC()
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l := s.ledgers.GetOrCreate(userID)
	ledger.RecordAnswer(l, answer)
	s.log.Debug("answer recorded",
		zap.String("user_id", userID),
		zap.String("question_id", answer.QuestionID),
		zap.Bool("is_correct", answer.IsCorrect))
}

// SaveSession archives a completed quiz summary, assigning an id when the
// client sent none, and returns the stored session.
func (s *HistoryService) SaveSession(userID string, session models.QuizSession) models.QuizSession {
	if session.SessionID == "" {
		session.SessionID = id.New()
	}
	if session.EndTime.IsZero() {
		session.EndTime = time.Now().UTC()
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l := s.ledgers.GetOrCreate(userID)
	ledger.ArchiveSession(l, session)
	s.log.Info("session archived",
		zap.String("user_id", userID),
		zap.String("session_id", session.SessionID),
		zap.Float64("score_percent", session.ScorePercent),
		zap.Int("sessions_kept", len(l.Sessions)))
	return session
}

// CleanupHistory trims the user's session log to maxSessions entries and
// returns how many were dropped. A user with no ledger is a no-op.
func (s *HistoryService) CleanupHistory(userID string, maxSessions int) int {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, ok := s.ledgers.Get(userID)
	if !ok {
		return 0
	}
	removed := ledger.ForceCleanup(l, maxSessions)
	if removed > 0 {
		s.log.Info("history trimmed",
			zap.String("user_id", userID),
			zap.Int("removed", removed))
	}
	return removed
}

// UserHistory returns a snapshot of the user's ledger; a user without one
// gets an empty snapshot.
func (s *HistoryService) UserHistory(userID string) HistorySnapshot {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snapshot := HistorySnapshot{
		Sessions:            []models.QuizSession{},
		QuestionPerformance: make(map[string]ledger.PerformanceCounter),
		ThemePerformance:    make(map[string]ledger.PerformanceCounter),
	}
	l, ok := s.ledgers.Get(userID)
	if !ok {
		return snapshot
	}

	snapshot.Sessions = append(snapshot.Sessions, l.Sessions...)
	for key, c := range l.QuestionPerformance {
		snapshot.QuestionPerformance[key] = *c
	}
	for theme, c := range l.ThemePerformance {
		snapshot.ThemePerformance[theme] = *c
	}
	return snapshot
}

// Stats aggregates session scores and theme accuracy for the user.
func (s *HistoryService) Stats(userID string) HistoryStats {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	stats := HistoryStats{Themes: make(map[string]ThemeStat)}
	l, ok := s.ledgers.Get(userID)
	if !ok {
		return stats
	}

	stats.TotalSessions = len(l.Sessions)
	if len(l.Sessions) > 0 {
		var sum float64
		for _, session := range l.Sessions {
			sum += session.ScorePercent
		}
		stats.AverageScore = sum / float64(len(l.Sessions))
	}
	stats.QuestionsTracked = len(l.QuestionPerformance)
	for theme, c := range l.ThemePerformance {
		stats.Themes[theme] = ThemeStat{
			Correct:     c.Correct,
			Incorrect:   c.Incorrect,
			Total:       c.Total(),
			SuccessRate: c.SuccessRate(),
		}
	}
	return stats
}

// WeightedQuestions weighs the pool against the user's history and returns
// an adaptively ordered sample of at most maxQuestions entries. Users with
// no ledger get the cold-start path: neutral weights, everything unseen.
func (s *HistoryService) WeightedQuestions(userID string, pool []models.QuizItem, maxQuestions int) []models.QuizItem {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	l, _ := s.ledgers.Get(userID)
	weighted := selection.ComputeWeights(pool, l)
	selected := s.selector.Select(weighted, l, maxQuestions)
	s.log.Debug("questions selected",
		zap.String("user_id", userID),
		zap.Int("pool", len(pool)),
		zap.Int("selected", len(selected)))
	return selected
}
