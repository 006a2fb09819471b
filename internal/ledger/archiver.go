package ledger

import "quiz-api/internal/models"

// RetentionCap is the fixed number of sessions kept per user by
// ArchiveSession. Only ForceCleanup accepts a caller-supplied cap.
const RetentionCap = 5

// ArchiveSession appends a completed session and evicts the oldest entries
// beyond RetentionCap. Counters are untouched: an evicted session's answers
// stay in the tallies.
func ArchiveSession(l *UserLedger, session models.QuizSession) {
	l.Sessions = append(l.Sessions, session)
	if len(l.Sessions) > RetentionCap {
		l.Sessions = trimOldest(l.Sessions, RetentionCap)
	}
}

// ForceCleanup trims the session log to at most maxSessions entries,
// keeping the newest, and returns how many were removed. A negative cap is
// treated as zero.
func ForceCleanup(l *UserLedger, maxSessions int) int {
	if maxSessions < 0 {
		maxSessions = 0
	}
	before := len(l.Sessions)
	if before <= maxSessions {
		return 0
	}
	l.Sessions = trimOldest(l.Sessions, maxSessions)
	return before - len(l.Sessions)
}

func trimOldest(sessions []models.QuizSession, keep int) []models.QuizSession {
	kept := make([]models.QuizSession, keep)
	copy(kept, sessions[len(sessions)-keep:])
	return kept
}
