package ledger

import (
	"fmt"
	"testing"

	"quiz-api/internal/models"
)

func answer(key, theme string, correct bool) models.UserAnswer {
	return models.UserAnswer{
		QuestionID: key,
		Theme:      theme,
		IsCorrect:  correct,
	}
}

func TestQuestionKey(t *testing.T) {
	testCases := []struct {
		name     string
		theme    string
		text     string
		expected string
	}{
		{"short text", "rome", "Quel empereur ?", "rome_Quel empereur ?"},
		{"empty text", "rome", "", "rome_"},
		{
			"long text truncated to 50 runes",
			"rome",
			"aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeeeFFFF",
			"rome_aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeee",
		},
		{
			"multibyte runes counted as characters",
			"grèce",
			"ééééééééééééééééééééééééééééééééééééééééééééééééééXXX",
			"grèce_éééééééééééééééééééééééééééééééééééééééééééééééééé",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := QuestionKey(tc.theme, tc.text)
			if got != tc.expected {
				t.Errorf("QuestionKey(%q, %q) = %q, want %q", tc.theme, tc.text, got, tc.expected)
			}
		})
	}
}

func TestRecordAnswerTallies(t *testing.T) {
	l := NewUserLedger()

	// 3 incorrect then 1 correct for the same key.
	for i := 0; i < 3; i++ {
		RecordAnswer(l, answer("rome_Quel", "rome", false))
	}
	RecordAnswer(l, answer("rome_Quel", "rome", true))

	perf := l.QuestionPerformance["rome_Quel"]
	if perf == nil {
		t.Fatal("expected a counter for rome_Quel")
	}
	if perf.Correct != 1 || perf.Incorrect != 3 {
		t.Errorf("counter = {%d, %d}, want {1, 3}", perf.Correct, perf.Incorrect)
	}
	if got := perf.SuccessRate(); got != 0.25 {
		t.Errorf("success rate = %v, want 0.25", got)
	}

	tperf := l.ThemePerformance["rome"]
	if tperf == nil {
		t.Fatal("expected a counter for theme rome")
	}
	if tperf.Correct != 1 || tperf.Incorrect != 3 {
		t.Errorf("theme counter = {%d, %d}, want {1, 3}", tperf.Correct, tperf.Incorrect)
	}
}

func TestRecordAnswerCountsMatchEvents(t *testing.T) {
	l := NewUserLedger()

	events := []models.UserAnswer{
		answer("k1", "history", true),
		answer("k1", "history", false),
		answer("k2", "history", true),
		answer("k3", "geography", false),
	}
	for _, e := range events {
		RecordAnswer(l, e)
	}

	totals := map[string]int{}
	for key, c := range l.QuestionPerformance {
		totals[key] = c.Total()
	}
	want := map[string]int{"k1": 2, "k2": 1, "k3": 1}
	for key, n := range want {
		if totals[key] != n {
			t.Errorf("key %s total = %d, want %d", key, totals[key], n)
		}
	}

	if got := l.ThemePerformance["history"].Total(); got != 3 {
		t.Errorf("history theme total = %d, want 3", got)
	}
	if got := l.ThemePerformance["geography"].Total(); got != 1 {
		t.Errorf("geography theme total = %d, want 1", got)
	}
}

func TestRecordAnswerToleratesUnknownKeys(t *testing.T) {
	l := NewUserLedger()

	// No pool exists here; any key is accepted and tracked.
	RecordAnswer(l, answer("stale_key_from_old_quiz", "gone", true))

	if l.QuestionPerformance["stale_key_from_old_quiz"].Correct != 1 {
		t.Error("expected stale key to be recorded")
	}
}

func session(n int) models.QuizSession {
	return models.QuizSession{SessionID: fmt.Sprintf("S%d", n)}
}

func TestArchiveSessionRetention(t *testing.T) {
	l := NewUserLedger()

	for i := 1; i <= 6; i++ {
		ArchiveSession(l, session(i))
		if len(l.Sessions) > RetentionCap {
			t.Fatalf("after archiving S%d: %d sessions, cap is %d", i, len(l.Sessions), RetentionCap)
		}
	}

	want := []string{"S2", "S3", "S4", "S5", "S6"}
	if len(l.Sessions) != len(want) {
		t.Fatalf("kept %d sessions, want %d", len(l.Sessions), len(want))
	}
	for i, id := range want {
		if l.Sessions[i].SessionID != id {
			t.Errorf("session[%d] = %s, want %s", i, l.Sessions[i].SessionID, id)
		}
	}
}

func TestArchiveDoesNotTouchCounters(t *testing.T) {
	l := NewUserLedger()
	RecordAnswer(l, answer("k1", "history", true))

	for i := 1; i <= RetentionCap+3; i++ {
		ArchiveSession(l, session(i))
	}

	// Evicted sessions leave the tallies untouched.
	if l.QuestionPerformance["k1"].Correct != 1 {
		t.Error("counters must survive session eviction")
	}
}

func TestForceCleanup(t *testing.T) {
	testCases := []struct {
		name        string
		sessions    int
		maxSessions int
		wantRemoved int
		wantKept    int
	}{
		{"under cap is a no-op", 3, 5, 0, 3},
		{"at cap is a no-op", 5, 5, 0, 5},
		{"over cap trims oldest", 8, 3, 5, 3},
		{"zero cap drops everything", 4, 0, 4, 0},
		{"negative cap treated as zero", 4, -2, 4, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewUserLedger()
			for i := 1; i <= tc.sessions; i++ {
				l.Sessions = append(l.Sessions, session(i))
			}

			removed := ForceCleanup(l, tc.maxSessions)
			if removed != tc.wantRemoved {
				t.Errorf("removed = %d, want %d", removed, tc.wantRemoved)
			}
			if len(l.Sessions) != tc.wantKept {
				t.Errorf("kept = %d, want %d", len(l.Sessions), tc.wantKept)
			}
			// The kept entries are the most recent ones.
			for i, s := range l.Sessions {
				want := fmt.Sprintf("S%d", tc.sessions-tc.wantKept+i+1)
				if s.SessionID != want {
					t.Errorf("session[%d] = %s, want %s", i, s.SessionID, want)
				}
			}
		})
	}
}

func TestLedgerStore(t *testing.T) {
	store := NewLedgerStore()

	if _, ok := store.Get("alice"); ok {
		t.Error("expected no ledger before first write")
	}

	l := store.GetOrCreate("alice")
	if l == nil {
		t.Fatal("expected a ledger")
	}
	if again := store.GetOrCreate("alice"); again != l {
		t.Error("GetOrCreate must return the same ledger for the same user")
	}

	got, ok := store.Get("alice")
	if !ok || got != l {
		t.Error("Get must find the created ledger")
	}

	other := store.GetOrCreate("bob")
	if other == l {
		t.Error("distinct users must get distinct ledgers")
	}
}
