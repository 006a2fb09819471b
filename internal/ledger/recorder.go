package ledger

import "quiz-api/internal/models"

// RecordAnswer folds one answered-question event into the ledger's tallies,
// creating zeroed counters for the question key and theme on first sight.
// Stale or unknown keys are recorded anyway; there is no pool to validate
// against at this layer.
func RecordAnswer(l *UserLedger, answer models.UserAnswer) {
	qc := l.QuestionPerformance[answer.QuestionID]
	if qc == nil {
		qc = &PerformanceCounter{}
		l.QuestionPerformance[answer.QuestionID] = qc
	}
	tc := l.ThemePerformance[answer.Theme]
	if tc == nil {
		tc = &PerformanceCounter{}
		l.ThemePerformance[answer.Theme] = tc
	}

	if answer.IsCorrect {
		qc.Correct++
		tc.Correct++
	} else {
		qc.Incorrect++
		tc.Incorrect++
	}
}
