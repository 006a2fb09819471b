package models

import "time"

// UserAnswer is one user's response to one question instance. QuestionID is
// the client-computed composite key (theme + "_" + text prefix); it is
// recorded as-is, without validation against the live question pool.
type UserAnswer struct {
	QuestionID    string    `bson:"question_id" json:"question_id"`
	Theme         string    `bson:"theme" json:"theme"`
	ChosenAnswer  string    `bson:"chosen_answer" json:"chosen_answer"`
	CorrectAnswer string    `bson:"correct_answer" json:"correct_answer"`
	IsCorrect     bool      `bson:"is_correct" json:"is_correct"`
	SessionID     string    `bson:"session_id" json:"session_id"`
	AnsweredAt    time.Time `bson:"answered_at" json:"answered_at"`
}

// QuizSession summarizes one completed quiz. Immutable once archived;
// removed only by the ledger's retention policy.
type QuizSession struct {
	SessionID      string    `bson:"session_id" json:"session_id"`
	StartTime      time.Time `bson:"start_time" json:"start_time"`
	EndTime        time.Time `bson:"end_time" json:"end_time"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	CorrectAnswers int       `bson:"correct_answers" json:"correct_answers"`
	ScorePercent   float64   `bson:"score_percent" json:"score_percent"`
	Themes         []string  `bson:"themes" json:"themes"`
}
