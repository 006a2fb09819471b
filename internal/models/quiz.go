package models

// CorrectAnswer pairs the winning choice letter with its full text. The
// "lettre" wire name comes from the generation pipeline and is kept for
// compatibility with payloads it already emits.
type CorrectAnswer struct {
	Letter string `bson:"lettre" json:"lettre"`
	Answer string `bson:"answer" json:"answer"`
}

// LlmResponse is the generated part of a question: prompt text, labeled
// choices, the correct choice and its long-form explanation.
type LlmResponse struct {
	Text              string            `bson:"text" json:"text"`
	Choices           map[string]string `bson:"choices" json:"choices"`
	CorrectAnswer     CorrectAnswer     `bson:"correct_answer" json:"correct_answer"`
	CorrectAnswerLong string            `bson:"correct_answer_long" json:"correct_answer_long"`
	DifficultyLevel   string            `bson:"difficulty_level" json:"difficulty_level"`
}

// Metadata carries provenance for a generated question. Only Theme matters
// to the selection core; the rest is pass-through from the pipeline.
type Metadata struct {
	Theme    string `bson:"theme" json:"theme"`
	Page     int    `bson:"page,omitempty" json:"page,omitempty"`
	ChunkID  int    `bson:"chunk_id,omitempty" json:"chunk_id,omitempty"`
	FileID   string `bson:"file_id,omitempty" json:"file_id,omitempty"`
	FileName string `bson:"file_name,omitempty" json:"file_name,omitempty"`
}

// Question has no stable upstream id; identity is derived from theme plus a
// prefix of the prompt text (see ledger.QuestionKey).
type Question struct {
	LlmResponse LlmResponse `bson:"llm_response" json:"llm_response"`
	Metadata    Metadata    `bson:"metadata" json:"metadata"`
}

type QuizItem struct {
	Question Question `bson:"question" json:"question"`
}

type Quiz struct {
	Quiz []QuizItem `bson:"quiz" json:"quiz"`
}
