package models

import "time"

// Progress is the resumable per-sentence state, unique on
// (lesson_id, sentence_id). Saves are last-writer-wins upserts; no history
// is kept. There is no learner dimension in the key.
type Progress struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	LessonID           string    `bson:"lesson_id" json:"lesson_id"`
	SentenceID         string    `bson:"sentence_id" json:"sentence_id"`
	SelectedLevel      int       `bson:"selected_level" json:"selected_level"`
	Status             string    `bson:"status" json:"status"`
	CurrentArrangement []string  `bson:"current_arrangement" json:"current_arrangement"`
	TimeRemaining      int       `bson:"time_remaining" json:"time_remaining"`
	AudioUsageCount    int       `bson:"audio_usage_count" json:"audio_usage_count"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

const (
	ProgressStatusPending = "PENDING"
	// ProgressStatusWrong marks a sentence for inclusion in review sessions.
	ProgressStatusWrong = "WRONG"
)
