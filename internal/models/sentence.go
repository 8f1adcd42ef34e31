package models

import (
	"strings"
	"time"
)

type Sentence struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	LessonID   string `bson:"lesson_id" json:"lesson_id"`
	Content    string `bson:"content" json:"content"`
	Position   int    `bson:"position" json:"position"`
	Difficulty string `bson:"difficulty" json:"difficulty"`
	WordCount  int    `bson:"word_count" json:"word_count"`
	// Transformation-mode fields, populated by the ingestion side or the
	// distractor-generation consumer. Prompt is the instruction shown to the
	// learner, Context the untransformed original sentence.
	Prompt      string   `bson:"prompt,omitempty" json:"prompt,omitempty"`
	Context     string   `bson:"context,omitempty" json:"context,omitempty"`
	Distractors []string `bson:"distractors,omitempty" json:"distractors,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// ClassifyDifficulty maps a word count to a difficulty label.
func ClassifyDifficulty(wordCount int) string {
	switch {
	case wordCount > 15:
		return DifficultyHard
	case wordCount > 8:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// EnsureDerivedFields computes word_count and difficulty from content.
// Called at ingestion time; word_count must always equal the whitespace
// token count of content.
func (s *Sentence) EnsureDerivedFields() {
	s.WordCount = len(strings.Fields(s.Content))
	s.Difficulty = ClassifyDifficulty(s.WordCount)
}
