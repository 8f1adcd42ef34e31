package service

import (
	"encoding/json"
	"strings"
	"testing"

	"reorder-service/internal/exercise"
	"reorder-service/internal/models"
)

func lessonSentences() []models.Sentence {
	contents := []string{
		"I like red apples",
		"The quick brown fox jumps",
		"She sells sea shells",
	}
	sentences := make([]models.Sentence, len(contents))
	for i, c := range contents {
		s := models.Sentence{ID: string(rune('a' + i)), LessonID: "l1", Content: c, Position: i + 1}
		s.EnsureDerivedFields()
		sentences[i] = s
	}
	return sentences
}

func TestBuildSessionPreservesOrder(t *testing.T) {
	service := &SessionService{generator: exercise.NewGenerator(nil)}
	sentences := lessonSentences()

	session := service.buildSession(sentences, sentences, exercise.LevelNormal)

	if session.Level != exercise.LevelNormal {
		t.Errorf("Expected level %d, got %d", exercise.LevelNormal, session.Level)
	}
	if len(session.Puzzles) != len(sentences) {
		t.Fatalf("Expected %d puzzles, got %d", len(sentences), len(session.Puzzles))
	}
	for i, puzzle := range session.Puzzles {
		if puzzle.SentenceID != sentences[i].ID {
			t.Errorf("Puzzle %d: expected sentence %s, got %s", i, sentences[i].ID, puzzle.SentenceID)
		}
	}
}

func TestBuildSessionSubsetKeepsPoolSampling(t *testing.T) {
	service := &SessionService{generator: exercise.NewGenerator(nil)}
	sentences := lessonSentences()
	selected := sentences[1:2]

	session := service.buildSession(selected, sentences, exercise.LevelHard)

	if len(session.Puzzles) != 1 {
		t.Fatalf("Expected 1 puzzle, got %d", len(session.Puzzles))
	}
	puzzle := session.Puzzles[0]
	extras := len(puzzle.Words) - puzzle.WordCount
	if extras != 3 {
		t.Errorf("Expected 3 distractors from the lesson pool, got %d", extras)
	}
}

func TestSelectWrong(t *testing.T) {
	sentences := lessonSentences()

	testCases := []struct {
		name     string
		wrongIDs []string
		expected []string
	}{
		{"single wrong sentence", []string{"b"}, []string{"b"}},
		{"order follows positions not ids", []string{"c", "a"}, []string{"a", "c"}},
		{"no wrong sentences", nil, []string{}},
		{"unknown ids ignored", []string{"zz"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selected := selectWrong(sentences, tc.wrongIDs)
			if len(selected) != len(tc.expected) {
				t.Fatalf("Expected %d sentences, got %d", len(tc.expected), len(selected))
			}
			for i, s := range selected {
				if s.ID != tc.expected[i] {
					t.Errorf("Position %d: expected sentence %s, got %s", i, tc.expected[i], s.ID)
				}
			}
		})
	}
}

func TestSessionPayloadNeverCarriesContent(t *testing.T) {
	service := &SessionService{generator: exercise.NewGenerator(nil)}
	sentences := lessonSentences()

	session := service.buildSession(sentences, sentences, exercise.LevelExact)

	payload, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("Failed to marshal session: %v", err)
	}
	for _, s := range sentences {
		if strings.Contains(string(payload), s.Content) {
			t.Errorf("Session payload leaks canonical content %q", s.Content)
		}
	}
}
