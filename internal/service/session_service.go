package service

import (
	"context"
	"fmt"

	"reorder-service/internal/exercise"
	"reorder-service/internal/models"
	"reorder-service/internal/repository"
)

// SessionService assembles sentence-reconstruction sessions. Assembly is
// read-only: it never mutates corpus or progress state, and the sentence
// content never appears in the payload.
type SessionService struct {
	SentenceRepo *repository.SentenceRepository
	ProgressRepo *repository.ProgressRepository
	generator    *exercise.Generator
}

func NewSessionService(
	sentenceRepo *repository.SentenceRepository,
	progressRepo *repository.ProgressRepository,
) *SessionService {
	return &SessionService{
		SentenceRepo: sentenceRepo,
		ProgressRepo: progressRepo,
		generator:    exercise.NewGenerator(nil), // Uses default config
	}
}

// NewSession builds puzzles for every sentence of a lesson, in position
// order.
func (s *SessionService) NewSession(ctx context.Context, lessonID string, level int) (*exercise.Session, error) {
	sentences, err := s.SentenceRepo.FindByLesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentences: %w", err)
	}
	return s.buildSession(sentences, sentences, level), nil
}

// ReviewSession builds puzzles only for the sentences whose progress status
// is WRONG, keeping position order. The distractor pool stays the whole
// lesson, as in a new session. An empty puzzle list is a valid session, not
// an error.
func (s *SessionService) ReviewSession(ctx context.Context, lessonID string, level int) (*exercise.Session, error) {
	wrongIDs, err := s.ProgressRepo.FindWrongSentenceIDs(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if len(wrongIDs) == 0 {
		return &exercise.Session{Level: level, Puzzles: []exercise.Puzzle{}}, nil
	}

	sentences, err := s.SentenceRepo.FindByLesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentences: %w", err)
	}

	return s.buildSession(selectWrong(sentences, wrongIDs), sentences, level), nil
}

// selectWrong filters an ordered sentence slice down to the ids marked
// WRONG, preserving the incoming order.
func selectWrong(sentences []models.Sentence, wrongIDs []string) []models.Sentence {
	wrong := make(map[string]bool, len(wrongIDs))
	for _, id := range wrongIDs {
		wrong[id] = true
	}
	selected := make([]models.Sentence, 0, len(wrongIDs))
	for _, sentence := range sentences {
		if wrong[sentence.ID] {
			selected = append(selected, sentence)
		}
	}
	return selected
}

// buildSession runs the generation pipeline over the selected sentences in
// their given order; pool supplies the sibling sentences for distractor
// sampling.
func (s *SessionService) buildSession(selected, pool []models.Sentence, level int) *exercise.Session {
	puzzles := make([]exercise.Puzzle, 0, len(selected))
	for i := range selected {
		puzzle := s.generator.Generate(&selected[i], level, pool)
		puzzles = append(puzzles, *puzzle)
	}
	return &exercise.Session{Level: level, Puzzles: puzzles}
}
