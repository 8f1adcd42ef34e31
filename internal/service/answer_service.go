package service

import (
	"context"

	"reorder-service/internal/exercise"
	"reorder-service/internal/repository"
)

// AnswerService validates submitted arrangements. The verdict is not
// persisted here; callers wire it into progress with an explicit save.
type AnswerService struct {
	SentenceRepo *repository.SentenceRepository
}

func NewAnswerService(sentenceRepo *repository.SentenceRepository) *AnswerService {
	return &AnswerService{SentenceRepo: sentenceRepo}
}

func (s *AnswerService) SubmitAnswer(ctx context.Context, sentenceID string, arrangement []string, level int) (*exercise.ValidationResult, error) {
	sentence, err := s.SentenceRepo.FindByID(ctx, sentenceID)
	if err != nil {
		return nil, err
	}
	result := exercise.Validate(sentence.Content, arrangement, level)
	return &result, nil
}
