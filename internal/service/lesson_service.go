package service

import (
	"context"
	"fmt"
	"time"

	"reorder-service/internal/models"
	"reorder-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// LessonService is the corpus write/read surface used by the ingestion side.
type LessonService struct {
	LessonRepo   *repository.LessonRepository
	SentenceRepo *repository.SentenceRepository
	ProgressRepo *repository.ProgressRepository
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	sentenceRepo *repository.SentenceRepository,
	progressRepo *repository.ProgressRepository,
) *LessonService {
	return &LessonService{
		LessonRepo:   lessonRepo,
		SentenceRepo: sentenceRepo,
		ProgressRepo: progressRepo,
	}
}

func (s *LessonService) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	return s.LessonRepo.FindAll(ctx)
}

func (s *LessonService) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	return s.LessonRepo.FindByID(ctx, id)
}

func (s *LessonService) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	lesson.CreatedAt = time.Now()
	return s.LessonRepo.Create(ctx, lesson)
}

// DeleteLesson cascades to the lesson's sentences and progress records.
func (s *LessonService) DeleteLesson(ctx context.Context, id string) error {
	if err := s.SentenceRepo.DeleteByLesson(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sentences: %w", err)
	}
	if err := s.ProgressRepo.DeleteByLesson(ctx, id); err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return s.LessonRepo.Delete(ctx, id)
}

func (s *LessonService) ListSentences(ctx context.Context, lessonID string) ([]models.Sentence, error) {
	return s.SentenceRepo.FindByLesson(ctx, lessonID)
}

// CreateSentence derives word_count and difficulty before persisting.
func (s *LessonService) CreateSentence(ctx context.Context, sentence *models.Sentence) error {
	sentence.EnsureDerivedFields()
	sentence.CreatedAt = time.Now()
	return s.SentenceRepo.Create(ctx, sentence)
}

// SetDistractors stores decoy words produced out-of-band by the
// distractor-generation collaborator.
func (s *LessonService) SetDistractors(ctx context.Context, sentenceID string, distractors []string) error {
	return s.SentenceRepo.Update(ctx, sentenceID, bson.M{"distractors": distractors})
}
