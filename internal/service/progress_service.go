package service

import (
	"context"
	"time"

	"reorder-service/internal/models"
	"reorder-service/internal/repository"
)

type ProgressService struct {
	Repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{Repo: repo}
}

// Save upserts the single progress slot for (lesson, sentence), stamping
// updated_at. Repeated identical saves converge on the same stored state.
func (s *ProgressService) Save(ctx context.Context, progress *models.Progress) error {
	progress.UpdatedAt = time.Now()
	return s.Repo.Upsert(ctx, progress)
}

func (s *ProgressService) Get(ctx context.Context, lessonID, sentenceID string) (*models.Progress, error) {
	return s.Repo.FindByKey(ctx, lessonID, sentenceID)
}
