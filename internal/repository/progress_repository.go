package repository

import (
	"context"

	"reorder-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

// EnsureIndexes creates the unique (lesson_id, sentence_id) index the
// upsert relies on.
func (r *ProgressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "lesson_id", Value: 1},
			{Key: "sentence_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Upsert overwrites the single progress slot for (lesson_id, sentence_id),
// inserting it if absent. One atomic statement, last writer wins.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.Progress) error {
	filter := bson.M{
		"lesson_id":   progress.LessonID,
		"sentence_id": progress.SentenceID,
	}
	update := bson.M{"$set": bson.M{
		"lesson_id":           progress.LessonID,
		"sentence_id":         progress.SentenceID,
		"selected_level":      progress.SelectedLevel,
		"status":              progress.Status,
		"current_arrangement": progress.CurrentArrangement,
		"time_remaining":      progress.TimeRemaining,
		"audio_usage_count":   progress.AudioUsageCount,
		"updated_at":          progress.UpdatedAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ProgressRepository) FindByKey(ctx context.Context, lessonID, sentenceID string) (*models.Progress, error) {
	var progress models.Progress
	err := r.Col.FindOne(ctx, bson.M{"lesson_id": lessonID, "sentence_id": sentenceID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindWrongSentenceIDs returns the sentence ids in a lesson whose progress
// status is WRONG; the review-session join happens against this set.
func (r *ProgressRepository) FindWrongSentenceIDs(ctx context.Context, lessonID string) ([]string, error) {
	cur, err := r.Col.Find(ctx, bson.M{"lesson_id": lessonID, "status": models.ProgressStatusWrong})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var ids []string
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		ids = append(ids, p.SentenceID)
	}
	return ids, nil
}

func (r *ProgressRepository) DeleteByLesson(ctx context.Context, lessonID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"lesson_id": lessonID})
	return err
}
