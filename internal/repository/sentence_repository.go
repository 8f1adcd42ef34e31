package repository

import (
	"context"

	"reorder-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SentenceRepository struct {
	Col *mongo.Collection
}

func NewSentenceRepository(db *mongo.Database) *SentenceRepository {
	return &SentenceRepository{Col: db.Collection("sentences")}
}

// FindByLesson returns the lesson's sentences in persisted position order.
func (r *SentenceRepository) FindByLesson(ctx context.Context, lessonID string) ([]models.Sentence, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"lesson_id": lessonID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sentences []models.Sentence
	for cur.Next(ctx) {
		var s models.Sentence
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}

func (r *SentenceRepository) FindByID(ctx context.Context, id string) (*models.Sentence, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var sentence models.Sentence
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&sentence)
	if err != nil {
		return nil, err
	}
	return &sentence, nil
}

func (r *SentenceRepository) Create(ctx context.Context, sentence *models.Sentence) error {
	res, err := r.Col.InsertOne(ctx, sentence)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sentence.ID = oid.Hex()
	}
	return nil
}

func (r *SentenceRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *SentenceRepository) DeleteByLesson(ctx context.Context, lessonID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"lesson_id": lessonID})
	return err
}
