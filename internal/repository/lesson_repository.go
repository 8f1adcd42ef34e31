package repository

import (
	"context"

	"reorder-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LessonRepository struct {
	Col *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{Col: db.Collection("lessons")}
}

func (r *LessonRepository) FindAll(ctx context.Context) ([]models.Lesson, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var lessons []models.Lesson
	for cur.Next(ctx) {
		var l models.Lesson
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func (r *LessonRepository) FindByID(ctx context.Context, id string) (*models.Lesson, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var lesson models.Lesson
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&lesson)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	res, err := r.Col.InsertOne(ctx, lesson)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lesson.ID = oid.Hex()
	}
	return nil
}

func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
