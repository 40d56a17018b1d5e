package repository

import (
	"context"

	"pykids-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("user_exercise_answers")}
}

func (r *AnswerRepository) Create(ctx context.Context, record *models.AnswerRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *AnswerRepository) FindByUser(ctx context.Context, userID string) ([]models.AnswerRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.AnswerRecord
	for cur.Next(ctx) {
		var rec models.AnswerRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}
