package repository

import (
	"context"

	"pykids-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExerciseRepository struct {
	Col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{Col: db.Collection("exercises")}
}

// FindAll returns the exercise set in creation order.
func (r *ExerciseRepository) FindAll(ctx context.Context) ([]models.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var exercises []models.Exercise
	for cur.Next(ctx) {
		var e models.Exercise
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, cur.Err()
}

func (r *ExerciseRepository) FindByID(ctx context.Context, id string) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	_, err := r.Col.InsertOne(ctx, exercise)
	return err
}

func (r *ExerciseRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}
