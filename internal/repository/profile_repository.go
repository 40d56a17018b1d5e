package repository

import (
	"context"
	"time"

	"pykids-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("profiles")}
}

func (r *ProfileRepository) FindByID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// IncrementProgress atomically adds earned points and bumps the completed
// counter for one user. Upserts so a first-time learner gets a profile row.
func (r *ProfileRepository) IncrementProgress(ctx context.Context, userID string, points int) error {
	update := bson.M{
		"$inc": bson.M{
			"points":              points,
			"exercises_completed": 1,
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update, opts)
	return err
}
