package repository

import (
	"context"
	"time"

	"pykids-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LibraryRepository struct {
	ItemsCol    *mongo.Collection
	ProgressCol *mongo.Collection
}

func NewLibraryRepository(db *mongo.Database) *LibraryRepository {
	return &LibraryRepository{
		ItemsCol:    db.Collection("library_items"),
		ProgressCol: db.Collection("user_library_progress"),
	}
}

func (r *LibraryRepository) FindAllItems(ctx context.Context) ([]models.LibraryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.ItemsCol.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.LibraryItem
	for cur.Next(ctx) {
		var item models.LibraryItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, cur.Err()
}

func (r *LibraryRepository) FindItemByID(ctx context.Context, id string) (*models.LibraryItem, error) {
	var item models.LibraryItem
	err := r.ItemsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertProgress records an item open, keyed by (user_id, library_item_id).
func (r *LibraryRepository) UpsertProgress(ctx context.Context, userID, itemID string, percentage int, completed bool) error {
	filter := bson.M{"user_id": userID, "library_item_id": itemID}
	update := bson.M{
		"$set": bson.M{
			"progress_percentage": percentage,
			"completed":           completed,
			"last_accessed":       time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.ProgressCol.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *LibraryRepository) FindProgressByUser(ctx context.Context, userID string) ([]models.LibraryProgress, error) {
	cur, err := r.ProgressCol.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var progress []models.LibraryProgress
	for cur.Next(ctx) {
		var p models.LibraryProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, cur.Err()
}
