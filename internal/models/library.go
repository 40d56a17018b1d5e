package models

import "time"

type LibraryItem struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Type         string    `bson:"type" json:"type"` // "book" or "video"
	URL          string    `bson:"url,omitempty" json:"url,omitempty"`
	Category     string    `bson:"category" json:"category"`
	Difficulty   string    `bson:"difficulty" json:"difficulty"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// LibraryProgress tracks one user's progress on one library item. Upserted
// on each open, keyed by (user_id, library_item_id).
type LibraryProgress struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	LibraryItemID      string    `bson:"library_item_id" json:"library_item_id"`
	Completed          bool      `bson:"completed" json:"completed"`
	ProgressPercentage int       `bson:"progress_percentage" json:"progress_percentage"`
	LastAccessed       time.Time `bson:"last_accessed" json:"last_accessed"`
}
