package models

import "time"

// AnswerRecord is the durable log entry for one submitted answer. It is
// written once when the learner advances past a revealed question and is
// never updated afterwards.
type AnswerRecord struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ExerciseID   string    `bson:"exercise_id" json:"exercise_id"`
	Answer       string    `bson:"answer" json:"answer"`
	IsCorrect    bool      `bson:"is_correct" json:"is_correct"`
	PointsEarned int       `bson:"points_earned" json:"points_earned"`
	CompletedAt  time.Time `bson:"completed_at" json:"completed_at"`
}
