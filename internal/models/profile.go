package models

import "time"

// Profile holds the per-user progress aggregates. Points and completion
// counters are only mutated through atomic increments keyed by user id.
type Profile struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	FullName           string    `bson:"full_name" json:"full_name"`
	Points             int       `bson:"points" json:"points"`
	ExercisesCompleted int       `bson:"exercises_completed" json:"exercises_completed"`
	LessonsCompleted   int       `bson:"lessons_completed" json:"lessons_completed"`
	CurrentStreak      int       `bson:"current_streak" json:"current_streak"`
	Level              string    `bson:"level" json:"level"`
	SchoolGrade        string    `bson:"school_grade" json:"school_grade"`
	BirthDate          string    `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	Avatar             string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}
