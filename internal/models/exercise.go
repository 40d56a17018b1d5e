package models

import (
	"fmt"
	"time"
)

// ExerciseContent is the question payload stored as a document inside the
// exercise record. Records coming from the store are untyped, so content is
// validated before a session will accept it.
type ExerciseContent struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type Exercise struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description"`
	Difficulty  string          `bson:"difficulty" json:"difficulty"`
	Points      int             `bson:"points" json:"points"`
	Content     ExerciseContent `bson:"content" json:"content"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DifficultyPoints defines default point values for each difficulty tier
var DifficultyPoints = map[string]int{
	DifficultyEasy:   10,
	DifficultyMedium: 20,
	DifficultyHard:   30,
}

// EnsurePoints fills in the default point value for the exercise's
// difficulty when no explicit value is set.
func (e *Exercise) EnsurePoints() {
	if e.Points > 0 {
		return
	}
	if pts, exists := DifficultyPoints[e.Difficulty]; exists {
		e.Points = pts
	} else {
		e.Points = 10 // Default fallback
	}
}

// Validate checks that the content payload is usable in a session:
// a question, at least two options, an in-bounds correct index.
func (c ExerciseContent) Validate() error {
	if c.Question == "" {
		return fmt.Errorf("content missing question text")
	}
	if len(c.Options) < 2 {
		return fmt.Errorf("content needs at least 2 options, got %d", len(c.Options))
	}
	if c.CorrectAnswer < 0 || c.CorrectAnswer >= len(c.Options) {
		return fmt.Errorf("correct answer index %d out of range for %d options", c.CorrectAnswer, len(c.Options))
	}
	return nil
}
