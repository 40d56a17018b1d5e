// Exercise session state machine. Pure in-memory logic: persistence of
// answer records and profile updates happens in the service layer, driven
// by the results returned from Advance.
package quiz

import (
	"errors"

	"pykids-service/internal/models"
)

type State string

const (
	StatePresenting State = "presenting"
	StateRevealed   State = "revealed"
	StateCompleted  State = "completed"
)

// NoSelection marks a question with no tentative answer yet.
const NoSelection = -1

var (
	ErrNotPresenting = errors.New("no question is being presented")
	ErrNoSelection   = errors.New("no option selected")
	ErrNotRevealed   = errors.New("answer has not been submitted")
)

// Session drives one linear pass through a fixed, ordered exercise set.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	Exercises []models.Exercise `json:"exercises"`
	Current   int               `json:"current"`
	Selected  int               `json:"selected"`
	State     State             `json:"state"`
	Score     int               `json:"score"`
	Answers   []bool            `json:"answers"`
}

// SubmitResult is the local outcome of submitting the current selection.
type SubmitResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	PointsEarned  int    `json:"points_earned"`
	Score         int    `json:"score"`
}

// AdvanceResult carries everything the caller needs to durably record the
// acknowledged answer and move the learner forward.
type AdvanceResult struct {
	ExerciseID     string `json:"exercise_id"`
	SelectedOption int    `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
	PointsEarned   int    `json:"points_earned"`
	Completed      bool   `json:"completed"`
}

// NewSession starts a session over the given exercise set. An empty set is
// a valid terminal state, not an error.
func NewSession(exercises []models.Exercise) *Session {
	s := &Session{
		Exercises: exercises,
		Current:   0,
		Selected:  NoSelection,
		State:     StatePresenting,
		Answers:   []bool{},
	}
	if len(exercises) == 0 {
		s.State = StateCompleted
	}
	return s
}

// CurrentExercise returns the exercise being presented, or nil once the
// session has completed.
func (s *Session) CurrentExercise() *models.Exercise {
	if s.State == StateCompleted || s.Current >= len(s.Exercises) {
		return nil
	}
	return &s.Exercises[s.Current]
}

// SelectOption records a tentative selection for the current question.
// Out-of-range indexes and selections after the result is revealed are
// ignored. Selecting the same option twice is a no-op.
func (s *Session) SelectOption(index int) {
	if s.State != StatePresenting {
		return
	}
	ex := s.CurrentExercise()
	if ex == nil {
		return
	}
	if index < 0 || index >= len(ex.Content.Options) {
		return
	}
	s.Selected = index
}

// SubmitAnswer locks in the current selection, scores it locally and
// reveals the result. Nothing is persisted here; the result screen shows
// feedback before any write is attempted.
func (s *Session) SubmitAnswer() (*SubmitResult, error) {
	if s.State != StatePresenting {
		return nil, ErrNotPresenting
	}
	if s.Selected == NoSelection {
		return nil, ErrNoSelection
	}

	ex := s.CurrentExercise()
	isCorrect := s.Selected == ex.Content.CorrectAnswer
	s.Answers = append(s.Answers, isCorrect)
	if isCorrect {
		s.Score++
	}
	s.State = StateRevealed

	points := 0
	if isCorrect {
		points = ex.Points
	}

	return &SubmitResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: ex.Content.CorrectAnswer,
		Explanation:   ex.Content.Explanation,
		PointsEarned:  points,
		Score:         s.Score,
	}, nil
}

// Advance acknowledges the revealed result and moves to the next question,
// or completes the session after the last one. The returned result is what
// the caller should persist.
func (s *Session) Advance() (*AdvanceResult, error) {
	if s.State != StateRevealed {
		return nil, ErrNotRevealed
	}

	ex := s.CurrentExercise()
	isCorrect := s.Answers[len(s.Answers)-1]
	points := 0
	if isCorrect {
		points = ex.Points
	}

	result := &AdvanceResult{
		ExerciseID:     ex.ID,
		SelectedOption: s.Selected,
		IsCorrect:      isCorrect,
		PointsEarned:   points,
	}

	if s.Current < len(s.Exercises)-1 {
		s.Current++
		s.Selected = NoSelection
		s.State = StatePresenting
	} else {
		s.State = StateCompleted
		result.Completed = true
	}

	return result, nil
}

// Restart resets position, selection, score and the correctness list while
// keeping the same exercise set. Previously written answer records are not
// reversed.
func (s *Session) Restart() {
	s.Current = 0
	s.Selected = NoSelection
	s.Score = 0
	s.Answers = []bool{}
	s.State = StatePresenting
	if len(s.Exercises) == 0 {
		s.State = StateCompleted
	}
}
