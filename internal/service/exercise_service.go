package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"pykids-service/internal/models"
	"pykids-service/internal/quiz"
)

var ErrSessionNotFound = errors.New("session not found")

// ExerciseStore is the read side of the progress store used to load sets.
type ExerciseStore interface {
	FindAll(ctx context.Context) ([]models.Exercise, error)
}

// AnswerStore appends durable answer records.
type AnswerStore interface {
	Create(ctx context.Context, record *models.AnswerRecord) error
}

// ProfileStore applies atomic progress increments per user.
type ProfileStore interface {
	IncrementProgress(ctx context.Context, userID string, points int) error
}

// ExerciseService owns the active exercise sessions and composes the quiz
// state machine with best-effort persistence: the learner-facing flow never
// blocks or fails because a write did.
type ExerciseService struct {
	Exercises ExerciseStore
	Answers   AnswerStore
	Profiles  ProfileStore

	mu       sync.RWMutex
	sessions map[string]*exerciseSession
}

type exerciseSession struct {
	mu      sync.Mutex
	userID  string
	session *quiz.Session
}

func NewExerciseService(exercises ExerciseStore, answers AnswerStore, profiles ProfileStore) *ExerciseService {
	return &ExerciseService{
		Exercises: exercises,
		Answers:   answers,
		Profiles:  profiles,
		sessions:  make(map[string]*exerciseSession),
	}
}

// ListExercises returns the stored exercise set in presentation order.
func (s *ExerciseService) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return s.Exercises.FindAll(ctx)
}

// SessionView is the renderable state of one session.
type SessionView struct {
	SessionID string           `json:"session_id"`
	State     quiz.State       `json:"state"`
	Current   int              `json:"current"`
	Total     int              `json:"total"`
	Score     int              `json:"score"`
	Selected  int              `json:"selected"`
	Answers   []bool           `json:"answers"`
	Exercise  *models.Exercise `json:"exercise,omitempty"`
}

// AdvanceView is the state after acknowledging a revealed result, plus the
// completion summary once the last question has been passed.
type AdvanceView struct {
	SessionView
	Completed bool          `json:"completed"`
	Summary   *quiz.Summary `json:"summary,omitempty"`
}

// StartSession fetches the exercise set and opens a fresh session. A fetch
// failure is a load error; an empty set yields a valid, already-completed
// session. Malformed exercise content is quarantined, not trusted.
func (s *ExerciseService) StartSession(ctx context.Context, userID string) (*SessionView, error) {
	exercises, err := s.Exercises.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise set: %w", err)
	}

	valid := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if err := ex.Content.Validate(); err != nil {
			log.Printf("Quarantined exercise %s: %v", ex.ID, err)
			continue
		}
		ex.EnsurePoints()
		valid = append(valid, ex)
	}

	id := uuid.NewString()
	entry := &exerciseSession{userID: userID, session: quiz.NewSession(valid)}

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return s.view(id, entry), nil
}

// SelectOption records a tentative selection. Invalid indexes and
// selections after reveal are ignored.
func (s *ExerciseService) SelectOption(sessionID string, index int) (*SessionView, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.SelectOption(index)
	return s.view(sessionID, entry), nil
}

// SubmitAnswer scores the current selection locally and reveals the result.
func (s *ExerciseService) SubmitAnswer(sessionID string) (*quiz.SubmitResult, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.SubmitAnswer()
}

// Advance moves the learner forward and persists the acknowledged answer.
// Storage failures are logged and swallowed: a storage outage degrades to
// "quiz works, score not saved".
func (s *ExerciseService) Advance(ctx context.Context, sessionID string) (*AdvanceView, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	result, err := entry.session.Advance()
	if err != nil {
		return nil, err
	}

	s.persistAnswer(ctx, entry.userID, result)

	view := &AdvanceView{
		SessionView: *s.view(sessionID, entry),
		Completed:   result.Completed,
	}
	if result.Completed {
		summary := entry.session.BuildSummary()
		view.Summary = &summary
	}
	return view, nil
}

func (s *ExerciseService) persistAnswer(ctx context.Context, userID string, result *quiz.AdvanceResult) {
	record := &models.AnswerRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		ExerciseID:   result.ExerciseID,
		Answer:       strconv.Itoa(result.SelectedOption),
		IsCorrect:    result.IsCorrect,
		PointsEarned: result.PointsEarned,
		CompletedAt:  time.Now(),
	}

	if err := s.Answers.Create(ctx, record); err != nil {
		log.Printf("Failed to save answer record for user %s, exercise %s: %v", userID, result.ExerciseID, err)
	}

	if result.IsCorrect {
		if err := s.Profiles.IncrementProgress(ctx, userID, result.PointsEarned); err != nil {
			log.Printf("Failed to update profile progress for user %s: %v", userID, err)
		}
	}
}

// Restart resets the session over the same exercise set.
func (s *ExerciseService) Restart(sessionID string) (*SessionView, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Restart()
	return s.view(sessionID, entry), nil
}

func (s *ExerciseService) Status(sessionID string) (*SessionView, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return s.view(sessionID, entry), nil
}

func (s *ExerciseService) Summary(sessionID string) (*quiz.Summary, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	summary := entry.session.BuildSummary()
	return &summary, nil
}

func (s *ExerciseService) lookup(sessionID string) (*exerciseSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// view builds the renderable state; callers hold the session lock.
func (s *ExerciseService) view(sessionID string, entry *exerciseSession) *SessionView {
	sess := entry.session
	answers := make([]bool, len(sess.Answers))
	copy(answers, sess.Answers)
	return &SessionView{
		SessionID: sessionID,
		State:     sess.State,
		Current:   sess.Current,
		Total:     len(sess.Exercises),
		Score:     sess.Score,
		Selected:  sess.Selected,
		Answers:   answers,
		Exercise:  sess.CurrentExercise(),
	}
}
