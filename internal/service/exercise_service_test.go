package service

import (
	"context"
	"errors"
	"testing"

	"pykids-service/internal/models"
	"pykids-service/internal/quiz"
)

type fakeExerciseStore struct {
	exercises []models.Exercise
	err       error
}

func (f *fakeExerciseStore) FindAll(ctx context.Context) ([]models.Exercise, error) {
	return f.exercises, f.err
}

type fakeAnswerStore struct {
	records []models.AnswerRecord
	err     error
}

func (f *fakeAnswerStore) Create(ctx context.Context, record *models.AnswerRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, *record)
	return nil
}

type fakeProfileStore struct {
	points     int
	completed  int
	increments int
	err        error
}

func (f *fakeProfileStore) IncrementProgress(ctx context.Context, userID string, points int) error {
	if f.err != nil {
		return f.err
	}
	f.points += points
	f.completed++
	f.increments++
	return nil
}

func storeExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID: "ex-1", Title: "Imprimindo na tela", Difficulty: models.DifficultyEasy, Points: 10,
			Content: models.ExerciseContent{
				Question:      "Qual comando usamos para imprimir algo na tela em Python?",
				Options:       []string{"show()", "print()", "write()", "display()"},
				CorrectAnswer: 1,
				Explanation:   "A função print() é usada para exibir texto na tela em Python!",
			},
		},
		{
			ID: "ex-2", Title: "Repetindo código", Difficulty: models.DifficultyMedium, Points: 20,
			Content: models.ExerciseContent{
				Question:      "Qual estrutura usamos para repetir um código várias vezes?",
				Options:       []string{"if", "for", "def", "import"},
				CorrectAnswer: 1,
				Explanation:   "O loop 'for' nos permite repetir código várias vezes!",
			},
		},
	}
}

func newTestService(exercises []models.Exercise) (*ExerciseService, *fakeAnswerStore, *fakeProfileStore) {
	answers := &fakeAnswerStore{}
	profiles := &fakeProfileStore{}
	svc := NewExerciseService(&fakeExerciseStore{exercises: exercises}, answers, profiles)
	return svc, answers, profiles
}

func runQuestion(t *testing.T, svc *ExerciseService, sessionID string, selection int) *AdvanceView {
	t.Helper()

	if _, err := svc.SelectOption(sessionID, selection); err != nil {
		t.Fatalf("SelectOption failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(sessionID); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	view, err := svc.Advance(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	return view
}

func TestFullRunPersistsRecords(t *testing.T) {
	svc, answers, profiles := newTestService(storeExercises())

	view, err := svc.StartSession(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	runQuestion(t, svc, view.SessionID, 1) // correct, 10 pts
	final := runQuestion(t, svc, view.SessionID, 0)

	if !final.Completed {
		t.Error("Expected session to complete")
	}
	if final.Summary == nil || final.Summary.Score != 1 {
		t.Errorf("Expected summary score 1, got %+v", final.Summary)
	}

	if len(answers.records) != 2 {
		t.Fatalf("Expected 2 answer records, got %d", len(answers.records))
	}

	correct := 0
	for _, rec := range answers.records {
		if rec.UserID != "user-1" {
			t.Errorf("Expected record for user-1, got %s", rec.UserID)
		}
		if rec.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("Expected exactly 1 correct record, got %d", correct)
	}

	if answers.records[0].ExerciseID != "ex-1" || answers.records[0].Answer != "1" {
		t.Errorf("Unexpected first record: %+v", answers.records[0])
	}
	if answers.records[0].PointsEarned != 10 {
		t.Errorf("Expected 10 points earned, got %d", answers.records[0].PointsEarned)
	}
	if answers.records[1].IsCorrect || answers.records[1].PointsEarned != 0 {
		t.Errorf("Wrong answer must earn 0 points: %+v", answers.records[1])
	}

	if profiles.increments != 1 || profiles.points != 10 {
		t.Errorf("Expected one +10 profile increment, got %d increments, %d points", profiles.increments, profiles.points)
	}
}

func TestPersistenceFailureStillAdvances(t *testing.T) {
	svc, answers, profiles := newTestService(storeExercises())
	answers.err = errors.New("store down")
	profiles.err = errors.New("store down")

	view, err := svc.StartSession(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	advanced := runQuestion(t, svc, view.SessionID, 1)

	if advanced.State != quiz.StatePresenting {
		t.Errorf("Session must advance despite write failure, got %s", advanced.State)
	}
	if advanced.Current != 1 {
		t.Errorf("Expected position 1, got %d", advanced.Current)
	}
	if advanced.Score != 1 {
		t.Errorf("In-memory score must survive write failure, got %d", advanced.Score)
	}
}

func TestStartSessionLoadError(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseStore{err: errors.New("connection refused")}, &fakeAnswerStore{}, &fakeProfileStore{})

	if _, err := svc.StartSession(context.Background(), "user-1"); err == nil {
		t.Error("Expected a load error")
	}
}

func TestStartSessionEmptySet(t *testing.T) {
	svc, _, _ := newTestService(nil)

	view, err := svc.StartSession(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Empty set must not be an error: %v", err)
	}
	if view.State != quiz.StateCompleted {
		t.Errorf("Expected completed state for empty set, got %s", view.State)
	}
	if view.Total != 0 {
		t.Errorf("Expected 0 exercises, got %d", view.Total)
	}
}

func TestMalformedExercisesQuarantined(t *testing.T) {
	exercises := storeExercises()
	exercises = append(exercises, models.Exercise{
		ID: "ex-bad", Title: "quebrado",
		Content: models.ExerciseContent{
			Question:      "sem opções suficientes",
			Options:       []string{"só uma"},
			CorrectAnswer: 0,
		},
	})
	svc, _, _ := newTestService(exercises)

	view, err := svc.StartSession(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if view.Total != 2 {
		t.Errorf("Malformed exercise should be quarantined, got %d in session", view.Total)
	}
}

func TestRestartAllowsReEarning(t *testing.T) {
	svc, answers, profiles := newTestService(storeExercises()[:1])

	view, err := svc.StartSession(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	runQuestion(t, svc, view.SessionID, 1)

	restarted, err := svc.Restart(view.SessionID)
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if restarted.Score != 0 || restarted.Current != 0 {
		t.Errorf("Expected reset state, got score %d, position %d", restarted.Score, restarted.Current)
	}

	runQuestion(t, svc, view.SessionID, 1)

	// Repeat runs produce a second record and a second award
	if len(answers.records) != 2 {
		t.Errorf("Expected 2 records after replay, got %d", len(answers.records))
	}
	if profiles.points != 20 {
		t.Errorf("Expected re-earned points total 20, got %d", profiles.points)
	}
}

func TestUnknownSessionRejected(t *testing.T) {
	svc, _, _ := newTestService(storeExercises())

	if _, err := svc.SubmitAnswer("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Advance(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
