package models

import (
	"testing"
)

func TestContentValidate(t *testing.T) {
	testCases := []struct {
		name      string
		content   ExerciseContent
		expectErr bool
	}{
		{
			"valid",
			ExerciseContent{
				Question:      "Qual comando imprime na tela?",
				Options:       []string{"show()", "print()"},
				CorrectAnswer: 1,
				Explanation:   "print() exibe texto na tela!",
			},
			false,
		},
		{
			"missing question",
			ExerciseContent{Options: []string{"a", "b"}, CorrectAnswer: 0},
			true,
		},
		{
			"too few options",
			ExerciseContent{Question: "q", Options: []string{"a"}, CorrectAnswer: 0},
			true,
		},
		{
			"correct index out of range",
			ExerciseContent{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 2},
			true,
		},
		{
			"negative correct index",
			ExerciseContent{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: -1},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.content.Validate()
			if tc.expectErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Expected valid content, got %v", err)
			}
		})
	}
}

func TestEnsurePoints(t *testing.T) {
	testCases := []struct {
		difficulty    string
		presetPoints  int
		expectedValue int
	}{
		{DifficultyEasy, 0, 10},
		{DifficultyMedium, 0, 20},
		{DifficultyHard, 0, 30},
		{"unknown", 0, 10}, // fallback to default
		{DifficultyHard, 50, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.difficulty, func(t *testing.T) {
			e := &Exercise{Difficulty: tc.difficulty, Points: tc.presetPoints}
			e.EnsurePoints()
			if e.Points != tc.expectedValue {
				t.Errorf("Expected %d points, got %d", tc.expectedValue, e.Points)
			}
		})
	}
}
