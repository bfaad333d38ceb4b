package service

import (
	"context"
	"errors"
	"testing"

	"course-service/internal/models"
	"course-service/internal/repository"
)

func threeQuestionQuiz() *models.Quiz {
	return &models.Quiz{
		ID:       1,
		ModuleID: 1,
		Questions: []models.QuizQuestion{
			{ID: 1, Question: "q1", Options: []string{"a", "b", "c"}, CorrectAnswer: 1, Explanation: "e1"},
			{ID: 2, Question: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2, Explanation: "e2"},
			{ID: 3, Question: "q3", Options: []string{"a", "b", "c"}, CorrectAnswer: 0, Explanation: "e3"},
		},
	}
}

func TestGradeScoring(t *testing.T) {
	testCases := []struct {
		name          string
		answers       []int
		expectedScore int
		expectCorrect []bool
	}{
		{"all correct", []int{1, 2, 0}, 100, []bool{true, true, true}},
		{"all wrong", []int{0, 0, 1}, 0, []bool{false, false, false}},
		{"unanswered sentinel is wrong", []int{-1, -1, -1}, 0, []bool{false, false, false}},
		{"out of range is wrong", []int{99, 2, 0}, 67, []bool{false, true, true}},
		{"one of three", []int{1, 0, 1}, 33, []bool{true, false, false}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := Grade(threeQuestionQuiz(), tc.answers)
			if err != nil {
				t.Fatalf("Grade returned error: %v", err)
			}
			if report.Score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, report.Score)
			}
			if len(report.Results) != len(tc.expectCorrect) {
				t.Fatalf("Expected %d results, got %d", len(tc.expectCorrect), len(report.Results))
			}
			for i, result := range report.Results {
				if result.Correct != tc.expectCorrect[i] {
					t.Errorf("Result %d: expected correct=%v, got %v", i, tc.expectCorrect[i], result.Correct)
				}
				if result.UserAnswer != tc.answers[i] {
					t.Errorf("Result %d: expected userAnswer %d, got %d", i, tc.answers[i], result.UserAnswer)
				}
			}
		})
	}
}

func TestGradeEchoesCorrectAnswers(t *testing.T) {
	report, err := Grade(threeQuestionQuiz(), []int{0, 1, 1})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if report.Score != 0 {
		t.Errorf("Expected score 0, got %d", report.Score)
	}
	expected := []int{1, 2, 0}
	for i, result := range report.Results {
		if result.CorrectAnswer != expected[i] {
			t.Errorf("Result %d: expected correctAnswer %d, got %d", i, expected[i], result.CorrectAnswer)
		}
		if result.Explanation == "" {
			t.Errorf("Result %d: expected explanation to be set", i)
		}
	}
}

func TestGradeLengthMismatch(t *testing.T) {
	for _, answers := range [][]int{{1}, {1, 2, 0, 1}, {}} {
		if _, err := Grade(threeQuestionQuiz(), answers); !errors.Is(err, ErrValidation) {
			t.Errorf("answers %v: expected ErrValidation, got %v", answers, err)
		}
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	report, err := Grade(&models.Quiz{ID: 1, ModuleID: 1}, []int{})
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if report.Score != 0 {
		t.Errorf("Expected score 0 for empty quiz, got %d", report.Score)
	}
	if len(report.Results) != 0 {
		t.Errorf("Expected empty results, got %d entries", len(report.Results))
	}
}

func newQuizFixture(t *testing.T) (*QuizService, *ProgressService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	quizzes := NewQuizService(store, progress, nil)

	quiz := threeQuestionQuiz()
	quiz.ModuleID = 2
	if err := quizzes.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("CreateQuiz returned error: %v", err)
	}
	return quizzes, progress, store
}

func TestSubmitRecordsScore(t *testing.T) {
	quizzes, progress, _ := newQuizFixture(t)
	ctx := context.Background()

	report, err := quizzes.Submit(ctx, 1, 2, []int{1, 2, 0})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if report.Score != 100 {
		t.Errorf("Expected score 100, got %d", report.Score)
	}

	record, err := progress.GetModuleProgress(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetModuleProgress returned error: %v", err)
	}
	if record == nil {
		t.Fatal("Expected a progress record after submission")
	}
	if record.QuizScore == nil || *record.QuizScore != 100 {
		t.Errorf("Expected quizScore 100, got %v", record.QuizScore)
	}
	if record.Completed {
		t.Error("Submitting a quiz must not set completed")
	}
}

func TestSubmitResubmissionOverwrites(t *testing.T) {
	quizzes, progress, _ := newQuizFixture(t)
	ctx := context.Background()

	if _, err := quizzes.Submit(ctx, 1, 2, []int{1, 2, 0}); err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}
	if _, err := quizzes.Submit(ctx, 1, 2, []int{0, 1, 1}); err != nil {
		t.Fatalf("second Submit returned error: %v", err)
	}

	record, err := progress.GetModuleProgress(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetModuleProgress returned error: %v", err)
	}
	if record.QuizScore == nil {
		t.Fatal("Expected quizScore to be set after resubmission")
	}
	if *record.QuizScore != 0 {
		t.Errorf("Expected last-write-wins score 0, got %d", *record.QuizScore)
	}
}

func TestSubmitQuizNotFound(t *testing.T) {
	quizzes, progress, _ := newQuizFixture(t)
	ctx := context.Background()

	_, err := quizzes.Submit(ctx, 1, 99, []int{1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	records, err := progress.GetUserProgress(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserProgress returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no progress change on missing quiz, got %d records", len(records))
	}
}

func TestSubmitMalformedShapeLeavesNoState(t *testing.T) {
	quizzes, progress, _ := newQuizFixture(t)
	ctx := context.Background()

	_, err := quizzes.Submit(ctx, 1, 2, []int{1, 2})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}

	records, err := progress.GetUserProgress(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserProgress returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no progress change on malformed submission, got %d records", len(records))
	}
}
