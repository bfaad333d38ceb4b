package service

import (
	"context"
	"testing"

	"course-service/internal/models"
	"course-service/internal/repository"
)

func TestUpsertMergesIntoSingleRecord(t *testing.T) {
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	ctx := context.Background()

	if _, err := progress.RecordLabCompletion(ctx, 1, 2); err != nil {
		t.Fatalf("RecordLabCompletion returned error: %v", err)
	}
	if _, err := progress.RecordQuizScore(ctx, 1, 2, 90); err != nil {
		t.Fatalf("RecordQuizScore returned error: %v", err)
	}

	records, err := progress.GetUserProgress(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserProgress returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected exactly one progress record, got %d", len(records))
	}
	record := records[0]
	if !record.LabCompleted {
		t.Error("Expected labCompleted to survive the second upsert")
	}
	if record.QuizScore == nil || *record.QuizScore != 90 {
		t.Errorf("Expected quizScore 90, got %v", record.QuizScore)
	}
	if record.Completed {
		t.Error("Neither quiz nor lab results may set completed")
	}
	if record.LastAccessed.IsZero() {
		t.Error("Expected lastAccessed to be refreshed")
	}
}

func TestUpdateProgressSetsCompleted(t *testing.T) {
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	ctx := context.Background()

	completed := true
	record, err := progress.UpdateProgress(ctx, 1, 1, models.ProgressUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("UpdateProgress returned error: %v", err)
	}
	if !record.Completed {
		t.Error("Expected completed to be set by a direct update")
	}
	if record.QuizScore != nil {
		t.Errorf("Expected quizScore to default to absent, got %v", record.QuizScore)
	}
	if record.LabCompleted {
		t.Error("Expected labCompleted to default to false")
	}
}

func TestUpdateProgressRejectsOutOfRangeScore(t *testing.T) {
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	ctx := context.Background()

	for _, score := range []int{-1, 101} {
		s := score
		_, err := progress.UpdateProgress(ctx, 1, 1, models.ProgressUpdate{QuizScore: &s})
		if err == nil {
			t.Errorf("Expected score %d to be rejected", score)
		}
	}
}

func TestOverallCompletion(t *testing.T) {
	testCases := []struct {
		name         string
		completed    int
		totalModules int
		expected     int
	}{
		{"zero modules", 0, 0, 0},
		{"none completed", 0, 3, 0},
		{"one of three", 1, 3, 33},
		{"two of three", 2, 3, 67},
		{"all completed", 3, 3, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := repository.NewMemoryStore()
			progress := NewProgressService(store)
			ctx := context.Background()

			completed := true
			for i := 0; i < tc.completed; i++ {
				if _, err := progress.UpdateProgress(ctx, 1, int64(i+1), models.ProgressUpdate{Completed: &completed}); err != nil {
					t.Fatalf("UpdateProgress returned error: %v", err)
				}
			}

			got, err := progress.OverallCompletion(ctx, 1, tc.totalModules)
			if err != nil {
				t.Fatalf("OverallCompletion returned error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected completion %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestOverallCompletionIgnoresIncompleteRecords(t *testing.T) {
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	ctx := context.Background()

	// A quiz score alone does not make a module count as completed.
	if _, err := progress.RecordQuizScore(ctx, 1, 1, 100); err != nil {
		t.Fatalf("RecordQuizScore returned error: %v", err)
	}

	got, err := progress.OverallCompletion(ctx, 1, 3)
	if err != nil {
		t.Fatalf("OverallCompletion returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("Expected completion 0, got %d", got)
	}
}
