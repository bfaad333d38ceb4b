package service

import (
	"context"
	"fmt"
	"math"

	"course-service/internal/models"
	"course-service/internal/repository"
)

type ProgressService struct {
	Store repository.ProgressStore
}

func NewProgressService(store repository.ProgressStore) *ProgressService {
	return &ProgressService{Store: store}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	return s.Store.ListProgress(ctx, userID)
}

func (s *ProgressService) GetModuleProgress(ctx context.Context, userID, moduleID int64) (*models.UserProgress, error) {
	return s.Store.GetProgress(ctx, userID, moduleID)
}

// UpdateProgress merges a partial update into the (user, module) record.
// This is the only path that can set the completed flag; quiz and lab
// outcomes never derive it.
func (s *ProgressService) UpdateProgress(ctx context.Context, userID, moduleID int64, update models.ProgressUpdate) (*models.UserProgress, error) {
	if update.QuizScore != nil && (*update.QuizScore < 0 || *update.QuizScore > 100) {
		return nil, fmt.Errorf("quiz score %d out of range: %w", *update.QuizScore, ErrValidation)
	}
	return s.Store.UpsertProgress(ctx, userID, moduleID, update)
}

// RecordQuizScore stores the latest quiz score for the module. Resubmission
// is last-write-wins; a worse attempt overwrites a better one.
func (s *ProgressService) RecordQuizScore(ctx context.Context, userID, moduleID int64, score int) (*models.UserProgress, error) {
	return s.Store.UpsertProgress(ctx, userID, moduleID, models.ProgressUpdate{QuizScore: &score})
}

func (s *ProgressService) RecordLabCompletion(ctx context.Context, userID, moduleID int64) (*models.UserProgress, error) {
	completed := true
	return s.Store.UpsertProgress(ctx, userID, moduleID, models.ProgressUpdate{LabCompleted: &completed})
}

// OverallCompletion reports the percentage of modules the user has
// completed, rounded to the nearest integer. Zero modules means zero
// percent, not a division error.
func (s *ProgressService) OverallCompletion(ctx context.Context, userID int64, totalModules int) (int, error) {
	if totalModules == 0 {
		return 0, nil
	}
	records, err := s.Store.ListProgress(ctx, userID)
	if err != nil {
		return 0, err
	}
	completed := 0
	for _, record := range records {
		if record.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(totalModules) * 100)), nil
}
