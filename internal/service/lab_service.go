package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"course-service/internal/event"
	"course-service/internal/models"
	"course-service/internal/repository"
)

type LabService struct {
	Store     repository.LabStore
	Progress  *ProgressService
	Publisher event.Publisher

	// ExecutionDelay simulates sandbox query time. Tests set it to zero.
	ExecutionDelay time.Duration
}

func NewLabService(store repository.LabStore, progress *ProgressService, publisher event.Publisher) *LabService {
	return &LabService{
		Store:          store,
		Progress:       progress,
		Publisher:      publisher,
		ExecutionDelay: time.Second,
	}
}

func (s *LabService) GetLabByModule(ctx context.Context, moduleID int64) (*models.SQLLab, error) {
	lab, err := s.Store.GetLabByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if lab == nil {
		return nil, fmt.Errorf("sql lab for module %d: %w", moduleID, ErrNotFound)
	}
	return lab, nil
}

func (s *LabService) CreateLab(ctx context.Context, lab *models.SQLLab) error {
	return s.Store.CreateLab(ctx, lab)
}

// Execute runs a query against the simulated sandbox. The sandbox does not
// parse SQL: after an artificial delay it answers with the lab's seeded
// result set, whatever the query text was, and marks the lab completed for
// the user.
func (s *LabService) Execute(ctx context.Context, userID, moduleID int64, query string) (*models.LabRunResult, error) {
	lab, err := s.GetLabByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if s.ExecutionDelay > 0 {
		select {
		case <-time.After(s.ExecutionDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if _, err := s.Progress.RecordLabCompletion(ctx, userID, moduleID); err != nil {
		return nil, fmt.Errorf("recording lab completion: %w", err)
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish("lab.completed", map[string]interface{}{
			"userId":   userID,
			"moduleId": moduleID,
		}); err != nil {
			log.Printf("Warning: failed to publish lab.completed event: %v", err)
		}
	}

	return &models.LabRunResult{
		Success:       true,
		Results:       lab.ExpectedResult,
		ExecutionTime: "0.42s",
		RowCount:      len(lab.ExpectedResult),
	}, nil
}
