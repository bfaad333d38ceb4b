package service

import (
	"context"
	"errors"
	"testing"

	"course-service/internal/models"
	"course-service/internal/repository"
)

func newLabFixture(t *testing.T) (*LabService, *ProgressService) {
	t.Helper()
	store := repository.NewMemoryStore()
	progress := NewProgressService(store)
	labs := NewLabService(store, progress, nil)
	labs.ExecutionDelay = 0

	lab := &models.SQLLab{
		ModuleID:     1,
		InitialQuery: "SELECT * FROM healthcare.patient_records;",
		ExpectedResult: []models.LabRow{
			{
				{Column: "patient_id", Value: "P001234"},
				{Column: "diagnosis_code", Value: "Z00.00"},
			},
			{
				{Column: "patient_id", Value: "P001235"},
				{Column: "diagnosis_code", Value: "K59.1"},
			},
		},
		Instructions: "Select patient records.",
	}
	if err := labs.CreateLab(context.Background(), lab); err != nil {
		t.Fatalf("CreateLab returned error: %v", err)
	}
	return labs, progress
}

func TestExecuteReturnsCannedResult(t *testing.T) {
	labs, progress := newLabFixture(t)
	ctx := context.Background()

	// The sandbox is simulated: whatever the query says, the seeded result
	// comes back.
	result, err := labs.Execute(ctx, 1, 1, "DROP TABLE anything;")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.Success {
		t.Error("Expected success")
	}
	if result.RowCount != 2 || len(result.Results) != 2 {
		t.Fatalf("Expected 2 rows, got rowCount=%d len=%d", result.RowCount, len(result.Results))
	}
	if result.Results[0][0].Column != "patient_id" || result.Results[0][0].Value != "P001234" {
		t.Errorf("Expected first cell patient_id=P001234, got %+v", result.Results[0][0])
	}

	record, err := progress.GetModuleProgress(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GetModuleProgress returned error: %v", err)
	}
	if record == nil || !record.LabCompleted {
		t.Error("Expected lab execution to mark labCompleted")
	}
	if record != nil && record.Completed {
		t.Error("Lab execution must not set completed")
	}
}

func TestExecuteLabNotFound(t *testing.T) {
	labs, progress := newLabFixture(t)
	ctx := context.Background()

	_, err := labs.Execute(ctx, 1, 99, "SELECT 1;")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	records, err := progress.GetUserProgress(ctx, 1)
	if err != nil {
		t.Fatalf("GetUserProgress returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no progress change for a missing lab, got %d records", len(records))
	}
}
