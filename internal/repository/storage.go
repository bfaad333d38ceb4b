package repository

import (
	"context"
	"errors"

	"course-service/internal/models"
)

// ErrDuplicateKey is returned when a create or upsert collides with a
// uniqueness constraint (username, module order index).
var ErrDuplicateKey = errors.New("duplicate key")

// Store interfaces mirror what the services need from persistence. Lookups
// return (nil, nil) when the entity is absent; callers decide whether that
// is an error.

type UserStore interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type ModuleStore interface {
	ListModules(ctx context.Context) ([]models.Module, error)
	GetModule(ctx context.Context, id int64) (*models.Module, error)
	CreateModule(ctx context.Context, module *models.Module) error
}

type QuizStore interface {
	GetQuizByModule(ctx context.Context, moduleID int64) (*models.Quiz, error)
	CreateQuiz(ctx context.Context, quiz *models.Quiz) error
}

type LabStore interface {
	GetLabByModule(ctx context.Context, moduleID int64) (*models.SQLLab, error)
	CreateLab(ctx context.Context, lab *models.SQLLab) error
}

type ProgressStore interface {
	ListProgress(ctx context.Context, userID int64) ([]models.UserProgress, error)
	GetProgress(ctx context.Context, userID, moduleID int64) (*models.UserProgress, error)
	// UpsertProgress merges the partial update into the record for
	// (userID, moduleID), creating it with defaults first if absent, and
	// refreshes the last-accessed timestamp. Writes to the same key are
	// linearized: concurrent upserts never yield two records.
	UpsertProgress(ctx context.Context, userID, moduleID int64, update models.ProgressUpdate) (*models.UserProgress, error)
}
