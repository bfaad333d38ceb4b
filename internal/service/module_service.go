package service

import (
	"context"
	"fmt"

	"course-service/internal/models"
	"course-service/internal/repository"
)

type ModuleService struct {
	Store repository.ModuleStore
}

func NewModuleService(store repository.ModuleStore) *ModuleService {
	return &ModuleService{Store: store}
}

// ListModules returns every module sorted ascending by order index.
func (s *ModuleService) ListModules(ctx context.Context) ([]models.Module, error) {
	return s.Store.ListModules(ctx)
}

func (s *ModuleService) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	module, err := s.Store.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, fmt.Errorf("module %d: %w", id, ErrNotFound)
	}
	return module, nil
}
