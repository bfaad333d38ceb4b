package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"course-service/internal/models"
)

// MemoryStore keeps every collection in process memory. It backs the
// STORAGE=memory mode and the test suite. One mutex guards all maps; every
// write takes it, so progress upserts for a key are linearized the same way
// the Mongo implementation linearizes them.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[int64]*models.User
	modules  map[int64]*models.Module
	quizzes  map[int64]*models.Quiz
	labs     map[int64]*models.SQLLab
	progress map[string]*models.UserProgress

	nextUserID     int64
	nextModuleID   int64
	nextQuizID     int64
	nextLabID      int64
	nextProgressID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          make(map[int64]*models.User),
		modules:        make(map[int64]*models.Module),
		quizzes:        make(map[int64]*models.Quiz),
		labs:           make(map[int64]*models.SQLLab),
		progress:       make(map[string]*models.UserProgress),
		nextUserID:     1,
		nextModuleID:   1,
		nextQuizID:     1,
		nextLabID:      1,
		nextProgressID: 1,
	}
}

func progressKey(userID, moduleID int64) string {
	return fmt.Sprintf("%d-%d", userID, moduleID)
}

func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrDuplicateKey
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemoryStore) ListModules(ctx context.Context) ([]models.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	modules := make([]models.Module, 0, len(s.modules))
	for _, module := range s.modules {
		modules = append(modules, *module)
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].OrderIndex < modules[j].OrderIndex
	})
	return modules, nil
}

func (s *MemoryStore) GetModule(ctx context.Context, id int64) (*models.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	module, ok := s.modules[id]
	if !ok {
		return nil, nil
	}
	copied := *module
	return &copied, nil
}

func (s *MemoryStore) CreateModule(ctx context.Context, module *models.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.modules {
		if existing.OrderIndex == module.OrderIndex {
			return ErrDuplicateKey
		}
	}
	module.ID = s.nextModuleID
	s.nextModuleID++
	copied := *module
	s.modules[module.ID] = &copied
	return nil
}

func (s *MemoryStore) GetQuizByModule(ctx context.Context, moduleID int64) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, quiz := range s.quizzes {
		if quiz.ModuleID == moduleID {
			copied := *quiz
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz.ID = s.nextQuizID
	s.nextQuizID++
	copied := *quiz
	s.quizzes[quiz.ID] = &copied
	return nil
}

func (s *MemoryStore) GetLabByModule(ctx context.Context, moduleID int64) (*models.SQLLab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lab := range s.labs {
		if lab.ModuleID == moduleID {
			copied := *lab
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateLab(ctx context.Context, lab *models.SQLLab) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lab.ID = s.nextLabID
	s.nextLabID++
	copied := *lab
	s.labs[lab.ID] = &copied
	return nil
}

func (s *MemoryStore) ListProgress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.UserProgress
	for _, progress := range s.progress {
		if progress.UserID == userID {
			records = append(records, *progress)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ModuleID < records[j].ModuleID
	})
	return records, nil
}

func (s *MemoryStore) GetProgress(ctx context.Context, userID, moduleID int64) (*models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	progress, ok := s.progress[progressKey(userID, moduleID)]
	if !ok {
		return nil, nil
	}
	copied := *progress
	return &copied, nil
}

func (s *MemoryStore) UpsertProgress(ctx context.Context, userID, moduleID int64, update models.ProgressUpdate) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey(userID, moduleID)
	progress, ok := s.progress[key]
	if !ok {
		progress = &models.UserProgress{
			ID:       s.nextProgressID,
			UserID:   userID,
			ModuleID: moduleID,
		}
		s.nextProgressID++
		s.progress[key] = progress
	}

	if update.Completed != nil {
		progress.Completed = *update.Completed
	}
	if update.QuizScore != nil {
		score := *update.QuizScore
		progress.QuizScore = &score
	}
	if update.LabCompleted != nil {
		progress.LabCompleted = *update.LabCompleted
	}
	progress.LastAccessed = time.Now()

	copied := *progress
	return &copied, nil
}
