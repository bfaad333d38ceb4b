package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"course-service/internal/event"
	"course-service/internal/models"
	"course-service/internal/repository"
	"course-service/internal/utils"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	lockKeyPrefix    = "course-service-lock-user-"
	maxFailedLogins  = 10
	lockoutDuration  = 10 * time.Minute
	suspiciousWindow = time.Second
)

type failedLogin struct {
	lastFailedAt time.Time
	count        int
	lockedUntil  time.Time
}

type AuthService struct {
	Users     repository.UserStore
	Redis     *redis.Client
	Publisher event.Publisher
	JWTSecret string

	mu           sync.Mutex
	failedLogins map[string]*failedLogin
}

func NewAuthService(users repository.UserStore, redisClient *redis.Client, publisher event.Publisher, jwtSecret string) *AuthService {
	return &AuthService{
		Users:        users,
		Redis:        redisClient,
		Publisher:    publisher,
		JWTSecret:    jwtSecret,
		failedLogins: make(map[string]*failedLogin),
	}
}

func (s *AuthService) Register(ctx context.Context, username, password, name string) (*models.User, error) {
	if username == "" || password == "" || name == "" {
		return nil, fmt.Errorf("username, password and name are required: %w", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user %q: %w", username, err)
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish("user.registered", map[string]interface{}{
			"userId":   user.ID,
			"username": user.Username,
		}); err != nil {
			log.Printf("Warning: failed to publish user.registered event: %v", err)
		}
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Repeated
// failures, or failures arriving faster than a human could type, lock the
// account for a while.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if s.isLocked(ctx, username) {
		return "", nil, fmt.Errorf("user %q is temporarily locked", username)
	}

	user, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("finding user %q: %w", username, err)
	}
	if user == nil {
		return "", nil, fmt.Errorf("unknown username %q", username)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, fmt.Errorf("wrong password for %q", username)
	}
	s.clearFailures(username)

	token, err := utils.GenerateJWT(user.ID, s.JWTSecret)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.Users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

func (s *AuthService) isLocked(ctx context.Context, username string) bool {
	if s.Redis != nil {
		locked, err := s.Redis.Get(ctx, lockKeyPrefix+username).Int64()
		if err == nil && locked != 0 {
			return true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.failedLogins[username]
	return ok && time.Now().Before(attempt.lockedUntil)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	now := time.Now()

	s.mu.Lock()
	attempt, ok := s.failedLogins[username]
	if !ok {
		attempt = &failedLogin{}
		s.failedLogins[username] = attempt
	}
	lock := false
	if now.Sub(attempt.lastFailedAt) < suspiciousWindow {
		log.Printf("WARN: suspicious login activity for user %q, instant lock activated", username)
		lock = true
	}
	attempt.lastFailedAt = now
	attempt.count++
	if attempt.count > maxFailedLogins {
		log.Printf("User %q failed login %d times, locked for %s", username, attempt.count, lockoutDuration)
		lock = true
	}
	if lock {
		attempt.lockedUntil = now.Add(lockoutDuration)
	}
	s.mu.Unlock()

	if lock && s.Redis != nil {
		if err := s.Redis.Set(ctx, lockKeyPrefix+username, now.UnixMilli(), lockoutDuration).Err(); err != nil {
			log.Printf("Warning: failed to store lock for %q in redis: %v", username, err)
		}
	}
}

func (s *AuthService) clearFailures(username string) {
	s.mu.Lock()
	delete(s.failedLogins, username)
	s.mu.Unlock()
}
