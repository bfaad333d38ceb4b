package service

import (
	"context"
	"errors"
	"testing"

	"course-service/internal/repository"
	"course-service/internal/utils"
)

const testSecret = "test-secret"

func newAuthFixture() *AuthService {
	return NewAuthService(repository.NewMemoryStore(), nil, nil, testSecret)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	user, err := auth.Register(ctx, "student", "password", "Student Name")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected registered user to get an id")
	}
	if user.PasswordHash == "password" {
		t.Error("Expected the password to be stored hashed")
	}

	token, loggedIn, err := auth.Login(ctx, "student", "password")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a token from login")
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Expected login to return user %d, got %d", user.ID, loggedIn.ID)
	}

	claims, err := utils.ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected token for user %d, got %d", user.ID, claims.UserID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, "student", "password", "First"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, err := auth.Register(ctx, "student", "other", "Second")
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestRegisterValidatesFields(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	for _, tc := range []struct{ username, password, name string }{
		{"", "password", "Name"},
		{"student", "", "Name"},
		{"student", "password", ""},
	} {
		if _, err := auth.Register(ctx, tc.username, tc.password, tc.name); !errors.Is(err, ErrValidation) {
			t.Errorf("Register(%q, %q, %q): expected ErrValidation, got %v", tc.username, tc.password, tc.name, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, "student", "password", "Student Name"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, _, err := auth.Login(ctx, "student", "nope")
	if err == nil {
		t.Fatal("Expected login with wrong password to fail")
	}
	if token != "" {
		t.Error("Expected no token on failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	auth := newAuthFixture()

	if _, _, err := auth.Login(context.Background(), "nobody", "password"); err == nil {
		t.Fatal("Expected login for unknown user to fail")
	}
}

func TestRepeatedFailuresLockAccount(t *testing.T) {
	auth := newAuthFixture()
	ctx := context.Background()

	if _, err := auth.Register(ctx, "student", "password", "Student Name"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	for i := 0; i <= maxFailedLogins; i++ {
		auth.recordFailure(ctx, "student")
	}

	if _, _, err := auth.Login(ctx, "student", "password"); err == nil {
		t.Fatal("Expected login on a locked account to fail even with correct credentials")
	}
}
