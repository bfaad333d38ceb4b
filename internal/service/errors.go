package service

import (
	"errors"

	"course-service/internal/repository"
)

var (
	// ErrNotFound reports a referenced module, quiz, lab or user that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a malformed request shape, such as an answer
	// slice whose length does not match the question count. Wrong answer
	// values are never a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate reports a uniqueness collision, such as a username that
	// is already registered.
	ErrDuplicate = repository.ErrDuplicateKey
)
