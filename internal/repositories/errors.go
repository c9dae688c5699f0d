package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrDuplicateEntry is returned when trying to create a duplicate entity
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrConnection is returned when the backend connection fails
	ErrConnection = errors.New("database connection error")

	// ErrUnsupported is returned when an unsupported backend is requested
	ErrUnsupported = errors.New("unsupported operation")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	ID      string // Entity ID (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// DuplicateError creates a "duplicate entry" repository error
func DuplicateError(entity, field, value string) *RepositoryError {
	return &RepositoryError{
		Op:      "create",
		Entity:  entity,
		ID:      value,
		Err:     ErrDuplicateEntry,
		Message: fmt.Sprintf("%s with %s '%s' already exists", entity, field, value),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     errors.Join(ErrConnection, err),
		Message: fmt.Sprintf("database connection failed: %v", err),
	}
}

// IsDuplicate checks if an error is a "duplicate entry" error
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
