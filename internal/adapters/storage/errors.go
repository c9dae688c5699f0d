package storage

import (
	"errors"
	"fmt"
)

// Common storage error types
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidKey         = errors.New("invalid storage key")
	ErrStorageUnavailable = errors.New("storage service unavailable")
	ErrPermissionDenied   = errors.New("permission denied")
)

// StorageError represents a storage operation error with additional context
type StorageError struct {
	Op  string // Operation that failed (e.g., "Put", "Exists")
	Key string // Storage key involved in the operation
	Err error  // Underlying error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s operation failed for key '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s operation failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// IsInvalidKey returns true if the error was caused by a rejected key
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}
