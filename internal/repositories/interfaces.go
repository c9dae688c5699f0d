package repositories

import (
	"context"

	"task-scheduler-api/internal/models"
)

// TaskRepository persists task definitions. Records are only ever created
// and read back in bulk.
type TaskRepository interface {
	// Create stores a new task record
	Create(ctx context.Context, task *models.Task) error

	// List returns every stored task, unfiltered and unpaginated
	List(ctx context.Context) ([]*models.Task, error)

	// Close releases connections held by the implementation
	Close() error
}
