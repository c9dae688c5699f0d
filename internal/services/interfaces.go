package services

import (
	"context"

	"task-scheduler-api/internal/models"
)

// TaskService defines the task creation and listing operations
type TaskService interface {
	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
}

// ObjectService writes placeholder objects to the object store
type ObjectService interface {
	CreatePlaceholderObject(ctx context.Context) (*models.StoredObject, error)
}
