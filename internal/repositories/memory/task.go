package memory

import (
	"context"
	"sync"

	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories"
)

// TaskRepository keeps tasks in process memory, in insertion order
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []*models.Task
	ids   map[string]struct{}
}

// NewTaskRepository creates an empty in-memory task repository
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		ids: make(map[string]struct{}),
	}
}

// Create stores a copy of the task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[task.TaskID]; exists {
		return repositories.DuplicateError("task", "task_id", task.TaskID)
	}

	stored := *task
	r.tasks = append(r.tasks, &stored)
	r.ids[task.TaskID] = struct{}{}
	return nil
}

// List returns copies of all stored tasks
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	return tasks, nil
}

// Close implements TaskRepository.Close
func (r *TaskRepository) Close() error {
	return nil
}
