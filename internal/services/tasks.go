package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/metrics"
	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories"
)

// taskService implements the TaskService interface
type taskService struct {
	repo    repositories.TaskRepository
	metrics metrics.TaskMetrics
	logger  *logrus.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(repo repositories.TaskRepository, m metrics.TaskMetrics, logger *logrus.Logger) TaskService {
	if m == nil {
		m = metrics.Noop{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &taskService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// CreateTask stores a new task under a freshly generated identifier.
// Name and cron expression are stored as given.
func (s *taskService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	task := models.NewTask(req)

	start := time.Now()
	err := s.repo.Create(ctx, task)
	s.metrics.StoreLatency("put_task", time.Since(start))
	if err != nil {
		s.logger.WithError(err).WithField("task_id", task.TaskID).Error("Failed to create task")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.metrics.TaskCreated()
	s.logger.WithFields(logrus.Fields{
		"task_id":         task.TaskID,
		"task_name":       task.TaskName,
		"cron_expression": task.CronExpression,
	}).Info("Task created")

	return task, nil
}

// ListTasks returns every stored task. The result is never nil.
func (s *taskService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	start := time.Now()
	tasks, err := s.repo.List(ctx)
	s.metrics.StoreLatency("scan_tasks", time.Since(start))
	if err != nil {
		s.logger.WithError(err).Error("Failed to list tasks")
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}

	s.metrics.TasksListed(len(tasks))
	s.logger.WithField("count", len(tasks)).Debug("Tasks listed")

	return tasks, nil
}
