package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/adapters/storage"
	"task-scheduler-api/internal/metrics"
	"task-scheduler-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	TaskService   TaskService
	ObjectService ObjectService
}

// ServiceDeps collects what the services are built from. Either store may
// be nil when the process only serves the other handler.
type ServiceDeps struct {
	TaskRepo    repositories.TaskRepository
	ObjectStore storage.ObjectStorage
	Metrics     metrics.TaskMetrics
	Logger      *logrus.Logger
}

// NewServiceContainer creates a new service container
func NewServiceContainer(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil {
		return nil, fmt.Errorf("service dependencies cannot be nil")
	}
	if deps.TaskRepo == nil && deps.ObjectStore == nil {
		return nil, fmt.Errorf("at least one of task repository or object store is required")
	}

	sc := &ServiceContainer{}
	if deps.TaskRepo != nil {
		sc.TaskService = NewTaskService(deps.TaskRepo, deps.Metrics, deps.Logger)
	}
	if deps.ObjectStore != nil {
		sc.ObjectService = NewObjectService(deps.ObjectStore, deps.Metrics, deps.Logger)
	}

	return sc, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.TaskService == nil {
		return fmt.Errorf("task service is nil")
	}
	if sc.ObjectService == nil {
		return fmt.Errorf("object service is nil")
	}
	return nil
}
