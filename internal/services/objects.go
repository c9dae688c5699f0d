package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/adapters/storage"
	"task-scheduler-api/internal/metrics"
	"task-scheduler-api/internal/models"
)

// objectService implements the ObjectService interface
type objectService struct {
	store   storage.ObjectStorage
	metrics metrics.TaskMetrics
	logger  *logrus.Logger
}

// NewObjectService creates a new object service instance
func NewObjectService(store storage.ObjectStorage, m metrics.TaskMetrics, logger *logrus.Logger) ObjectService {
	if m == nil {
		m = metrics.Noop{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &objectService{
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// CreatePlaceholderObject writes the placeholder blob under a new random key
func (s *objectService) CreatePlaceholderObject(ctx context.Context) (*models.StoredObject, error) {
	obj := models.NewPlaceholderObject()
	fields := logrus.Fields{
		"bucket": s.store.Bucket(),
		"key":    obj.Key,
	}

	start := time.Now()
	err := s.store.Put(ctx, obj.Key, obj.Content, &storage.PutOptions{ContentType: obj.ContentType})
	s.metrics.StoreLatency("put_object", time.Since(start))
	if err != nil {
		s.metrics.ObjectWriteFailed()
		s.logger.WithError(err).WithFields(fields).Error("Error creating object")
		return nil, fmt.Errorf("failed to create object: %w", err)
	}

	s.metrics.ObjectWritten()
	s.logger.WithFields(fields).Info("Object created")

	return obj, nil
}
