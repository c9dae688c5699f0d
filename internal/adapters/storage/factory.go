package storage

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// StorageType represents the type of storage implementation
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
	StorageTypeMock  StorageType = "mock"
)

// Factory creates ObjectStorage instances based on configuration
type Factory struct {
	s3Client S3API
	logger   *logrus.Logger
}

// NewFactory creates a new storage factory. s3Client may be nil when
// only local or mock storage will be requested.
func NewFactory(s3Client S3API, logger *logrus.Logger) *Factory {
	if logger == nil {
		logger = logrus.New()
	}
	return &Factory{
		s3Client: s3Client,
		logger:   logger,
	}
}

// Create creates an ObjectStorage instance based on the provided configuration
func (f *Factory) Create(config *StorageConfig) (ObjectStorage, error) {
	if config == nil {
		return nil, fmt.Errorf("storage config is required")
	}
	if config.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	var storage ObjectStorage
	var err error

	switch StorageType(strings.ToLower(config.Type)) {
	case StorageTypeLocal:
		storage, err = f.createLocalStorage(config)
	case StorageTypeS3:
		storage, err = f.createS3Storage(config)
	case StorageTypeMock:
		storage = NewMockObjectStorage(config.Bucket)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s storage: %w", config.Type, err)
	}

	f.logger.WithFields(logrus.Fields{
		"type":   config.Type,
		"bucket": config.Bucket,
	}).Debug("Object storage created")

	return storage, nil
}

// createLocalStorage creates a local filesystem storage implementation
func (f *Factory) createLocalStorage(config *StorageConfig) (ObjectStorage, error) {
	basePath := config.BasePath
	if basePath == "" {
		basePath = "./data/objects"
	}
	return NewLocalObjectStorage(basePath, config.Bucket)
}

// createS3Storage wraps the injected S3 client
func (f *Factory) createS3Storage(config *StorageConfig) (ObjectStorage, error) {
	if f.s3Client == nil {
		return nil, fmt.Errorf("s3 client is not configured")
	}
	return NewS3ObjectStorage(f.s3Client, config.Bucket, f.logger), nil
}
