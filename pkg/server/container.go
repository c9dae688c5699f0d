package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/adapters/storage"
	"task-scheduler-api/internal/awsclient"
	"task-scheduler-api/internal/config"
	"task-scheduler-api/internal/database"
	"task-scheduler-api/internal/metrics"
	"task-scheduler-api/internal/repositories"
	"task-scheduler-api/internal/repositories/dynamo"
	"task-scheduler-api/internal/repositories/memory"
	"task-scheduler-api/internal/repositories/postgres"
	"task-scheduler-api/internal/repositories/sqlite"
	"task-scheduler-api/internal/services"
)

// Container holds all application dependencies. Backends are opened on
// first use and then shared, so a function that only writes objects never
// touches the task table.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Metrics metrics.TaskMetrics

	mu          sync.Mutex
	awsCfg      *aws.Config
	db          *database.ConnectionManager
	taskRepo    repositories.TaskRepository
	objectStore storage.ObjectStorage
}

// Option customizes a Container
type Option func(*Container)

// WithLogger overrides the logger built from configuration
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) { c.Logger = logger }
}

// WithMetrics sets the metrics sink; the default discards observations
func WithMetrics(m metrics.TaskMetrics) Option {
	return func(c *Container) { c.Metrics = m }
}

// WithTaskRepository injects a task repository instead of building one
func WithTaskRepository(repo repositories.TaskRepository) Option {
	return func(c *Container) { c.taskRepo = repo }
}

// WithObjectStorage injects an object store instead of building one
func WithObjectStorage(store storage.ObjectStorage) Option {
	return func(c *Container) { c.objectStore = store }
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:  cfg,
		Metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = cfg.NewLogger()
	}

	return c, nil
}

// TaskService returns the task service, opening the task table if needed
func (c *Container) TaskService(ctx context.Context) (services.TaskService, error) {
	repo, err := c.taskRepository(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewTaskService(repo, c.Metrics, c.Logger), nil
}

// ObjectService returns the object service, opening the object store if needed
func (c *Container) ObjectService(ctx context.Context) (services.ObjectService, error) {
	store, err := c.objectStorage(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewObjectService(store, c.Metrics, c.Logger), nil
}

// Services opens both backends and returns every service
func (c *Container) Services(ctx context.Context) (*services.ServiceContainer, error) {
	repo, err := c.taskRepository(ctx)
	if err != nil {
		return nil, err
	}
	store, err := c.objectStorage(ctx)
	if err != nil {
		return nil, err
	}

	return services.NewServiceContainer(&services.ServiceDeps{
		TaskRepo:    repo,
		ObjectStore: store,
		Metrics:     c.Metrics,
		Logger:      c.Logger,
	})
}

// healthCheckKey is looked up, never written, to test the object store
const healthCheckKey = ".health"

// HealthCheck verifies the opened backends are reachable
func (c *Container) HealthCheck() error {
	c.mu.Lock()
	db, store := c.db, c.objectStore
	c.mu.Unlock()

	if db != nil {
		if err := db.HealthCheck(); err != nil {
			return err
		}
	}

	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := store.Exists(ctx, healthCheckKey); err != nil {
			return fmt.Errorf("object store %q: %w", store.Bucket(), err)
		}
	}

	return nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.taskRepo != nil {
		if err := c.taskRepo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close task repository: %w", err))
		}
		c.taskRepo = nil
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		c.db = nil
	}
	if c.objectStore != nil {
		if err := c.objectStore.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close object storage: %w", err))
		}
		c.objectStore = nil
	}

	return errors.Join(errs...)
}

func (c *Container) taskRepository(ctx context.Context) (repositories.TaskRepository, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.taskRepo != nil {
		return c.taskRepo, nil
	}

	ts := c.Config.TaskStore
	var repo repositories.TaskRepository

	switch ts.Type {
	case "dynamodb":
		awsCfg, err := c.loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		client := awsclient.NewDynamoDB(awsCfg, c.Config.AWS.Endpoint)
		repo = dynamo.NewTaskRepository(client, ts.TableName, c.Logger)

	case "sqlite":
		connCfg := database.DefaultConnectionConfig()
		connCfg.DatabasePath = ts.SQLitePath
		connCfg.Logger = c.Logger

		cm := database.NewConnectionManager(connCfg)
		if err := cm.Connect(); err != nil {
			return nil, fmt.Errorf("failed to open task database: %w", err)
		}
		c.db = cm
		repo = sqlite.NewTaskRepository(cm.GetDB(), c.Logger)

	case "postgres":
		pool, err := postgres.Connect(ctx, ts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		pg := postgres.New(pool, ts.TableName, c.Logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		repo = pg

	case "memory":
		repo = memory.NewTaskRepository()

	default:
		return nil, fmt.Errorf("%w: task store %q", repositories.ErrUnsupported, ts.Type)
	}

	c.Logger.WithFields(logrus.Fields{
		"type":  ts.Type,
		"table": ts.TableName,
	}).Info("Task store initialized")

	c.taskRepo = repo
	return repo, nil
}

func (c *Container) objectStorage(ctx context.Context) (storage.ObjectStorage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.objectStore != nil {
		return c.objectStore, nil
	}

	objCfg := c.Config.ObjectStore

	var s3Client storage.S3API
	if objCfg.Type == string(storage.StorageTypeS3) {
		awsCfg, err := c.loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		s3Client = awsclient.NewS3(awsCfg, c.Config.AWS.Endpoint)
	}

	store, err := storage.NewFactory(s3Client, c.Logger).Create(&storage.StorageConfig{
		Type:     objCfg.Type,
		BasePath: objCfg.LocalPath,
		Bucket:   objCfg.Bucket,
	})
	if err != nil {
		return nil, err
	}

	c.Logger.WithFields(logrus.Fields{
		"type":   objCfg.Type,
		"bucket": objCfg.Bucket,
	}).Info("Object store initialized")

	c.objectStore = store
	return store, nil
}

// loadAWSConfig resolves the SDK configuration once. Callers hold c.mu.
func (c *Container) loadAWSConfig(ctx context.Context) (aws.Config, error) {
	if c.awsCfg != nil {
		return *c.awsCfg, nil
	}

	awsCfg, err := awsclient.LoadConfig(ctx, c.Config.AWS)
	if err != nil {
		return aws.Config{}, err
	}
	c.awsCfg = &awsCfg
	return awsCfg, nil
}
