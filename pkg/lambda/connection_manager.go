package lambda

import (
	"context"
	"sync"
	"time"

	"task-scheduler-api/internal/config"
	"task-scheduler-api/pkg/server"
)

// ConnectionManager keeps the dependency container alive across warm
// invocations of a Lambda function
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
	opts        []server.Option
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container from cfg. Calling it again after a
// successful initialization is a no-op; a failed attempt may be retried.
func (cm *ConnectionManager) Initialize(cfg *config.Config, opts ...server.Option) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}

	container, err := server.NewContainer(cfg, opts...)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.opts = opts
	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cfg, opts := cm.config, cm.opts
	cm.mu.Unlock()

	if cfg == nil {
		var err error
		cfg, err = config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
	}
	if err := cm.Initialize(cfg, opts...); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy checks if the connection manager is healthy
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}

	// Check if connection is stale (older than 5 minutes)
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup closes the container. The next GetContainer rebuilds it.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
