package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-scheduler-api/internal/config"
	"task-scheduler-api/internal/middleware"
	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TaskService   services.TaskService
	ObjectService services.ObjectService
	Logger        *logrus.Logger

	// Gatherer backs /metrics; the route is skipped when nil
	Gatherer prometheus.Gatherer

	// HealthCheck reports backend reachability for /health
	HealthCheck func() error

	// Backends names the configured stores, e.g. {"task_store": "sqlite"}
	Backends map[string]string

	EnableSwagger bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	taskHandler := NewTaskHandler(config.TaskService, config.Logger)
	objectHandler := NewObjectHandler(config.ObjectService)

	if config.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if config.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		health := models.HealthCheck{
			Status:    models.HealthStatusHealthy,
			Timestamp: time.Now().UTC(),
			Service:   "task-scheduler-api",
			Backends:  config.Backends,
		}
		if config.HealthCheck != nil {
			if err := config.HealthCheck(); err != nil {
				health.Status = models.HealthStatusUnhealthy
				health.Error = err.Error()
				c.JSON(http.StatusServiceUnavailable, health)
				return
			}
		}
		c.JSON(http.StatusOK, health)
	})

	v1 := router.Group("/api/v1")
	{
		tasks := v1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
		}

		v1.POST("/objects", objectHandler.CreateObject)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger, limits config.RateLimitConfig) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Request size limit (1MB)
	router.Use(middleware.RequestSizeLimit(1 << 20))

	router.Use(middleware.RateLimiter(logger, limits.RequestsPerSecond, limits.Burst))
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PerformanceMonitor(logger, time.Second))
	router.Use(middleware.ErrorHandler(logger))
}
