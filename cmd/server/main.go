package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-scheduler-api/internal/config"
	"task-scheduler-api/internal/handlers"
	"task-scheduler-api/internal/metrics"
	"task-scheduler-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger := cfg.NewLogger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize dependencies
	container, err := server.NewContainer(cfg,
		server.WithLogger(logger),
		server.WithMetrics(metrics.NewPromMetrics(registry)),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	svc, err := container.Services(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Failed to open backends")
	}
	if err := svc.Validate(); err != nil {
		logger.WithError(err).Fatal("Incomplete service container")
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger, cfg.RateLimit)
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		TaskService:   svc.TaskService,
		ObjectService: svc.ObjectService,
		Logger:        logger,
		Gatherer:      registry,
		HealthCheck:   container.HealthCheck,
		Backends: map[string]string{
			"task_store":   cfg.TaskStore.Type,
			"object_store": cfg.ObjectStore.Type,
		},
		EnableSwagger: !cfg.IsProduction(),
	})

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"task_store":   cfg.TaskStore.Type,
		"table":        cfg.TaskStore.TableName,
		"object_store": cfg.ObjectStore.Type,
		"bucket":       cfg.ObjectStore.Bucket,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
