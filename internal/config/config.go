package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Names used before the table and bucket became configurable.
const (
	DefaultTableName  = "TaskTable"
	DefaultBucketName = "taskstorage"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Log         LogConfig
	TaskStore   TaskStoreConfig
	ObjectStore ObjectStoreConfig
	AWS         AWSConfig
	RateLimit   RateLimitConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=json text"`
}

// TaskStoreConfig selects and configures the task table backend
type TaskStoreConfig struct {
	Type        string `validate:"oneof=dynamodb sqlite postgres memory"`
	TableName   string `validate:"required"`
	SQLitePath  string `validate:"required_if=Type sqlite"`
	DatabaseURL string `validate:"required_if=Type postgres"`
}

// ObjectStoreConfig selects and configures the blob store backend
type ObjectStoreConfig struct {
	Type      string `validate:"oneof=s3 local mock"`
	Bucket    string `validate:"required"`
	LocalPath string `validate:"required_if=Type local"`
}

// AWSConfig holds settings shared by the AWS SDK clients
type AWSConfig struct {
	Region   string `validate:"required"`
	Endpoint string // Optional override, e.g. LocalStack
}

// RateLimitConfig holds limits for the local API server
type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"gt=0"`
	Burst             int     `validate:"gt=0"`
}

// Default returns the configuration with the legacy hardcoded names.
func Default() *Config {
	return &Config{
		Environment: "development",
		Port:        "8081",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		TaskStore: TaskStoreConfig{
			Type:       "dynamodb",
			TableName:  DefaultTableName,
			SQLitePath: "./data/tasks.db",
		},
		ObjectStore: ObjectStoreConfig{
			Type:      "s3",
			Bucket:    DefaultBucketName,
			LocalPath: "./data/objects",
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	def := Default()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", def.Environment)
	v.SetDefault("PORT", def.Port)
	v.SetDefault("LOG_LEVEL", def.Log.Level)
	v.SetDefault("LOG_FORMAT", def.Log.Format)
	v.SetDefault("TASK_STORE_TYPE", def.TaskStore.Type)
	v.SetDefault("TABLE_NAME", def.TaskStore.TableName)
	v.SetDefault("SQLITE_PATH", def.TaskStore.SQLitePath)
	v.SetDefault("OBJECT_STORE_TYPE", def.ObjectStore.Type)
	v.SetDefault("BUCKET_NAME", def.ObjectStore.Bucket)
	v.SetDefault("STORAGE_LOCAL_PATH", def.ObjectStore.LocalPath)
	v.SetDefault("AWS_REGION", def.AWS.Region)
	v.SetDefault("RATE_LIMIT_RPS", def.RateLimit.RequestsPerSecond)
	v.SetDefault("RATE_LIMIT_BURST", def.RateLimit.Burst)

	cfg := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		TaskStore: TaskStoreConfig{
			Type:        strings.ToLower(v.GetString("TASK_STORE_TYPE")),
			TableName:   v.GetString("TABLE_NAME"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
			DatabaseURL: v.GetString("DATABASE_URL"),
		},
		ObjectStore: ObjectStoreConfig{
			Type:      strings.ToLower(v.GetString("OBJECT_STORE_TYPE")),
			Bucket:    v.GetString("BUCKET_NAME"),
			LocalPath: v.GetString("STORAGE_LOCAL_PATH"),
		},
		AWS: AWSConfig{
			Region:   v.GetString("AWS_REGION"),
			Endpoint: v.GetString("AWS_ENDPOINT_URL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for missing or inconsistent values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds a logrus logger from the log configuration
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if c.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
