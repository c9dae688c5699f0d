package config

import (
	"os"
	"path/filepath"
	"sync"
)

// lambdaScratchDir is the only writable directory inside a Lambda sandbox.
const lambdaScratchDir = "/tmp"

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Stage        string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = detectServerless()
	})
	return serverlessConfig
}

func detectServerless() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// AdaptConfigForServerless relocates file-backed stores into the Lambda
// scratch directory. Managed backends are left untouched.
func AdaptConfigForServerless(sc *ServerlessConfig, cfg *Config) *Config {
	if sc == nil || !sc.IsLambda {
		return cfg
	}

	if cfg.TaskStore.Type == "sqlite" && !filepath.IsAbs(cfg.TaskStore.SQLitePath) {
		cfg.TaskStore.SQLitePath = filepath.Join(lambdaScratchDir, filepath.Base(cfg.TaskStore.SQLitePath))
	}

	if cfg.ObjectStore.Type == "local" && !filepath.IsAbs(cfg.ObjectStore.LocalPath) {
		cfg.ObjectStore.LocalPath = filepath.Join(lambdaScratchDir, filepath.Base(cfg.ObjectStore.LocalPath))
	}

	return cfg
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(GetServerlessConfig(), cfg), nil
}
