package models

import (
	"time"
)

// Health statuses reported by /health
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Backends  map[string]string `json:"backends"`
	Error     string            `json:"error,omitempty"`
}
