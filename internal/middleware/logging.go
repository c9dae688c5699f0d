package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// maxLoggedBody caps request bodies copied into debug logs
const maxLoggedBody = 10 * 1024

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger logs one entry per request with its outcome
func StructuredLogger(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		var requestBody []byte
		if logger.IsLevelEnabled(logrus.DebugLevel) && c.Request.Body != nil &&
			c.Request.ContentLength >= 0 && c.Request.ContentLength < maxLoggedBody {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := logrus.Fields{
			"request_id":    c.GetString(RequestIDKey),
			"method":        c.Request.Method,
			"path":          path,
			"status_code":   status,
			"latency_ms":    float64(latency.Nanoseconds()) / 1000000,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
			"response_size": c.Writer.Size(),
		}

		if raw != "" {
			fields["query"] = raw
		}

		if len(requestBody) > 0 {
			fields["request_body"] = string(requestBody)
		}

		entry := logger.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request completed")
		}
	}
}

// PerformanceMonitor logs requests slower than slowThreshold
func PerformanceMonitor(logger *logrus.Logger, slowThreshold time.Duration) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if slowThreshold == 0 {
		slowThreshold = 1 * time.Second
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		if latency > slowThreshold {
			logger.WithFields(logrus.Fields{
				"performance_alert": true,
				"request_id":        c.GetString(RequestIDKey),
				"method":            c.Request.Method,
				"path":              c.Request.URL.Path,
				"latency_ms":        float64(latency.Nanoseconds()) / 1000000,
				"threshold_ms":      float64(slowThreshold.Nanoseconds()) / 1000000,
				"status_code":       c.Writer.Status(),
			}).Warn("Slow request detected")
		}
	}
}
