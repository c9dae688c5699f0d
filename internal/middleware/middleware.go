package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// CORS middleware for handling Cross-Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ErrorHandler turns errors attached with c.Error into JSON responses.
// Bind errors become 400; everything else is a 500 without details.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()
		requestID := c.GetString(RequestIDKey)

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Error("Request error")

		switch {
		case err.IsType(gin.ErrorTypeBind):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:     "Invalid request body",
				Message:   err.Error(),
				RequestID: requestID,
			})
		case errors.Is(err.Err, context.Canceled):
			c.Status(499)
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:     "Internal server error",
				RequestID: requestID,
			})
		}
	}
}

// Recovery converts panics into a 500 and logs them
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal server error",
			RequestID: c.GetString(RequestIDKey),
		})
	})
}
