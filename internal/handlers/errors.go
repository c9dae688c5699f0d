package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"task-scheduler-api/internal/models"
)

// ErrInvalidRequestBody is returned when a request body is not valid JSON
var ErrInvalidRequestBody = errors.New("invalid request body")

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// decodeCreateTaskRequest parses a task creation body. An empty body is
// treated as an empty object and unknown fields are ignored.
func decodeCreateTaskRequest(body []byte) (*models.CreateTaskRequest, error) {
	req := &models.CreateTaskRequest{}
	if len(body) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(body, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	return req, nil
}
