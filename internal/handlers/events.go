package handlers

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"task-scheduler-api/pkg/lambda"
)

// CreateTaskEvent is the Lambda entrypoint for task creation. Malformed
// bodies and storage failures fail the invocation.
func (h *TaskHandler) CreateTaskEvent(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := lambda.FromAPIGateway(event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	resp, err := h.HandleCreate(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return resp.ToAPIGateway(), nil
}

// ListTasksEvent is the Lambda entrypoint for listing tasks
func (h *TaskHandler) ListTasksEvent(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := lambda.FromAPIGateway(event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	resp, err := h.HandleList(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return resp.ToAPIGateway(), nil
}

// StoreObjectEvent is the Lambda entrypoint for the storage writer. Any
// trigger payload (API Gateway, EventBridge schedule) is accepted and
// ignored.
func (h *ObjectHandler) StoreObjectEvent(ctx context.Context, _ json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return h.HandleStore(ctx).ToAPIGateway(), nil
}
