package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-scheduler-api/internal/adapters/storage"
	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories/memory"
	"task-scheduler-api/internal/services"
)

func TestCreateAndListTaskEvents(t *testing.T) {
	h := NewTaskHandler(services.NewTaskService(memory.NewTaskRepository(), nil, nil), nil)
	ctx := context.Background()

	resp, err := h.CreateTaskEvent(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"task_name":"nightly","cron_expression":"0 2 * * *"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var created models.CreateTaskResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &created))
	assert.NotEmpty(t, created.TaskID)

	resp, err = h.ListTasksEvent(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)

	var listed models.ListTasksResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &listed))
	require.Len(t, listed.Tasks, 1)
	assert.Equal(t, created.TaskID, listed.Tasks[0].TaskID)
	assert.Equal(t, "0 2 * * *", listed.Tasks[0].CronExpression)
}

func TestCreateTaskEvent_Base64Body(t *testing.T) {
	h := NewTaskHandler(services.NewTaskService(memory.NewTaskRepository(), nil, nil), nil)

	resp, err := h.CreateTaskEvent(context.Background(), events.APIGatewayProxyRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"task_name":"encoded"}`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTaskEvents_Faults(t *testing.T) {
	ctx := context.Background()

	h := NewTaskHandler(services.NewTaskService(memory.NewTaskRepository(), nil, nil), nil)
	_, err := h.CreateTaskEvent(ctx, events.APIGatewayProxyRequest{Body: `{"task_name":`})
	assert.ErrorIs(t, err, ErrInvalidRequestBody)

	_, err = h.CreateTaskEvent(ctx, events.APIGatewayProxyRequest{Body: "***", IsBase64Encoded: true})
	assert.Error(t, err)

	backendErr := errors.New("ProvisionedThroughputExceededException")
	h = NewTaskHandler(&brokenTaskService{err: backendErr}, nil)
	_, err = h.CreateTaskEvent(ctx, events.APIGatewayProxyRequest{Body: `{}`})
	assert.ErrorIs(t, err, backendErr)
	_, err = h.ListTasksEvent(ctx, events.APIGatewayProxyRequest{})
	assert.ErrorIs(t, err, backendErr)
}

func TestStoreObjectEvent(t *testing.T) {
	store := storage.NewMockObjectStorage("taskstorage")
	h := NewObjectHandler(services.NewObjectService(store, nil, nil))
	ctx := context.Background()

	payloads := []json.RawMessage{
		nil,
		json.RawMessage(`{"source":"aws.events","detail-type":"Scheduled Event"}`),
		json.RawMessage(`{"httpMethod":"POST","body":"ignored"}`),
	}
	for _, payload := range payloads {
		resp, err := h.StoreObjectEvent(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"message": "Object created successfully in S3."}`, resp.Body)
	}
	assert.Len(t, store.Keys(), len(payloads))

	store.FailWith = errors.New("NoSuchBucket")
	resp, err := h.StoreObjectEvent(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Failed to create object in S3."}`, resp.Body)
}
