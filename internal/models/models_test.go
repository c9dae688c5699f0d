package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	req := &CreateTaskRequest{TaskName: "daily-backup", CronExpression: "0 0 * * *"}

	task := NewTask(req)

	_, err := uuid.Parse(task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "daily-backup", task.TaskName)
	assert.Equal(t, "0 0 * * *", task.CronExpression)
}

func TestNewTask_UniqueIDs(t *testing.T) {
	req := &CreateTaskRequest{TaskName: "same", CronExpression: "* * * * *"}

	first := NewTask(req)
	second := NewTask(req)

	assert.NotEqual(t, first.TaskID, second.TaskID)
}

func TestNewTask_NilRequest(t *testing.T) {
	task := NewTask(nil)

	assert.NotEmpty(t, task.TaskID)
	assert.Empty(t, task.TaskName)
	assert.Empty(t, task.CronExpression)
}

func TestNewListTasksResponse_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(NewListTasksResponse(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"tasks": []}`, string(body))
}

func TestTaskJSONFieldNames(t *testing.T) {
	body, err := json.Marshal(&Task{TaskID: "id", TaskName: "name", CronExpression: "expr"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"task_id":"id","task_name":"name","cron_expression":"expr"}`, string(body))
}

func TestNewPlaceholderObject(t *testing.T) {
	obj := NewPlaceholderObject()

	_, err := uuid.Parse(obj.Key)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderContent, string(obj.Content))
	assert.Equal(t, "text/plain", obj.ContentType)
	assert.NotEqual(t, obj.Key, NewPlaceholderObject().Key)
}
