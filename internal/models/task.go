package models

import (
	"github.com/google/uuid"
)

// Task is a persisted task definition. The cron expression is stored
// verbatim and never evaluated.
type Task struct {
	TaskID         string `json:"task_id" dynamodbav:"task_id" db:"task_id"`
	TaskName       string `json:"task_name" dynamodbav:"task_name" db:"task_name"`
	CronExpression string `json:"cron_expression" dynamodbav:"cron_expression" db:"cron_expression"`
}

// CreateTaskRequest is the body accepted by the task creator. Both fields
// are optional and unvalidated.
type CreateTaskRequest struct {
	TaskName       string `json:"task_name"`
	CronExpression string `json:"cron_expression"`
}

// NewTask creates a task with a freshly generated identifier
func NewTask(req *CreateTaskRequest) *Task {
	task := &Task{
		TaskID: uuid.New().String(),
	}
	if req != nil {
		task.TaskName = req.TaskName
		task.CronExpression = req.CronExpression
	}
	return task
}

// CreateTaskResponse is returned after a task has been stored
type CreateTaskResponse struct {
	TaskID string `json:"task_id"`
}

// ListTasksResponse wraps every stored task
type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

// NewListTasksResponse never yields a null tasks array
func NewListTasksResponse(tasks []*Task) *ListTasksResponse {
	if tasks == nil {
		tasks = []*Task{}
	}
	return &ListTasksResponse{Tasks: tasks}
}
