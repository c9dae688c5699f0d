package main

import (
	"context"

	"task-scheduler-api/internal/handlers"
	"task-scheduler-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var taskHandler *handlers.TaskHandler

func init() {
	ctx := context.Background()

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	svc, err := container.TaskService(ctx)
	if err != nil {
		panic("Failed to initialize task store: " + err.Error())
	}

	taskHandler = handlers.NewTaskHandler(svc, container.Logger)
}

func main() {
	awslambda.Start(taskHandler.CreateTaskEvent)
}
