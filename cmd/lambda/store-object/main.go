package main

import (
	"context"

	"task-scheduler-api/internal/handlers"
	"task-scheduler-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var objectHandler *handlers.ObjectHandler

func init() {
	ctx := context.Background()

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	svc, err := container.ObjectService(ctx)
	if err != nil {
		panic("Failed to initialize object store: " + err.Error())
	}

	objectHandler = handlers.NewObjectHandler(svc)
}

func main() {
	awslambda.Start(objectHandler.StoreObjectEvent)
}
