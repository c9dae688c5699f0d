package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories"
)

// API is the subset of the DynamoDB client used by the task repository
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// TaskRepository stores tasks in a DynamoDB table keyed by task_id
type TaskRepository struct {
	client API
	table  string
	logger *logrus.Logger
}

// NewTaskRepository creates a DynamoDB task repository
func NewTaskRepository(client API, table string, logger *logrus.Logger) *TaskRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &TaskRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Create writes one task item
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	item, err := attributevalue.MarshalMap(task)
	if err != nil {
		return repositories.NewRepositoryError("create", "task", task.TaskID, err)
	}

	start := time.Now()
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	r.logCall("PutItem", start, err)
	if err != nil {
		return repositories.NewRepositoryError("create", "task", task.TaskID, err)
	}

	return nil
}

// List scans the whole table, following LastEvaluatedKey until exhausted
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})

	tasks := []*models.Task{}
	pages := 0
	start := time.Now()
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.logCall("Scan", start, err)
			return nil, repositories.NewRepositoryError("list", "task", "", err)
		}
		pages++

		var batch []*models.Task
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, repositories.NewRepositoryError("list", "task", "", err)
		}
		tasks = append(tasks, batch...)
	}

	r.logger.WithFields(logrus.Fields{
		"table": r.table,
		"pages": pages,
		"count": len(tasks),
	}).Debug("Scan completed")

	return tasks, nil
}

// Close is a no-op; the SDK client holds no closable resources
func (r *TaskRepository) Close() error {
	return nil
}

func (r *TaskRepository) logCall(operation string, start time.Time, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"duration":  time.Since(start),
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("DynamoDB call failed")
	} else {
		r.logger.WithFields(fields).Debug("DynamoDB call executed")
	}
}
