package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/database"
	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories"
)

// TaskRepository implements repositories.TaskRepository for SQLite. The
// schema comes from the migrations in internal/database.
type TaskRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// NewTaskRepository creates a new SQLite task repository
func NewTaskRepository(db *sql.DB, logger *logrus.Logger) *TaskRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &TaskRepository{
		db:     db,
		table:  database.TasksTable,
		logger: logger,
	}
}

// Create inserts a task row
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (task_id, task_name, cron_expression) VALUES (?, ?, ?)`

	err := r.executeExec(ctx, "create", query, task.TaskID, task.TaskName, task.CronExpression)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repositories.DuplicateError("task", "task_id", task.TaskID)
		}
		return repositories.NewRepositoryError("create", "task", task.TaskID, err)
	}

	return nil
}

// List returns all tasks in insertion order
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT task_id, task_name, cron_expression FROM tasks ORDER BY rowid`

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query)
	r.logQuery("list", query, nil, time.Since(start), err)
	if err != nil {
		return nil, repositories.NewRepositoryError("list", "task", "", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.TaskID, &task.TaskName, &task.CronExpression); err != nil {
			return nil, repositories.NewRepositoryError("list", "task", "", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "task", "", err)
	}

	return tasks, nil
}

// Close is a no-op; the connection is owned by database.ConnectionManager
func (r *TaskRepository) Close() error {
	return nil
}

func (r *TaskRepository) executeExec(ctx context.Context, operation, query string, args ...interface{}) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, args...)
	r.logQuery(operation, query, args, time.Since(start), err)
	return err
}

// logQuery logs a query with its execution time
func (r *TaskRepository) logQuery(operation string, query string, args []interface{}, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"args":      args,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}
