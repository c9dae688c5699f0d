package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"task-scheduler-api/internal/models"
	"task-scheduler-api/internal/repositories"
)

const uniqueViolation = "23505"

// TaskRepository stores tasks in a Postgres table named after TABLE_NAME
type TaskRepository struct {
	pool   *pgxpool.Pool
	table  string
	logger *logrus.Logger
}

// Connect opens a pool against dsn
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, repositories.ConnectionError(err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, repositories.ConnectionError(err)
	}
	return pool, nil
}

// New creates a Postgres task repository on top of an open pool
func New(pool *pgxpool.Pool, table string, logger *logrus.Logger) *TaskRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &TaskRepository{
		pool:   pool,
		table:  pgx.Identifier{table}.Sanitize(),
		logger: logger,
	}
}

// EnsureSchema creates the task table when missing
func (repo *TaskRepository) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
    CREATE TABLE IF NOT EXISTS %s (
      task_id TEXT PRIMARY KEY,
      task_name TEXT NOT NULL DEFAULT '',
      cron_expression TEXT NOT NULL DEFAULT '',
      created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`, repo.table)
	if _, err := repo.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("create table %s: %w", repo.table, err)
	}
	return nil
}

func (repo *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	q := fmt.Sprintf(`
    INSERT INTO %s (task_id, task_name, cron_expression)
    VALUES ($1, $2, $3)`, repo.table)
	if _, err := repo.pool.Exec(ctx, q, task.TaskID, task.TaskName, task.CronExpression); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repositories.DuplicateError("task", "task_id", task.TaskID)
		}
		repo.logger.WithError(err).WithField("task_id", task.TaskID).Error("Insert task failed")
		return repositories.NewRepositoryError("create", "task", task.TaskID, err)
	}
	return nil
}

func (repo *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	q := fmt.Sprintf(`
    SELECT task_id, task_name, cron_expression
    FROM %s
    ORDER BY created_at, task_id`, repo.table)
	rows, err := repo.pool.Query(ctx, q)
	if err != nil {
		return nil, repositories.NewRepositoryError("list", "task", "", fmt.Errorf("query tasks: %w", err))
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.TaskName, &task.CronExpression); err != nil {
			return nil, repositories.NewRepositoryError("list", "task", "", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "task", "", fmt.Errorf("rows tasks: %w", err))
	}
	return tasks, nil
}

// Close releases the pool
func (repo *TaskRepository) Close() error {
	repo.pool.Close()
	return nil
}
