package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"task-scheduler-api/internal/config"
	"task-scheduler-api/internal/database"
	"task-scheduler-api/internal/repositories/postgres"

	"github.com/sirupsen/logrus"
)

func main() {
	defaults := config.Default()

	var (
		store       = flag.String("store", "sqlite", "Task store: sqlite or postgres")
		dbPath      = flag.String("db", config.GetEnv("SQLITE_PATH", defaults.TaskStore.SQLitePath), "SQLite database file path")
		databaseURL = flag.String("database-url", config.GetEnv("DATABASE_URL", ""), "Postgres connection string")
		table       = flag.String("table", config.GetEnv("TABLE_NAME", defaults.TaskStore.TableName), "Postgres table name")
		action      = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Setup logger
	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch *store {
	case "sqlite":
		err = runSQLite(logger, *dbPath, *action)
	case "postgres":
		err = runPostgres(logger, *databaseURL, *table, *action)
	default:
		logger.WithField("store", *store).Fatal("Unknown store. Use: sqlite, postgres")
	}
	if err != nil {
		logger.WithError(err).WithField("action", *action).Fatal("Migration failed")
	}

	logger.Info("Migration tool completed successfully")
}

func runSQLite(logger *logrus.Logger, dbPath, action string) error {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute database path: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  action,
	}).Info("Starting migration tool")

	connCfg := database.DefaultConnectionConfig()
	connCfg.DatabasePath = absDBPath
	connCfg.AutoMigrate = false
	connCfg.Logger = logger

	cm := database.NewConnectionManager(connCfg)
	if err := cm.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cm.Close()

	migrationManager := cm.GetMigrationManager()

	switch action {
	case "up":
		return migrationManager.RunMigrations()
	case "down":
		return migrationManager.RollbackMigration()
	case "status":
		status, err := migrationManager.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}
		fmt.Printf("Migration Status:\n")
		fmt.Printf("  Version: %d\n", status.Version)
		fmt.Printf("  Applied: %t\n", status.Applied)
		fmt.Printf("  Dirty: %t\n", status.Dirty)
		return nil
	case "validate":
		if err := migrationManager.ValidateSchema(); err != nil {
			return fmt.Errorf("schema validation failed: %w", err)
		}
		fmt.Println("Schema validation passed successfully")
		return nil
	default:
		return fmt.Errorf("unknown action %q, use: up, down, status, validate", action)
	}
}

// runPostgres only supports creating the table; the schema has a single version
func runPostgres(logger *logrus.Logger, databaseURL, table, action string) error {
	if action != "up" {
		return fmt.Errorf("action %q is not supported for postgres, use: up", action)
	}
	if databaseURL == "" {
		return fmt.Errorf("database url is required")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}

	repo := postgres.New(pool, table, logger)
	defer repo.Close()

	logger.WithField("table", table).Info("Ensuring task table")
	return repo.EnsureSchema(ctx)
}
