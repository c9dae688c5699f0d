package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabasePath    string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DatabasePath:    "./data/tasks.db",
		MaxOpenConns:    1, // SQLite works best with single connection
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		AutoMigrate:     true,
		Logger:          logrus.New(),
	}
}

// ConnectionManager manages the SQLite connection backing the task table
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ConnectionManager{
		config: config,
	}
}

// Connect opens the database and, when enabled, applies pending migrations
func (cm *ConnectionManager) Connect() error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	dbPath, err := filepath.Abs(cm.config.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cm.config.MaxOpenConns)
	db.SetMaxIdleConns(cm.config.MaxIdleConns)
	db.SetConnMaxLifetime(cm.config.ConnMaxLifetime)

	cm.db = db

	if cm.config.AutoMigrate {
		if err := cm.GetMigrationManager().RunMigrations(); err != nil {
			cm.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	cm.config.Logger.WithField("db_path", dbPath).Info("Database connection established")
	return nil
}

// GetDB returns the database connection
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Close closes the database connection
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	cm.config.Logger.Info("Database connection closed")
	return nil
}

// Ping tests the database connection
func (cm *ConnectionManager) Ping() error {
	if cm.db == nil {
		return fmt.Errorf("database connection not established")
	}

	if err := cm.db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// GetMigrationManager returns a migration manager for this connection
func (cm *ConnectionManager) GetMigrationManager() *MigrationManager {
	if cm.db == nil {
		return nil
	}

	return NewMigrationManager(cm.db, cm.config.Logger)
}

// HealthCheck pings the database and runs a trivial query
func (cm *ConnectionManager) HealthCheck() error {
	if err := cm.Ping(); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	var result int
	if err := cm.db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("test query failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("test query returned unexpected result: %d", result)
	}

	return nil
}
