package database

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, autoMigrate bool) *ConnectionManager {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "nested", "tasks.db")
	cfg.AutoMigrate = autoMigrate
	cfg.Logger = logger

	cm := NewConnectionManager(cfg)
	t.Cleanup(func() { cm.Close() })
	return cm
}

func TestConnectionManager_ConnectRunsMigrations(t *testing.T) {
	cm := newTestManager(t, true)

	require.NoError(t, cm.Connect())
	require.NoError(t, cm.HealthCheck())

	mm := cm.GetMigrationManager()
	require.NoError(t, mm.ValidateSchema())

	status, err := mm.GetMigrationStatus()
	require.NoError(t, err)
	assert.True(t, status.Applied)
	assert.False(t, status.Dirty)
	assert.Equal(t, uint(1), status.Version)
}

func TestConnectionManager_ConnectTwice(t *testing.T) {
	cm := newTestManager(t, true)

	require.NoError(t, cm.Connect())
	assert.Error(t, cm.Connect())
}

func TestConnectionManager_NotConnected(t *testing.T) {
	cm := newTestManager(t, false)

	assert.Nil(t, cm.GetDB())
	assert.Nil(t, cm.GetMigrationManager())
	assert.Error(t, cm.Ping())
	assert.NoError(t, cm.Close())
}

func TestMigrationManager_Rollback(t *testing.T) {
	cm := newTestManager(t, false)
	require.NoError(t, cm.Connect())

	mm := cm.GetMigrationManager()
	assert.Error(t, mm.ValidateSchema())
	assert.Error(t, mm.RollbackMigration())

	require.NoError(t, mm.RunMigrations())
	require.NoError(t, mm.ValidateSchema())

	// Running again is a no-op
	require.NoError(t, mm.RunMigrations())

	require.NoError(t, mm.RollbackMigration())
	assert.Error(t, mm.ValidateSchema())
}
