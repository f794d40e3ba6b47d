package database

import (
	"context"
	"testing"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestAutoMigrate_CreatesEveryTable(t *testing.T) {
	db := SetupTestDB(t)

	for _, model := range Models() {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
}

func TestEnsureIndexes_OnSQLite(t *testing.T) {
	db := SetupTestDB(t)

	assert.Zero(t, db.EnsureIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.Transaction{}, "idx_transactions_user_time"))
	assert.True(t, db.Migrator().HasIndex(&models.Budget{}, "idx_budgets_user_dates"))

	assert.Zero(t, db.EnsureIndexes(), "statements are idempotent")
}

func TestOpen_SQLiteFile(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: t.TempDir() + "/budgetbuddy.db",
	}

	db, err := Open(cfg, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, db.AutoMigrate())
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: t.TempDir() + "/init.db",
		},
	}

	gdb, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, gdb.Migrator().HasTable(&models.Transaction{}))
	assert.True(t, gdb.Migrator().HasIndex(&models.Goal{}, "idx_goals_user_status"))
}
