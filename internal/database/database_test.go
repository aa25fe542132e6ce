package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"inventory/internal/config"
	"inventory/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpen_SQLiteMigratesProducts(t *testing.T) {
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBLogLevel:  "silent",
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, Close(db)) }()

	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	for _, column := range []string{"id", "created_at", "product_name", "product_description", "product_price", "product_category", "product_stock"} {
		assert.True(t, db.Migrator().HasColumn(&models.Product{}, column), "missing column %s", column)
	}
}

func TestOpen_MemoryDriverHasNoDatabase(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: config.DriverMemory})
	assert.Error(t, err)
}

func readOnlyDSN(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return "file:" + path + "?mode=ro"
}

func TestMigrate_FailureClosesPool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(readOnlyDSN(t)), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	err = migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "pool should be closed after a failed migration")
}

func TestOpen_MigrationFailure(t *testing.T) {
	_, err := Open(&config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseDSN: readOnlyDSN(t),
		DBLogLevel:  "silent",
	})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("SILENT"))
	assert.Equal(t, logger.Error, logLevel("error"))
	assert.Equal(t, logger.Info, logLevel("info"))
	assert.Equal(t, logger.Warn, logLevel("warn"))
	assert.Equal(t, logger.Warn, logLevel(""))
}
