package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/config"
	"github.com/monlivredecuisine/backend/internal/database"
	"github.com/monlivredecuisine/backend/internal/models"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
}

func TestNewSQLite(t *testing.T) {
	db, err := database.New(sqliteConfig(t))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, database.HealthCheck(context.Background(), db))
}

func TestRunMigrationsSQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	db, err := database.New(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	require.NoError(t, database.RunMigrations(db, "migrations"))

	for _, model := range []any{&models.User{}, &models.Recipe{}, &models.Ingredient{}, &models.Step{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	// Running again must be a no-op, not an error.
	assert.NoError(t, database.RunMigrations(db, "migrations"))
}

func TestTranslateErrorOnDuplicateEmail(t *testing.T) {
	cfg := sqliteConfig(t)
	db, err := database.New(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	defer sqlDB.Close()
	require.NoError(t, database.AutoMigrate(db))

	first := models.User{Nom: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	dup := models.User{Nom: "Autre", Email: "alice@example.com", PasswordHash: "y"}
	err = db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestNewRedisClientUnconfigured(t *testing.T) {
	client, err := database.NewRedisClient(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := database.NewRedisClient(&config.Config{RedisURL: "://not-a-url"})
	assert.Error(t, err)
}
