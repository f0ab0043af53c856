package persistence

import (
	"testing"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/domain/schedule"
	"github.com/packtrack/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates a migrated in-memory SQLite database for repository tests
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&belonging.Belonging{},
		&schedule.Event{},
		&schedule.EventBelonging{},
	))
	return db
}

func TestNewDatabase(t *testing.T) {
	t.Run("opens and migrates an in-memory sqlite database", func(t *testing.T) {
		cfg := &config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         ":memory:",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		}

		db, err := NewDatabase(cfg)
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, db.Migrate())
		require.NoError(t, db.Ping())

		assert.True(t, db.DB.Migrator().HasTable("belongings"))
		assert.True(t, db.DB.Migrator().HasTable("schedule_events"))
		assert.True(t, db.DB.Migrator().HasTable("event_belongings"))
	})

	t.Run("drop removes tracked tables", func(t *testing.T) {
		cfg := &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1}
		db, err := NewDatabase(cfg)
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, db.Migrate())
		require.NoError(t, db.DropTables())

		assert.False(t, db.DB.Migrator().HasTable("belongings"))
		assert.False(t, db.DB.Migrator().HasTable("schedule_events"))
		assert.False(t, db.DB.Migrator().HasTable("event_belongings"))
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		_, err := NewDatabase(&config.DatabaseConfig{Driver: "mysql", MaxOpenConns: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}

func TestDatabaseTransaction(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1}
	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	t.Run("rolls back on error", func(t *testing.T) {
		b, err := belonging.NewBelonging("Laptop", "electronics", nil, belonging.StatusUnpacked)
		require.NoError(t, err)

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(b).Error; err != nil {
				return err
			}
			return assert.AnError
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, db.DB.Model(&belonging.Belonging{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
