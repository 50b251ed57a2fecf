// Package testkit holds the shared plumbing for the test suite: an
// isolated in-memory database per test and a tiny HTTP driver for
// exercising handlers end to end.
package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/bholemart/pkg/database"
)

// SetupDB swaps the global connection for an in-memory SQLite database
// migrated with the given models. The previous connection is restored
// when the test finishes, so tests stay independent.
func SetupDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps gorm's pooled connections on
	// the same in-memory store while isolating tests from each other.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open in-memory sqlite")

	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...), "auto-migrate test models")
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		database.DB = prev
	})

	return db
}
