// Package sqlite opens the embedded store used for local runs and tests.
// The repositories in package postgres are dialect-portable and run on it
// unchanged.
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/audwofla/Aramalyze/internal/repository/postgres"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens path with foreign keys enforced. Use ":memory:" or a
// "file:name?mode=memory&cache=shared" URI for a throwaway store.
func NewConnection(path string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if logLevel == 0 {
		logLevel = logger.Silent
	}

	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	// SQLite only supports 1 writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	return db, nil
}

func withForeignKeys(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)"
}
