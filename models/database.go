// models/database.go
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens the monster database and migrates its tables.
// A postgres:// or postgresql:// URL selects Postgres; anything else is a
// SQLite file path (":memory:" for an in-process database).
func OpenDatabase(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	sqliteDB := false
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		dialector = postgres.Open(databaseURL)
	default:
		if databaseURL != ":memory:" && !strings.HasPrefix(databaseURL, "file:") {
			if err := os.MkdirAll(filepath.Dir(databaseURL), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create db path: %w", err)
			}
		}
		dialector = sqlite.Open(sqliteDSN(databaseURL))
		sqliteDB = true
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if sqliteDB {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// a single writer keeps SQLite from returning SQLITE_BUSY, and keeps
		// ":memory:" pointing at one database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the monster tables.
func Migrate(db *gorm.DB) error {
	for _, table := range []interface{}{
		&Monster{}, &MonsterEntry{},
	} {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("automigrate %T failed: %w", table, err)
		}
	}
	return nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(path))
}
