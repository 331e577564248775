package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Entry writes piggyback a versioned habit save inside a transaction, so
// concurrent writers hit SQLITE_BUSY instead of corrupting a streak. The
// busy timeout gives the losing writer time to retry before surfacing an
// error; WAL keeps stat reads from blocking behind those writes.
const sqliteBusyTimeout = 5 * time.Second

// OpenSQLite opens (creating if needed) the habit database at dbPath and
// brings its schema up to date from the embedded migrations.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d",
		dbPath, sqliteBusyTimeout.Milliseconds())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newQueryLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// newQueryLogger logs slow or failing queries to stderr. Habit writes are
// tiny single-row updates, so anything over 200ms points at lock
// contention worth surfacing.
func newQueryLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stderr, "stride/db ", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
