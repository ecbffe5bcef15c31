package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/shiftr/internal/models"
)

// Open sets up the database connection and runs migrations
func Open(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create shiftr directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		Close(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenOrRecover opens dbPath like Open. If the file is not a usable SQLite
// database it is renamed to <dbPath>.corrupt-<timestamp> and a fresh
// database is created in its place.
func OpenOrRecover(dbPath string, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := Open(dbPath)
	if err == nil || !isCorrupt(err) {
		return db, err
	}

	aside := fmt.Sprintf("%s.corrupt-%s", dbPath, time.Now().Format("20060102-150405"))
	if renameErr := os.Rename(dbPath, aside); renameErr != nil {
		return nil, fmt.Errorf("%w (moving it aside failed: %v)", err, renameErr)
	}
	// sidecar files belong to the bad database
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		os.Remove(dbPath + suffix)
	}

	log.WithError(err).WithFields(logrus.Fields{
		"path":     dbPath,
		"moved_to": aside,
	}).Warn("Database unreadable, starting fresh")

	return Open(dbPath)
}

// isCorrupt reports whether err is SQLite rejecting the file itself
func isCorrupt(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "file is not a database") ||
		strings.Contains(msg, "database disk image is malformed")
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ShiftStateRecord{},
		&models.BreakInterval{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
