package database

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenTest opens a migrated SQLite database in a temporary directory.
func OpenTest(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "pos.db"), "silent", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
