package repository

import (
	"errors"
	"pos_terminal/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// inRange filters column to r. Stored dates and bounds share one location,
// so the comparison holds on both Postgres and SQLite.
func inRange(column string, r models.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !r.From.IsZero() {
			db = db.Where(column+" >= ?", r.From)
		}
		if !r.To.IsZero() {
			db = db.Where(column+" < ?", r.To)
		}
		return db
	}
}
