package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// purgeOrder lists tables children first.
var purgeOrder = []string{
	"transaction_items",
	"transactions",
	"items",
	"subcategories",
	"categories",
	"payment_types",
	"app_settings",
}

type MaintenanceRepository interface {
	PurgeAll(ctx context.Context) error
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// PurgeAll empties every table, including settings, in one transaction.
func (r *maintenanceRepository) PurgeAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range purgeOrder {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}
