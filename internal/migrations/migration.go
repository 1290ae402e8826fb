package migrations

import (
	"context"
	"fmt"

	"pos_terminal/internal/database"
	"pos_terminal/internal/models"
	"pos_terminal/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultPaymentTypes are created on a store that has none.
var DefaultPaymentTypes = []string{"Cash"}

// RunMigrations brings the schema up to date and creates default data.
// With reset, every table is dropped first.
func RunMigrations(ctx context.Context, db *gorm.DB, reset bool, logger *zap.Logger) error {
	logger.Info("running database migrations", zap.Bool("reset", reset))

	if reset {
		logger.Warn("dropping existing tables")
		if err := db.Migrator().DropTable(database.Models()...); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := createDefaultData(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to create default data: %w", err)
	}

	logger.Info("database migrations completed")
	return nil
}

// createDefaultData seeds payment types into an empty payment_types table only.
func createDefaultData(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	paymentTypeRepo := repository.NewPaymentTypeRepository(db)

	existing, err := paymentTypeRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("payment types already present", zap.Int("count", len(existing)))
		return nil
	}

	for _, name := range DefaultPaymentTypes {
		paymentType := &models.PaymentType{Name: name}
		if err := paymentTypeRepo.Create(ctx, paymentType); err != nil {
			return err
		}
		logger.Info("created default payment type", zap.String("name", name))
	}
	return nil
}
