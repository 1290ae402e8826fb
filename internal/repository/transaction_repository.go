package repository

import (
	"context"
	"fmt"
	"pos_terminal/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction, items []models.TransactionItem) error
	GetByID(ctx context.Context, id uint) (*models.TransactionRecord, error)
	GetItems(ctx context.Context, transactionID uint) ([]models.TransactionItemRecord, error)
	List(ctx context.Context, r models.DateRange) ([]models.TransactionRecord, error)
	Delete(ctx context.Context, id uint) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create writes the header and every item row in one database transaction.
// On success transaction.ID and each item's TransactionID are set.
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction, items []models.TransactionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		for i := range items {
			items[i].TransactionID = transaction.ID
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert transaction items: %w", err)
		}
		return nil
	})
}

func (r *transactionRepository) recordQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.id, t.payment_type_id, pt.name AS payment_type_name, t.date, t.total_qty, t.total_price").
		Joins("LEFT JOIN payment_types pt ON pt.id = t.payment_type_id")
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	result := r.recordQuery(ctx).Where("t.id = ?", id).Limit(1).Scan(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *transactionRepository) GetItems(ctx context.Context, transactionID uint) ([]models.TransactionItemRecord, error) {
	var items []models.TransactionItemRecord
	err := r.db.WithContext(ctx).
		Table("transaction_items AS ti").
		Select("ti.id, ti.item_id, i.name AS item_name, ti.price, ti.qty, ti.total").
		Joins("LEFT JOIN items i ON i.id = ti.item_id").
		Where("ti.transaction_id = ?", transactionID).
		Order("ti.id ASC").
		Scan(&items).Error
	return items, err
}

// List returns transactions newest first.
func (r *transactionRepository) List(ctx context.Context, dateRange models.DateRange) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	err := r.recordQuery(ctx).
		Scopes(inRange("t.date", dateRange)).
		Order("t.date DESC").
		Order("t.id DESC").
		Scan(&records).Error
	return records, err
}

// Delete removes the header and its items together.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&models.TransactionItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete transaction items: %w", err)
		}

		result := tx.Delete(&models.Transaction{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
