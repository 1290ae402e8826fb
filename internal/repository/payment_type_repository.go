package repository

import (
	"context"
	"pos_terminal/internal/models"

	"gorm.io/gorm"
)

type PaymentTypeRepository interface {
	Create(ctx context.Context, paymentType *models.PaymentType) error
	GetByID(ctx context.Context, id uint) (*models.PaymentType, error)
	GetAll(ctx context.Context) ([]models.PaymentType, error)
	Delete(ctx context.Context, id uint) error
}

type paymentTypeRepository struct {
	db *gorm.DB
}

func NewPaymentTypeRepository(db *gorm.DB) PaymentTypeRepository {
	return &paymentTypeRepository{db: db}
}

func (r *paymentTypeRepository) Create(ctx context.Context, paymentType *models.PaymentType) error {
	return r.db.WithContext(ctx).Create(paymentType).Error
}

func (r *paymentTypeRepository) GetByID(ctx context.Context, id uint) (*models.PaymentType, error) {
	var paymentType models.PaymentType
	err := r.db.WithContext(ctx).First(&paymentType, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &paymentType, nil
}

func (r *paymentTypeRepository) GetAll(ctx context.Context) ([]models.PaymentType, error) {
	var paymentTypes []models.PaymentType
	err := r.db.WithContext(ctx).Order("name").Order("id").Find(&paymentTypes).Error
	return paymentTypes, err
}

// Delete leaves transactions that reference the payment type untouched.
func (r *paymentTypeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
