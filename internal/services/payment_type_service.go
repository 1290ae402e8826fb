package services

import (
	"context"
	"errors"
	"strings"

	"pos_terminal/internal/models"
	"pos_terminal/internal/repository"

	"go.uber.org/zap"
)

type PaymentTypeService interface {
	GetAll(ctx context.Context) ([]models.PaymentType, error)
	GetByID(ctx context.Context, id uint) (*models.PaymentType, error)
	Create(ctx context.Context, name string) (*models.PaymentType, error)
	Delete(ctx context.Context, id uint) error
}

type paymentTypeService struct {
	paymentTypeRepo repository.PaymentTypeRepository
	logger          *zap.Logger
}

func NewPaymentTypeService(paymentTypeRepo repository.PaymentTypeRepository, logger *zap.Logger) PaymentTypeService {
	return &paymentTypeService{paymentTypeRepo: paymentTypeRepo, logger: logger}
}

func (s *paymentTypeService) GetAll(ctx context.Context) ([]models.PaymentType, error) {
	paymentTypes, err := s.paymentTypeRepo.GetAll(ctx)
	if paymentTypes == nil {
		paymentTypes = []models.PaymentType{}
	}
	return paymentTypes, err
}

func (s *paymentTypeService) GetByID(ctx context.Context, id uint) (*models.PaymentType, error) {
	paymentType, err := s.paymentTypeRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPaymentTypeNotFound
	}
	return paymentType, err
}

func (s *paymentTypeService) Create(ctx context.Context, name string) (*models.PaymentType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPaymentType
	}

	paymentType := &models.PaymentType{Name: name}
	if err := s.paymentTypeRepo.Create(ctx, paymentType); err != nil {
		return nil, err
	}

	s.logger.Info("payment type created", zap.Uint("payment_type_id", paymentType.ID), zap.String("name", name))
	return paymentType, nil
}

// Delete keeps historical transactions; they report the payment type as Unknown.
func (s *paymentTypeService) Delete(ctx context.Context, id uint) error {
	err := s.paymentTypeRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPaymentTypeNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("payment type deleted", zap.Uint("payment_type_id", id))
	return nil
}
