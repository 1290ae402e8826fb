package services

import (
	"context"
	"errors"
	"fmt"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/models"
	"pos_terminal/internal/period"
	"pos_terminal/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionDetail is a stored sale with its line items in insertion order.
type TransactionDetail struct {
	Transaction models.TransactionRecord       `json:"transaction"`
	Items       []models.TransactionItemRecord `json:"items"`
}

type TransactionService interface {
	Create(ctx context.Context, paymentTypeID uint, lines []cart.Line) (*models.Transaction, error)
	List(ctx context.Context, p period.Period) ([]models.TransactionRecord, error)
	GetDetail(ctx context.Context, id uint) (*TransactionDetail, error)
	Delete(ctx context.Context, id uint) error
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	paymentTypeRepo repository.PaymentTypeRepository
	clock           period.Clock
	logger          *zap.Logger
}

func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	paymentTypeRepo repository.PaymentTypeRepository,
	clock period.Clock,
	logger *zap.Logger,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		paymentTypeRepo: paymentTypeRepo,
		clock:           clock,
		logger:          logger,
	}
}

// Create stores one sale: the header stamped with the current local time and
// one item row per cart line. Either everything is written or nothing is.
// The returned header carries the new id and the stored timestamp.
func (s *transactionService) Create(ctx context.Context, paymentTypeID uint, lines []cart.Line) (*models.Transaction, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if _, err := s.paymentTypeRepo.GetByID(ctx, paymentTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentTypeNotFound
		}
		return nil, fmt.Errorf("failed to look up payment type: %w", err)
	}

	transaction := &models.Transaction{
		PaymentTypeID: &paymentTypeID,
		Date:          s.clock.Now(),
		TotalPrice:    decimal.Zero,
	}
	items := make([]models.TransactionItem, 0, len(lines))
	for _, line := range lines {
		if !validAmount(line.Price) {
			return nil, ErrInvalidPrice
		}
		if line.Qty <= 0 {
			return nil, ErrInvalidQuantity
		}
		itemID := line.ItemID
		total := line.Total()
		items = append(items, models.TransactionItem{
			ItemID: &itemID,
			Price:  line.Price,
			Qty:    line.Qty,
			Total:  total,
		})
		transaction.TotalQty += line.Qty
		transaction.TotalPrice = transaction.TotalPrice.Add(total)
	}

	if err := s.transactionRepo.Create(ctx, transaction, items); err != nil {
		return nil, err
	}

	s.logger.Info("transaction created",
		zap.Uint("transaction_id", transaction.ID),
		zap.Uint("payment_type_id", paymentTypeID),
		zap.Int("total_qty", transaction.TotalQty),
		zap.String("total_price", transaction.TotalPrice.StringFixed(2)),
	)
	return transaction, nil
}

func (s *transactionService) List(ctx context.Context, p period.Period) ([]models.TransactionRecord, error) {
	records, err := s.transactionRepo.List(ctx, p.Range(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if records == nil {
		records = []models.TransactionRecord{}
	}
	return records, nil
}

func (s *transactionService) GetDetail(ctx context.Context, id uint) (*TransactionDetail, error) {
	record, err := s.transactionRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	items, err := s.transactionRepo.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction items: %w", err)
	}
	if items == nil {
		items = []models.TransactionItemRecord{}
	}

	return &TransactionDetail{Transaction: *record, Items: items}, nil
}

func (s *transactionService) Delete(ctx context.Context, id uint) error {
	err := s.transactionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransactionNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("transaction deleted", zap.Uint("transaction_id", id))
	return nil
}
