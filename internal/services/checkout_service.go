package services

import (
	"context"
	"time"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/checkout"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Receipt describes a completed checkout.
type Receipt struct {
	TransactionID uint            `json:"transaction_id"`
	PaymentTypeID uint            `json:"payment_type_id"`
	Date          time.Time       `json:"date"`
	Lines         []cart.Line     `json:"lines"`
	TotalQty      int             `json:"total_qty"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	Cash          decimal.Decimal `json:"cash"`
	Change        decimal.Decimal `json:"change"`
}

type CheckoutService interface {
	Quote(ctx context.Context, cartID string, cash decimal.Decimal, paymentTypeID *uint) (*checkout.Quote, error)
	Charge(ctx context.Context, cartID string, cash decimal.Decimal, paymentTypeID *uint) (*Receipt, error)
}

type checkoutService struct {
	store              CartStore
	transactionService TransactionService
	logger             *zap.Logger
}

func NewCheckoutService(store CartStore, transactionService TransactionService, logger *zap.Logger) CheckoutService {
	return &checkoutService{store: store, transactionService: transactionService, logger: logger}
}

func (s *checkoutService) Quote(ctx context.Context, cartID string, cash decimal.Decimal, paymentTypeID *uint) (*checkout.Quote, error) {
	if !validAmount(cash) {
		return nil, ErrInvalidCash
	}

	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	quote := checkout.Calculate(c.Lines(), cash, paymentTypeID)
	return &quote, nil
}

// Charge turns the cart into a stored transaction. The cart is discarded only
// after the transaction is written; on any failure it is left untouched.
func (s *checkoutService) Charge(ctx context.Context, cartID string, cash decimal.Decimal, paymentTypeID *uint) (*Receipt, error) {
	if !validAmount(cash) {
		return nil, ErrInvalidCash
	}

	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	lines := c.Lines()
	quote := checkout.Calculate(lines, cash, paymentTypeID)
	if err := quote.Blocker(); err != nil {
		return nil, err
	}

	transaction, err := s.transactionService.Create(ctx, *paymentTypeID, lines)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Delete(ctx, cartID); err != nil {
		s.logger.Warn("failed to discard cart after checkout",
			zap.String("cart_id", cartID),
			zap.Uint("transaction_id", transaction.ID),
			zap.Error(err),
		)
	}

	return &Receipt{
		TransactionID: transaction.ID,
		PaymentTypeID: *paymentTypeID,
		Date:          transaction.Date,
		Lines:         lines,
		TotalQty:      transaction.TotalQty,
		AmountDue:     transaction.TotalPrice,
		Cash:          quote.Cash,
		Change:        quote.Change,
	}, nil
}
