// Package checkout computes what the customer owes and whether a sale can be charged.
package checkout

import (
	"errors"

	"pos_terminal/internal/cart"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrZeroAmount          = errors.New("amount due must be greater than zero")
	ErrPaymentTypeRequired = errors.New("payment type is required")
	ErrInsufficientCash    = errors.New("cash tendered is less than the amount due")
)

// Quote is the outcome of tendering cash against a cart.
type Quote struct {
	AmountDue     decimal.Decimal `json:"amount_due"`
	Cash          decimal.Decimal `json:"cash"`
	Change        decimal.Decimal `json:"change"`
	Shortfall     decimal.Decimal `json:"shortfall"`
	Insufficient  bool            `json:"insufficient"`
	PaymentTypeID *uint           `json:"payment_type_id"`
	LineCount     int             `json:"line_count"`
	CanCharge     bool            `json:"can_charge"`
}

// Calculate never returns a negative Change: when cash is short, Change is
// zero and Shortfall holds the missing amount.
func Calculate(lines []cart.Line, cash decimal.Decimal, paymentTypeID *uint) Quote {
	due := cart.Total(lines)

	q := Quote{
		AmountDue:     due,
		Cash:          cash,
		Change:        decimal.Zero,
		Shortfall:     decimal.Zero,
		Insufficient:  cash.LessThan(due),
		PaymentTypeID: paymentTypeID,
		LineCount:     len(lines),
	}

	if q.Insufficient {
		q.Shortfall = due.Sub(cash)
	} else {
		q.Change = cash.Sub(due)
	}

	q.CanCharge = q.Blocker() == nil
	return q
}

// Blocker reports the first reason the quote cannot be charged, or nil.
func (q Quote) Blocker() error {
	switch {
	case q.LineCount == 0:
		return ErrEmptyCart
	case !q.AmountDue.IsPositive():
		return ErrZeroAmount
	case q.PaymentTypeID == nil:
		return ErrPaymentTypeRequired
	case q.Insufficient:
		return ErrInsufficientCash
	}
	return nil
}
