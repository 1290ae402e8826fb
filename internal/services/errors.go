package services

import (
	"errors"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/checkout"
)

var (
	ErrEmptyCart           = checkout.ErrEmptyCart
	ErrZeroAmount          = checkout.ErrZeroAmount
	ErrPaymentTypeRequired = checkout.ErrPaymentTypeRequired
	ErrInsufficientCash    = checkout.ErrInsufficientCash
	ErrInvalidQuantity     = cart.ErrInvalidQuantity

	ErrInvalidPrice        = errors.New("price must be a non-negative amount with at most two decimals")
	ErrInvalidCash         = errors.New("cash tendered must be a non-negative amount with at most two decimals")
	ErrCartNotFound        = errors.New("cart not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrPaymentTypeNotFound = errors.New("payment type not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidPaymentType  = errors.New("payment type name is required")
	ErrInvalidPin          = errors.New("pin must be exactly 4 digits")
	ErrIncorrectPin        = errors.New("incorrect pin")
	ErrPinLocked           = errors.New("too many incorrect pin attempts, try again later")
)

// IsValidation reports whether err is a caller mistake rather than a storage failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyCart, ErrZeroAmount, ErrPaymentTypeRequired, ErrInsufficientCash,
		ErrInvalidQuantity, ErrInvalidPrice, ErrInvalidCash, ErrInvalidPaymentType, ErrInvalidPin,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err names a missing cart, item, payment type or transaction.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCartNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrPaymentTypeNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
