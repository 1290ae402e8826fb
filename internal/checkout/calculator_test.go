package checkout

import (
	"testing"

	"pos_terminal/internal/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func paymentType(id uint) *uint {
	return &id
}

func lines() []cart.Line {
	return []cart.Line{
		{ItemID: 1, Name: "Coke", Price: dec("40"), Qty: 3},
		{ItemID: 2, Name: "Fries", Price: dec("30"), Qty: 1},
	}
}

func TestCalculate_ExactCash(t *testing.T) {
	q := Calculate(lines(), dec("150.00"), paymentType(1))

	assert.Equal(t, "150.00", q.AmountDue.StringFixed(2))
	assert.Equal(t, "0.00", q.Change.StringFixed(2))
	assert.False(t, q.Insufficient)
	assert.True(t, q.CanCharge)
	assert.NoError(t, q.Blocker())
}

func TestCalculate_InsufficientCash(t *testing.T) {
	q := Calculate(lines(), dec("100.00"), paymentType(1))

	assert.True(t, q.Insufficient)
	assert.False(t, q.CanCharge)
	assert.True(t, q.Change.IsZero())
	assert.Equal(t, "50.00", q.Shortfall.StringFixed(2))
	assert.ErrorIs(t, q.Blocker(), ErrInsufficientCash)
}

func TestCalculate_Change(t *testing.T) {
	q := Calculate(lines(), dec("200"), paymentType(1))

	assert.Equal(t, "50.00", q.Change.StringFixed(2))
	assert.True(t, q.Shortfall.IsZero())
	assert.True(t, q.CanCharge)
}

func TestCalculate_DecimalPrices(t *testing.T) {
	l := []cart.Line{
		{ItemID: 1, Price: dec("0.10"), Qty: 1},
		{ItemID: 2, Price: dec("0.20"), Qty: 1},
	}

	q := Calculate(l, dec("0.30"), paymentType(1))

	assert.True(t, q.AmountDue.Equal(dec("0.3")))
	assert.True(t, q.CanCharge)
}

func TestCalculate_RequiresPaymentType(t *testing.T) {
	q := Calculate(lines(), dec("500"), nil)

	assert.False(t, q.CanCharge)
	assert.ErrorIs(t, q.Blocker(), ErrPaymentTypeRequired)
}

func TestCalculate_EmptyCart(t *testing.T) {
	q := Calculate(nil, dec("0"), paymentType(1))

	assert.False(t, q.Insufficient)
	assert.False(t, q.CanCharge)
	assert.ErrorIs(t, q.Blocker(), ErrEmptyCart)
}

func TestCalculate_ZeroAmount(t *testing.T) {
	l := []cart.Line{{ItemID: 1, Price: dec("0"), Qty: 2}}

	q := Calculate(l, dec("0"), paymentType(1))

	assert.False(t, q.CanCharge)
	assert.ErrorIs(t, q.Blocker(), ErrZeroAmount)
}
