package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₱0.00"},
		{"20", "₱20.00"},
		{"150.5", "₱150.50"},
		{"999.999", "₱1,000.00"},
		{"1234", "₱1,234.00"},
		{"1234567.89", "₱1,234,567.89"},
		{"100000", "₱100,000.00"},
		{"-1234.5", "₱-1,234.50"},
		{"0.004", "₱0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatter_CustomSymbol(t *testing.T) {
	f := NewFormatter("$")
	assert.Equal(t, "$12,000.10", f.Format(decimal.RequireFromString("12000.1")))

	assert.Equal(t, DefaultSymbol, NewFormatter("").Symbol)
}
