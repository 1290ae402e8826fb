// Package money renders currency amounts for receipts and the dashboard.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultSymbol = "₱"

// Formatter renders amounts as symbol + two decimals with comma thousands
// separators, independent of the process locale.
type Formatter struct {
	Symbol string
}

func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Format keeps the sign after the symbol, e.g. "₱-1,234.50".
func (f Formatter) Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return f.Symbol + sign + groupThousands(intPart) + "." + fracPart
}

// Format uses DefaultSymbol.
func Format(amount decimal.Decimal) string {
	return NewFormatter(DefaultSymbol).Format(amount)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
